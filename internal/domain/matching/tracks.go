package matching

import "career-compass/internal/domain/career"

// relatedTracks is the hand-authored adjacency used for partial track credit.
// It is asymmetric and has no entry for Other.
var relatedTracks = map[career.Track][]career.Track{
	career.TrackWebDevelopment:    {career.TrackMobileDevelopment, career.TrackUIUXDesign},
	career.TrackDataScience:       {career.TrackMachineLearning, career.TrackDevOps},
	career.TrackMobileDevelopment: {career.TrackWebDevelopment, career.TrackUIUXDesign},
	career.TrackMachineLearning:   {career.TrackDataScience, career.TrackDevOps},
	career.TrackUIUXDesign:        {career.TrackWebDevelopment, career.TrackDigitalMarketing},
	career.TrackDigitalMarketing:  {career.TrackUIUXDesign, career.TrackProjectManagement},
	career.TrackDevOps:            {career.TrackWebDevelopment, career.TrackCybersecurity},
	career.TrackCybersecurity:     {career.TrackDevOps, career.TrackDataScience},
	career.TrackProjectManagement: {career.TrackDigitalMarketing, career.TrackOther},
}

// RelatedTracks returns a copy of the tracks that earn partial credit for a
// candidate on track t.
func RelatedTracks(t career.Track) []career.Track {
	rel := relatedTracks[t]
	out := make([]career.Track, len(rel))
	copy(out, rel)
	return out
}

func isRelatedTrack(candidate, job career.Track) bool {
	for _, t := range relatedTracks[candidate] {
		if t == job {
			return true
		}
	}
	return false
}
