package matching

import (
	"sort"

	"career-compass/internal/domain/career"
)

const (
	resourceTrackBonus      = 30
	resourceSkillBonus      = 10
	resourceFreeBonus       = 15
	resourceFreemiumBonus   = 10
	resourceDifficultyBonus = 10
)

var difficultyForExperience = map[career.ExperienceLevel]career.Difficulty{
	career.ExperienceFresher: career.DifficultyBeginner,
	career.ExperienceJunior:  career.DifficultyIntermediate,
	career.ExperienceMid:     career.DifficultyAdvanced,
}

// ResourceProfile carries the learning-resource fields that take part in scoring.
type ResourceProfile struct {
	RelatedSkills []string
	Track         career.Track
	Cost          career.Cost
	Difficulty    career.Difficulty
}

type ResourceMatch struct {
	Index          int
	Score          int
	MatchingSkills []string
}

// ResourceQuery selects candidate resources: those on Track, or tagged with a
// skill that matches one of Skills. A zero Track disables the track arm.
type ResourceQuery struct {
	Track  career.Track
	Skills []string
}

// ResourceCandidateQuery builds the candidate filter for p. It returns false
// when p has neither a known track nor any usable skill, in which case no
// lookup should be made.
func ResourceCandidateQuery(p Profile) (ResourceQuery, bool) {
	q := ResourceQuery{Skills: CleanSkills(p.Skills)}
	if p.PreferredTrack.Valid() {
		q.Track = p.PreferredTrack
	}
	if q.Track == "" && len(q.Skills) == 0 {
		return ResourceQuery{}, false
	}
	return q, true
}

// ScoreResource rates one resource for p and returns the tags that matched.
func ScoreResource(p Profile, r ResourceProfile) (int, []string) {
	score := 0

	if p.PreferredTrack.Valid() && r.Track == p.PreferredTrack {
		score += resourceTrackBonus
	}

	userSkills := CleanSkills(p.Skills)
	matching := make([]string, 0)
	for _, tag := range CleanSkills(r.RelatedSkills) {
		if anySkillMatches(tag, userSkills) {
			matching = append(matching, tag)
		}
	}
	score += len(matching) * resourceSkillBonus

	switch r.Cost {
	case career.CostFree:
		score += resourceFreeBonus
	case career.CostFreemium:
		score += resourceFreemiumBonus
	}

	if d, ok := difficultyForExperience[p.ExperienceLevel]; ok && r.Difficulty == d {
		score += resourceDifficultyBonus
	}

	return score, matching
}

// ScoreResources rates every resource and returns the best limit, highest
// score first, ties in input order. A limit <= 0 keeps all.
func ScoreResources(p Profile, resources []ResourceProfile, limit int) []ResourceMatch {
	out := make([]ResourceMatch, 0, len(resources))
	for i, r := range resources {
		score, matching := ScoreResource(p, r)
		out = append(out, ResourceMatch{Index: i, Score: score, MatchingSkills: matching})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
