package matching

import (
	"testing"

	"career-compass/internal/domain/career"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankJobs_EmptyCorpus(t *testing.T) {
	out := RankJobs(Profile{Skills: []string{"Go"}}, nil, 10)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRankJobs_SortsDescendingAndTruncates(t *testing.T) {
	p := Profile{Skills: []string{"Go", "Docker"}, ExperienceLevel: career.ExperienceJunior, PreferredTrack: career.TrackDevOps}
	jobs := []JobProfile{
		{RequiredSkills: []string{"Figma"}, ExperienceLevel: career.ExperienceMid, Track: career.TrackUIUXDesign},
		{RequiredSkills: []string{"Go", "Docker"}, ExperienceLevel: career.ExperienceFresher, Track: career.TrackDevOps},
		{RequiredSkills: []string{"Go", "Rust"}, ExperienceLevel: career.ExperienceJunior, Track: career.TrackWebDevelopment},
	}

	out := RankJobs(p, jobs, 2)

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Index)
	assert.Equal(t, 100, out[0].Score)
	assert.Equal(t, 2, out[1].Index)
	assert.Equal(t, 58, out[1].Score)
}

func TestRankJobs_StableOnTies(t *testing.T) {
	p := Profile{Skills: []string{"SQL"}, ExperienceLevel: career.ExperienceFresher, PreferredTrack: career.TrackDataScience}
	tied := JobProfile{RequiredSkills: []string{"SQL", "Tableau"}, ExperienceLevel: career.ExperienceMid, Track: career.TrackDataScience}
	// 35 + 5 + 15 = 55 for each tied job
	jobs := []JobProfile{
		{RequiredSkills: []string{"Excel"}, ExperienceLevel: career.ExperienceMid, Track: career.TrackOther},
		tied,
		tied,
		tied,
	}

	out := RankJobs(p, jobs, 0)

	require.Len(t, out, 4)
	assert.Equal(t, []int{1, 2, 3, 0}, []int{out[0].Index, out[1].Index, out[2].Index, out[3].Index})
	assert.Equal(t, 55, out[0].Score)
	assert.Equal(t, out[0].Score, out[2].Score)
}
