package matching

import (
	"testing"

	"career-compass/internal/domain/career"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCandidateQuery(t *testing.T) {
	_, ok := ResourceCandidateQuery(Profile{})
	assert.False(t, ok)

	_, ok = ResourceCandidateQuery(Profile{Skills: []string{"", "  "}, PreferredTrack: "Gardening"})
	assert.False(t, ok)

	q, ok := ResourceCandidateQuery(Profile{PreferredTrack: career.TrackDevOps})
	require.True(t, ok)
	assert.Equal(t, career.TrackDevOps, q.Track)
	assert.Empty(t, q.Skills)

	q, ok = ResourceCandidateQuery(Profile{Skills: []string{" Go ", ""}})
	require.True(t, ok)
	assert.Equal(t, career.Track(""), q.Track)
	assert.Equal(t, []string{"Go"}, q.Skills)
}

func TestScoreResource_AllBonuses(t *testing.T) {
	p := Profile{Skills: []string{"React", "CSS"}, ExperienceLevel: career.ExperienceJunior, PreferredTrack: career.TrackWebDevelopment}
	r := ResourceProfile{
		RelatedSkills: []string{"React Hooks", "CSS", "Redux"},
		Track:         career.TrackWebDevelopment,
		Cost:          career.CostFree,
		Difficulty:    career.DifficultyIntermediate,
	}

	score, matching := ScoreResource(p, r)

	// 30 track + 2*10 skills + 15 free + 10 difficulty
	assert.Equal(t, 75, score)
	assert.Equal(t, []string{"React Hooks", "CSS"}, matching)
}

func TestScoreResource_CostAndDifficulty(t *testing.T) {
	p := Profile{ExperienceLevel: career.ExperienceMid}

	free, _ := ScoreResource(p, ResourceProfile{Cost: career.CostFree})
	freemium, _ := ScoreResource(p, ResourceProfile{Cost: career.CostFreemium})
	paid, _ := ScoreResource(p, ResourceProfile{Cost: career.CostPaid})
	advanced, _ := ScoreResource(p, ResourceProfile{Cost: career.CostPaid, Difficulty: career.DifficultyAdvanced})
	beginner, _ := ScoreResource(p, ResourceProfile{Cost: career.CostPaid, Difficulty: career.DifficultyBeginner})

	assert.Equal(t, 15, free)
	assert.Equal(t, 10, freemium)
	assert.Equal(t, 0, paid)
	assert.Equal(t, 10, advanced)
	assert.Equal(t, 0, beginner)
}

func TestScoreResource_NoTrackBonusWithoutCandidateTrack(t *testing.T) {
	score, matching := ScoreResource(Profile{}, ResourceProfile{Cost: career.CostPaid})
	assert.Equal(t, 0, score)
	assert.Empty(t, matching)
}

func TestScoreResources_SortsStableAndTruncates(t *testing.T) {
	p := Profile{Skills: []string{"Python"}, ExperienceLevel: career.ExperienceFresher, PreferredTrack: career.TrackDataScience}
	rs := []ResourceProfile{
		{RelatedSkills: []string{"Excel"}, Track: career.TrackOther, Cost: career.CostPaid},
		{RelatedSkills: []string{"Python"}, Track: career.TrackDataScience, Cost: career.CostFree, Difficulty: career.DifficultyBeginner},
		{RelatedSkills: []string{"Statistics"}, Track: career.TrackDataScience, Cost: career.CostPaid},
		{RelatedSkills: []string{"Statistics"}, Track: career.TrackDataScience, Cost: career.CostPaid},
	}

	out := ScoreResources(p, rs, 3)

	require.Len(t, out, 3)
	assert.Equal(t, 1, out[0].Index)
	assert.Equal(t, 65, out[0].Score)
	assert.Equal(t, []string{"Python"}, out[0].MatchingSkills)
	assert.Equal(t, 2, out[1].Index)
	assert.Equal(t, 3, out[2].Index)
	assert.Equal(t, 30, out[2].Score)
}
