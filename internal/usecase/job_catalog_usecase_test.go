package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCatalog_List_InvalidInput(t *testing.T) {
	uc := NewJobCatalogUsecase(&fakeJobRepo{}, nil, config.DefaultMatching(), nil)

	cases := []JobListParams{
		{Limit: -1},
		{Limit: 51},
		{Offset: -1},
		{Track: "Astronomy"},
		{JobType: "Contract"},
		{ExperienceLevel: "Senior"},
	}
	for _, p := range cases {
		_, err := uc.List(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", p)
	}
}

func TestJobCatalog_List_CachesPages(t *testing.T) {
	posted := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeJobRepo{jobs: []job.Job{{
		ID:             uuid.New(),
		Title:          "Frontend Developer",
		Company:        "Acme",
		RequiredSkills: []string{"React"},
		Track:          career.TrackWebDevelopment,
		PostedAt:       posted,
		IsActive:       true,
	}}}
	cache := newMemCache()
	uc := NewJobCatalogUsecase(repo, cache, config.DefaultMatching(), nil)

	params := JobListParams{Track: "Web Development", Location: " Jakarta ", Search: "frontend"}
	first, err := uc.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 20, first.Limit)
	assert.Equal(t, career.TrackWebDevelopment, repo.lastList.Track)
	assert.Equal(t, "Jakarta", repo.lastList.Location)
	assert.Equal(t, []string{"frontend", "front end", "front-end", "ui developer"}, repo.lastList.SearchTerms)

	second, err := uc.List(context.Background(), JobListParams{Track: "Web Development", Location: "jakarta", Search: "FRONTEND"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, first.Items[0].ID, second.Items[0].ID)
	assert.True(t, second.Items[0].PostedAt.Equal(posted))
	assert.Equal(t, 1, cache.sets)
}

func TestJobCatalog_List_ErrorsAreNotCached(t *testing.T) {
	cause := errors.New("db down")
	repo := &fakeJobRepo{err: cause}
	cache := newMemCache()
	uc := NewJobCatalogUsecase(repo, cache, config.DefaultMatching(), nil)

	_, err := uc.List(context.Background(), JobListParams{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, cache.sets)
	assert.Empty(t, cache.values)
}

func TestJobCatalog_Get(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Data Analyst", IsActive: true}
	cache := newMemCache()
	uc := NewJobCatalogUsecase(&fakeJobRepo{jobs: []job.Job{j}}, cache, config.DefaultMatching(), nil)

	got, err := uc.Get(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", got.Title)
	assert.Contains(t, cache.values, JobCacheKey(j.ID))

	_, err = uc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = uc.Get(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobsListCacheKey_Normalizes(t *testing.T) {
	a := JobsListCacheKey(JobListParams{Search: "  Go   Developer ", Location: "Remote", Limit: 20})
	b := JobsListCacheKey(JobListParams{Search: "go developer", Location: "remote", Limit: 20})
	c := JobsListCacheKey(JobListParams{Search: "go developer", Location: "remote", Limit: 10})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "jobs:list:")
	assert.Equal(t, "jobs:lock:list:abc", cacheLockKey("jobs:list:abc"))
}
