package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/job"
	"career-compass/internal/repository"
	"career-compass/internal/search"

	"github.com/google/uuid"
)

const defaultPageSize = 20

type JobListParams struct {
	Track           string
	Location        string
	JobType         string
	ExperienceLevel string
	Search          string
	Limit           int
	Offset          int
}

type JobPage struct {
	Items  []job.Job `json:"items"`
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
}

type JobCatalogUsecase interface {
	List(ctx context.Context, params JobListParams) (JobPage, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
}

type JobCatalog struct {
	jobs   repository.JobRepository
	cache  Cache
	cfg    config.MatchingConfig
	logger *slog.Logger
}

func NewJobCatalogUsecase(jobs repository.JobRepository, cache Cache, cfg config.MatchingConfig, logger *slog.Logger) *JobCatalog {
	return &JobCatalog{jobs: jobs, cache: cache, cfg: cfg, logger: loggerOrDiscard(logger).With("component", "job_catalog")}
}

// List returns active jobs matching params, newest first.
func (u *JobCatalog) List(ctx context.Context, params JobListParams) (JobPage, error) {
	params, err := u.normalizeListParams(params)
	if err != nil {
		return JobPage{}, err
	}

	return loadThroughCache(ctx, u.cache, u.logger, JobsListCacheKey(params), func(ctx context.Context) (JobPage, error) {
		qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
		defer cancel()

		items, total, err := u.jobs.List(qctx, repository.JobFilter{
			Track:           career.Track(params.Track),
			Location:        params.Location,
			JobType:         career.JobType(params.JobType),
			ExperienceLevel: career.ExperienceLevel(params.ExperienceLevel),
			SearchTerms:     search.ProcessQuery(params.Search).Variants,
			Limit:           params.Limit,
			Offset:          params.Offset,
		})
		if err != nil {
			u.logger.Error("list jobs failed", "error", err)
			return JobPage{}, internalErr(err)
		}
		return JobPage{Items: items, Total: total, Limit: params.Limit, Offset: params.Offset}, nil
	})
}

func (u *JobCatalog) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	if id == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}

	return loadThroughCache(ctx, u.cache, u.logger, JobCacheKey(id), func(ctx context.Context) (job.Job, error) {
		qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
		defer cancel()

		j, err := u.jobs.GetByID(qctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return job.Job{}, ErrJobNotFound
			}
			u.logger.Error("get job failed", "job_id", id, "error", err)
			return job.Job{}, internalErr(err)
		}
		return j, nil
	})
}

func (u *JobCatalog) normalizeListParams(p JobListParams) (JobListParams, error) {
	p.Track = strings.TrimSpace(p.Track)
	p.JobType = strings.TrimSpace(p.JobType)
	p.ExperienceLevel = strings.TrimSpace(p.ExperienceLevel)
	p.Location = strings.TrimSpace(p.Location)
	p.Search = strings.TrimSpace(p.Search)

	if p.Track != "" && !career.Track(p.Track).Valid() {
		return p, ErrInvalidInput
	}
	if p.JobType != "" && !career.JobType(p.JobType).Valid() {
		return p, ErrInvalidInput
	}
	if p.ExperienceLevel != "" && !career.ExperienceLevel(p.ExperienceLevel).Valid() {
		return p, ErrInvalidInput
	}

	limit, offset, err := pageBounds(p.Limit, p.Offset, u.cfg.MaxLimit)
	if err != nil {
		return p, err
	}
	p.Limit, p.Offset = limit, offset
	return p, nil
}

func pageBounds(limit, offset, max int) (int, int, error) {
	if limit == 0 {
		limit = defaultPageSize
	}
	if max <= 0 {
		max = 50
	}
	if limit < 0 || limit > max {
		return 0, 0, ErrInvalidInput
	}
	if offset < 0 {
		return 0, 0, ErrInvalidInput
	}
	return limit, offset, nil
}
