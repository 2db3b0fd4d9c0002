package usecase

import (
	"context"
	"log/slog"

	"career-compass/internal/config"
	"career-compass/internal/domain/job"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const gapLookupConcurrency = 4

type RecommendedJob struct {
	Job job.Job `json:"job"`
	matching.Result
	SuggestedResources []resource.LearningResource `json:"suggestedResources"`
}

type JobRecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedJob, error)
	RecommendForProfile(ctx context.Context, p matching.Profile, limit int) ([]RecommendedJob, error)
}

type JobRecommendation struct {
	users  user.Repository
	jobs   repository.JobRepository
	gaps   ResourceGapUsecase
	cfg    config.MatchingConfig
	logger *slog.Logger
}

func NewJobRecommendationUsecase(users user.Repository, jobs repository.JobRepository, gaps ResourceGapUsecase, cfg config.MatchingConfig, logger *slog.Logger) *JobRecommendation {
	return &JobRecommendation{
		users:  users,
		jobs:   jobs,
		gaps:   gaps,
		cfg:    cfg,
		logger: loggerOrDiscard(logger).With("component", "job_recommendation"),
	}
}

func (u *JobRecommendation) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedJob, error) {
	usr, err := loadUser(ctx, u.users, u.cfg.QueryTimeout, userID)
	if err != nil {
		return nil, err
	}
	return u.RecommendForProfile(ctx, usr.Profile(), limit)
}

// RecommendForProfile ranks every active job against p, keeps the best limit
// and attaches a few learning resources for each job's missing skills.
func (u *JobRecommendation) RecommendForProfile(ctx context.Context, p matching.Profile, limit int) ([]RecommendedJob, error) {
	limit = clampLimit(limit, u.cfg.DefaultJobLimit, u.cfg.MaxLimit)

	qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
	jobs, err := u.jobs.ListActive(qctx)
	cancel()
	if err != nil {
		u.logger.Error("list active jobs failed", "error", err)
		return nil, internalErr(err)
	}
	if len(jobs) == 0 {
		return []RecommendedJob{}, nil
	}

	profiles := make([]matching.JobProfile, len(jobs))
	for i := range jobs {
		profiles[i] = jobs[i].MatchProfile()
	}

	ranked := matching.RankJobs(p, profiles, limit)
	out := make([]RecommendedJob, len(ranked))
	for i, m := range ranked {
		out[i] = RecommendedJob{
			Job:                jobs[m.Index],
			Result:             m.Result,
			SuggestedResources: []resource.LearningResource{},
		}
	}

	if u.gaps == nil {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(gapLookupConcurrency)
	for i := range out {
		if len(out[i].MissingSkills) == 0 {
			continue
		}
		g.Go(func() error {
			rs, err := u.gaps.ResourcesForGaps(gctx, out[i].MissingSkills, u.cfg.GapResourcesPerJob)
			if err != nil {
				return err
			}
			out[i].SuggestedResources = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u.logger.Debug("jobs recommended", "candidates", len(jobs), "returned", len(out))
	return out, nil
}
