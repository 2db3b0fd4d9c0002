package usecase

import (
	"context"
	"errors"
	"log/slog"

	"career-compass/internal/config"
	"career-compass/internal/domain/job"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type JobAnalysis struct {
	Job                job.Job                     `json:"job"`
	Analysis           matching.Result             `json:"analysis"`
	SuggestedResources []resource.LearningResource `json:"suggestedResources"`
	JobPlatforms       []matching.Platform         `json:"jobPlatforms"`
}

type JobAnalysisUsecase interface {
	Analyze(ctx context.Context, userID, jobID uuid.UUID) (JobAnalysis, error)
}

type JobAnalyzer struct {
	users  user.Repository
	jobs   repository.JobRepository
	gaps   ResourceGapUsecase
	cfg    config.MatchingConfig
	logger *slog.Logger
}

func NewJobAnalysisUsecase(users user.Repository, jobs repository.JobRepository, gaps ResourceGapUsecase, cfg config.MatchingConfig, logger *slog.Logger) *JobAnalyzer {
	return &JobAnalyzer{
		users:  users,
		jobs:   jobs,
		gaps:   gaps,
		cfg:    cfg,
		logger: loggerOrDiscard(logger).With("component", "job_analysis"),
	}
}

func (u *JobAnalyzer) Analyze(ctx context.Context, userID, jobID uuid.UUID) (JobAnalysis, error) {
	if jobID == uuid.Nil {
		return JobAnalysis{}, ErrInvalidInput
	}

	usr, err := loadUser(ctx, u.users, u.cfg.QueryTimeout, userID)
	if err != nil {
		return JobAnalysis{}, err
	}

	qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
	j, err := u.jobs.GetByID(qctx, jobID)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobAnalysis{}, ErrJobNotFound
		}
		u.logger.Error("get job failed", "job_id", jobID, "error", err)
		return JobAnalysis{}, internalErr(err)
	}

	result := matching.ScoreProfile(usr.Profile(), j.MatchProfile())

	suggested := []resource.LearningResource{}
	if u.gaps != nil {
		suggested, err = u.gaps.ResourcesForGaps(ctx, result.MissingSkills, u.cfg.GapResourcesPerAnalysis)
		if err != nil {
			return JobAnalysis{}, err
		}
	}

	return JobAnalysis{
		Job:                j,
		Analysis:           result,
		SuggestedResources: suggested,
		JobPlatforms:       matching.SuggestPlatforms(j.JobType, j.Location),
	}, nil
}
