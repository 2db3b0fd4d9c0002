package usecase

import (
	"context"
	"log/slog"

	"career-compass/internal/config"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/repository"
)

type ResourceGapUsecase interface {
	ResourcesForGaps(ctx context.Context, missingSkills []string, limit int) ([]resource.LearningResource, error)
}

type ResourceGap struct {
	resources repository.ResourceRepository
	cfg       config.MatchingConfig
	logger    *slog.Logger
}

func NewResourceGapUsecase(resources repository.ResourceRepository, cfg config.MatchingConfig, logger *slog.Logger) *ResourceGap {
	return &ResourceGap{resources: resources, cfg: cfg, logger: loggerOrDiscard(logger).With("component", "resource_gap")}
}

// ResourcesForGaps returns up to limit resources carrying a tag that contains
// one of missingSkills. Blank entries are ignored; when nothing is left no
// lookup is made.
func (u *ResourceGap) ResourcesForGaps(ctx context.Context, missingSkills []string, limit int) ([]resource.LearningResource, error) {
	skills := matching.CleanSkills(missingSkills)
	if len(skills) == 0 {
		return []resource.LearningResource{}, nil
	}
	limit = clampLimit(limit, u.cfg.GapResourcesPerAnalysis, u.cfg.MaxLimit)

	qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
	defer cancel()

	rs, err := u.resources.FindBySkillTags(qctx, skills, limit)
	if err != nil {
		u.logger.Error("find resources by skill tags failed", "skills", len(skills), "error", err)
		return nil, internalErr(err)
	}
	return rs, nil
}
