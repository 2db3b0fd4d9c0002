package usecase

import (
	"context"
	"log/slog"

	"career-compass/internal/config"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

// candidateOverfetch widens the store lookup so re-ranking has room to reorder.
const candidateOverfetch = 2

type RecommendedResource struct {
	Resource       resource.LearningResource `json:"resource"`
	Score          int                       `json:"score"`
	MatchingSkills []string                  `json:"matchingSkills"`
}

type ResourceRecommendationUsecase interface {
	RecommendResources(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedResource, error)
	RecommendResourcesForProfile(ctx context.Context, p matching.Profile, limit int) ([]RecommendedResource, error)
}

type ResourceRecommendation struct {
	users     user.Repository
	resources repository.ResourceRepository
	cfg       config.MatchingConfig
	logger    *slog.Logger
}

func NewResourceRecommendationUsecase(users user.Repository, resources repository.ResourceRepository, cfg config.MatchingConfig, logger *slog.Logger) *ResourceRecommendation {
	return &ResourceRecommendation{
		users:     users,
		resources: resources,
		cfg:       cfg,
		logger:    loggerOrDiscard(logger).With("component", "resource_recommendation"),
	}
}

func (u *ResourceRecommendation) RecommendResources(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedResource, error) {
	usr, err := loadUser(ctx, u.users, u.cfg.QueryTimeout, userID)
	if err != nil {
		return nil, err
	}
	return u.RecommendResourcesForProfile(ctx, usr.Profile(), limit)
}

func (u *ResourceRecommendation) RecommendResourcesForProfile(ctx context.Context, p matching.Profile, limit int) ([]RecommendedResource, error) {
	limit = clampLimit(limit, u.cfg.DefaultResourceLimit, u.cfg.MaxLimit)

	q, ok := matching.ResourceCandidateQuery(p)
	if !ok {
		return []RecommendedResource{}, nil
	}

	qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
	defer cancel()

	candidates, err := u.resources.FindCandidates(qctx, q, candidateOverfetch*limit)
	if err != nil {
		u.logger.Error("find candidate resources failed", "track", q.Track, "skills", len(q.Skills), "error", err)
		return nil, internalErr(err)
	}
	if len(candidates) == 0 {
		return []RecommendedResource{}, nil
	}

	profiles := make([]matching.ResourceProfile, len(candidates))
	for i := range candidates {
		profiles[i] = candidates[i].MatchProfile()
	}

	ranked := matching.ScoreResources(p, profiles, limit)
	out := make([]RecommendedResource, len(ranked))
	for i, m := range ranked {
		out[i] = RecommendedResource{
			Resource:       candidates[m.Index],
			Score:          m.Score,
			MatchingSkills: m.MatchingSkills,
		}
	}
	return out, nil
}
