package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/repository"
	"career-compass/internal/search"

	"github.com/google/uuid"
)

type ResourceListParams struct {
	Skill      string
	AnySkills  []string
	Platform   string
	Cost       string
	Difficulty string
	Track      string
	Search     string
	Limit      int
	Offset     int
}

type ResourcePage struct {
	Items  []resource.LearningResource `json:"items"`
	Total  int                         `json:"total"`
	Limit  int                         `json:"limit"`
	Offset int                         `json:"offset"`
}

type ResourceCatalogUsecase interface {
	List(ctx context.Context, params ResourceListParams) (ResourcePage, error)
	Get(ctx context.Context, id uuid.UUID) (resource.LearningResource, error)
	BySkills(ctx context.Context, skills []string, limit, offset int) (ResourcePage, error)
}

type ResourceCatalog struct {
	resources repository.ResourceRepository
	cache     Cache
	cfg       config.MatchingConfig
	logger    *slog.Logger
}

func NewResourceCatalogUsecase(resources repository.ResourceRepository, cache Cache, cfg config.MatchingConfig, logger *slog.Logger) *ResourceCatalog {
	return &ResourceCatalog{resources: resources, cache: cache, cfg: cfg, logger: loggerOrDiscard(logger).With("component", "resource_catalog")}
}

// List returns resources matching params, best rated first.
func (u *ResourceCatalog) List(ctx context.Context, params ResourceListParams) (ResourcePage, error) {
	params, err := u.normalizeListParams(params)
	if err != nil {
		return ResourcePage{}, err
	}

	return loadThroughCache(ctx, u.cache, u.logger, ResourcesListCacheKey(params), func(ctx context.Context) (ResourcePage, error) {
		qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
		defer cancel()

		items, total, err := u.resources.List(qctx, repository.ResourceFilter{
			Skill:       params.Skill,
			AnySkills:   params.AnySkills,
			Platform:    career.Platform(params.Platform),
			Cost:        career.Cost(params.Cost),
			Difficulty:  career.Difficulty(params.Difficulty),
			Track:       career.Track(params.Track),
			SearchTerms: search.ProcessQuery(params.Search).Variants,
			Limit:       params.Limit,
			Offset:      params.Offset,
		})
		if err != nil {
			u.logger.Error("list resources failed", "error", err)
			return ResourcePage{}, internalErr(err)
		}
		return ResourcePage{Items: items, Total: total, Limit: params.Limit, Offset: params.Offset}, nil
	})
}

// BySkills lists resources with a tag containing any of skills. At least one
// non-blank skill is required.
func (u *ResourceCatalog) BySkills(ctx context.Context, skills []string, limit, offset int) (ResourcePage, error) {
	cleaned := matching.CleanSkills(skills)
	if len(cleaned) == 0 {
		return ResourcePage{}, ErrInvalidInput
	}
	return u.List(ctx, ResourceListParams{AnySkills: cleaned, Limit: limit, Offset: offset})
}

func (u *ResourceCatalog) Get(ctx context.Context, id uuid.UUID) (resource.LearningResource, error) {
	if id == uuid.Nil {
		return resource.LearningResource{}, ErrInvalidInput
	}

	return loadThroughCache(ctx, u.cache, u.logger, ResourceCacheKey(id), func(ctx context.Context) (resource.LearningResource, error) {
		qctx, cancel := withQueryTimeout(ctx, u.cfg.QueryTimeout)
		defer cancel()

		r, err := u.resources.GetByID(qctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrResourceNotFound) {
				return resource.LearningResource{}, ErrResourceNotFound
			}
			u.logger.Error("get resource failed", "resource_id", id, "error", err)
			return resource.LearningResource{}, internalErr(err)
		}
		return r, nil
	})
}

func (u *ResourceCatalog) normalizeListParams(p ResourceListParams) (ResourceListParams, error) {
	p.Skill = strings.TrimSpace(p.Skill)
	p.Platform = strings.TrimSpace(p.Platform)
	p.Cost = strings.TrimSpace(p.Cost)
	p.Difficulty = strings.TrimSpace(p.Difficulty)
	p.Track = strings.TrimSpace(p.Track)
	p.Search = strings.TrimSpace(p.Search)
	p.AnySkills = matching.CleanSkills(p.AnySkills)

	if p.Platform != "" && !career.Platform(p.Platform).Valid() {
		return p, ErrInvalidInput
	}
	if p.Cost != "" && !career.Cost(p.Cost).Valid() {
		return p, ErrInvalidInput
	}
	if p.Difficulty != "" && !career.Difficulty(p.Difficulty).Valid() {
		return p, ErrInvalidInput
	}
	if p.Track != "" && !career.Track(p.Track).Valid() {
		return p, ErrInvalidInput
	}

	limit, offset, err := pageBounds(p.Limit, p.Offset, u.cfg.MaxLimit)
	if err != nil {
		return p, err
	}
	p.Limit, p.Offset = limit, offset
	return p, nil
}
