package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/persistence/postgres"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
)

type Container struct {
	Config config.Config
	Logger *slog.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	Users     user.Repository
	Jobs      repository.JobRepository
	Resources repository.ResourceRepository

	Auth                   *usecase.Auth
	Profile                *usecase.Profile
	ResourceGap            *usecase.ResourceGap
	JobCatalog             *usecase.JobCatalog
	JobRecommendation      *usecase.JobRecommendation
	JobAnalysis            *usecase.JobAnalyzer
	ResourceCatalog        *usecase.ResourceCatalog
	ResourceRecommendation *usecase.ResourceRecommendation
}

func NewContainer(cfg config.Config, log *slog.Logger) (*Container, error) {
	if log == nil {
		log = slog.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(ctx, cfg.Redis, log)
	return NewContainerWith(cfg, log, db, redis), nil
}

// NewContainerWith wires the use cases over an existing connection and cache.
func NewContainerWith(cfg config.Config, log *slog.Logger, db database.DB, redis *cache.Redis) *Container {
	if log == nil {
		log = slog.Default()
	}

	c := &Container{Config: cfg, Logger: log, DB: db, Cache: redis}
	c.JWT = jwt.NewHMACService(cfg.JWT, cfg.App.AppName)

	c.Users = postgres.NewUserRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Resources = repository.NewPostgresResourceRepository(db)

	m := cfg.Matching
	c.Auth = usecase.NewAuthUsecase(c.Users, c.JWT)
	c.Profile = usecase.NewProfileUsecase(c.Users)
	c.ResourceGap = usecase.NewResourceGapUsecase(c.Resources, m, logger.Component(log, "resource_gap"))
	c.JobCatalog = usecase.NewJobCatalogUsecase(c.Jobs, redis, m, logger.Component(log, "job_catalog"))
	c.JobRecommendation = usecase.NewJobRecommendationUsecase(c.Users, c.Jobs, c.ResourceGap, m, logger.Component(log, "job_recommendation"))
	c.JobAnalysis = usecase.NewJobAnalysisUsecase(c.Users, c.Jobs, c.ResourceGap, m, logger.Component(log, "job_analysis"))
	c.ResourceCatalog = usecase.NewResourceCatalogUsecase(c.Resources, redis, m, logger.Component(log, "resource_catalog"))
	c.ResourceRecommendation = usecase.NewResourceRecommendationUsecase(c.Users, c.Resources, m, logger.Component(log, "resource_recommendation"))

	return c
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
