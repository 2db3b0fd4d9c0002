package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/pkg/validator"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:         cfg.App.AppName,
		StructValidator: validator.New(),
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
	})

	registerGlobalMiddleware(f, cfg, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects the stores and builds the HTTP app. The returned cleanup
// closes the container.
func Bootstrap(cfg config.Config, log *slog.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, log *slog.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger.Component(log, "http"))
	app.Use(accessMw.Middleware())

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}))

	errMw := middleware.NewErrorMiddleware(logger.Component(log, "http"))
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	v1Handlers := v1.Handlers{
		Auth:           handler.NewAuthHandler(c.Auth, c.Profile),
		Profile:        handler.NewProfileHandler(c.Profile),
		Jobs:           handler.NewJobsHandler(c.JobCatalog, c.JobRecommendation, c.JobAnalysis),
		Resources:      handler.NewResourcesHandler(c.ResourceCatalog, c.ResourceRecommendation),
		AuthMiddleware: middleware.NewAuthMiddleware(c.JWT),
	}

	routes.NewRegistry(health, v1Handlers).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
