package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Jobs      *handler.JobsHandler
	Resources *handler.ResourcesHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.AuthMiddleware == nil {
		return
	}

	protect := h.AuthMiddleware.Middleware()

	RegisterAuth(r.Group("/auth"), h.Auth, protect)
	RegisterJobs(r.Group("/jobs"), h.Jobs, protect)
	RegisterResources(r.Group("/resources"), h.Resources, protect)
	RegisterProfile(r.Group("/profile", protect), h.Profile)
}
