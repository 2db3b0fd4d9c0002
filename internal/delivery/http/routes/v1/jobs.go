package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler, protect fiber.Handler) {
	if r == nil {
		return
	}
	if jobsHandler == nil {
		return
	}

	jobsHandler.RegisterRoutes(r, protect)
}

func RegisterResources(r fiber.Router, resourcesHandler *handler.ResourcesHandler, protect fiber.Handler) {
	if r == nil {
		return
	}
	if resourcesHandler == nil {
		return
	}

	resourcesHandler.RegisterRoutes(r, protect)
}
