package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterAuth(r fiber.Router, authHandler *handler.AuthHandler, protect fiber.Handler) {
	if r == nil {
		return
	}
	if authHandler == nil {
		return
	}

	authHandler.RegisterRoutes(r, protect)
}

// RegisterProfile expects r to already carry the auth middleware.
func RegisterProfile(r fiber.Router, profileHandler *handler.ProfileHandler) {
	if r == nil {
		return
	}
	if profileHandler == nil {
		return
	}

	profileHandler.RegisterRoutes(r)
}
