package middleware

import (
	"errors"
	"log/slog"

	"career-compass/internal/pkg/response"
	"career-compass/internal/pkg/validator"

	"github.com/gofiber/fiber/v3"
)

// AppError is what handlers return for an expected failure. Status codes of
// 500 and above never expose Message or Data to the client.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware turns handler errors and panics into a SemanticResponse.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					"panic", r,
					"method", c.Method(),
					"path", c.Path(),
					"request_id", requestID(c),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		out := normalizeError(err)
		if out.status >= 500 {
			m.logger.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", requestID(c),
				"error", err,
			)
		}
		return response.Error(c, out.status, out.message, out.data)
	}
}

type normalized struct {
	status  int
	message string
	data    any
}

var internalError = normalized{status: fiber.StatusInternalServerError, message: response.MessageInternalServerError}

func normalizeError(err error) normalized {
	var (
		appErr   *AppError
		verr     *validator.ValidationError
		fiberErr *fiber.Error
	)
	switch {
	case err == nil:
		return internalError
	case errors.As(err, &appErr):
		return clientFacing(appErr.StatusCode, appErr.Message, appErr.Data)
	case errors.As(err, &verr):
		return normalized{status: fiber.StatusBadRequest, message: response.MessageValidationFailed, data: verr.Errors}
	case errors.As(err, &fiberErr):
		return clientFacing(fiberErr.Code, fiberErr.Message, nil)
	default:
		return internalError
	}
}

func clientFacing(status int, message string, data any) normalized {
	if status <= 0 || status >= 500 {
		return internalError
	}
	if message == "" {
		message = response.DefaultMessage(status)
	}
	return normalized{status: status, message: message, data: data}
}
