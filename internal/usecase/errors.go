package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
	ErrJobNotFound      = errors.New("job not found")
	ErrResourceNotFound = errors.New("learning resource not found")
)

// internalErr keeps the store error reachable for logs while callers still
// match on ErrInternal.
func internalErr(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func withQueryTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func loadUser(ctx context.Context, users user.Repository, timeout time.Duration, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}

	qctx, cancel := withQueryTimeout(ctx, timeout)
	defer cancel()

	u, err := users.GetUserByID(qctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, internalErr(err)
	}
	return u, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
