package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/domain/career"
	"career-compass/internal/pkg/jwt"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *jwt.HMACService {
	return jwt.NewHMACService(config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	}, "career-compass-test")
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newTestJWT()
	uc := NewAuthUsecase(users, tokens)
	ctx := context.Background()

	usr, pair, err := uc.Register(ctx, ucauth.RegisterInput{
		Email:    "  Dev@Example.com ",
		Password: "secret123",
		FullName: "Dana Dev",
		Skills:   []string{"Go", "go", " ", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", usr.Email)
	assert.Empty(t, usr.PasswordHash)
	assert.Equal(t, career.EducationBachelor, usr.EducationLevel)
	assert.Equal(t, career.ExperienceFresher, usr.ExperienceLevel)
	assert.Equal(t, career.TrackWebDevelopment, usr.PreferredTrack)
	assert.Equal(t, []string{"Go", "SQL"}, usr.Skills)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	_, _, err = uc.Register(ctx, ucauth.RegisterInput{Email: "dev@example.com", Password: "secret123", FullName: "Dana Dev"})
	assert.ErrorIs(t, err, ucauth.ErrEmailAlreadyRegistered)

	logged, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "DEV@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, usr.ID, logged.ID)

	_, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "dev@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	refreshed, err := uc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, claims.UserID)

	_, err = uc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = uc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newTestJWT())
	ctx := context.Background()

	cases := []ucauth.RegisterInput{
		{Email: "", Password: "secret123", FullName: "Dana"},
		{Email: "a@b.co", Password: "short", FullName: "Dana"},
		{Email: "a@b.co", Password: "secret123", FullName: "D"},
		{Email: "a@b.co", Password: "secret123", FullName: "Dana", PreferredTrack: "Astronomy"},
		{Email: "a@b.co", Password: "secret123", FullName: "Dana", ExperienceLevel: "Senior"},
	}
	for _, in := range cases {
		_, _, err := uc.Register(ctx, in)
		assert.ErrorIs(t, err, ucauth.ErrInvalidInput, "%+v", in)
	}
}

func TestAuth_RegisterStoreFailure(t *testing.T) {
	users := newFakeUserRepo()
	users.err = errors.New("db down")
	uc := NewAuthUsecase(users, newTestJWT())

	_, _, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "a@b.co", Password: "secret123", FullName: "Dana"})
	assert.ErrorIs(t, err, ucauth.ErrInternal)
}
