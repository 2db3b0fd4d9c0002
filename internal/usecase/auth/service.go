package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	minFullNameLength = 2
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

// RegisterInput carries a sign-up request. Blank education, experience and
// track fall back to Bachelor, Fresher and Web Development.
type RegisterInput struct {
	Email           string
	Password        string
	FullName        string
	EducationLevel  string
	Department      string
	ExperienceLevel string
	PreferredTrack  string
	Skills          []string
}

type LoginInput struct {
	Email    string
	Password string
}

type Option func(*Service)

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

type Service struct {
	users user.Repository
	cost  int

	// dummyHash is compared against when the email is unknown so a failed
	// login costs the same either way.
	dummyHash []byte
}

func NewService(users user.Repository, opts ...Option) *Service {
	s := &Service{users: users, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("career-compass"), s.cost)
	return s
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	u, err := newUser(in)
	if err != nil {
		return user.User{}, err
	}

	exists, err := s.users.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return user.User{}, internal(err)
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, internal(err)
	}
	u.PasswordHash = string(hash)

	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, internal(err)
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, internal(err)
	}
	return sanitizeUser(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
		return user.User{}, ErrInvalidCredentials
	case err != nil:
		return user.User{}, internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return sanitizeUser(u), nil
}

// newUser validates in and builds the user to store, without a password hash.
func newUser(in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)
	if email == "" ||
		len(strings.TrimSpace(in.Password)) < minPasswordLength ||
		utf8.RuneCountInString(fullName) < minFullNameLength {
		return user.User{}, ErrInvalidInput
	}

	education := career.EducationLevel(orDefault(in.EducationLevel, string(career.EducationBachelor)))
	experience := career.ExperienceLevel(orDefault(in.ExperienceLevel, string(career.ExperienceFresher)))
	track := career.Track(orDefault(in.PreferredTrack, string(career.TrackWebDevelopment)))
	if !education.Valid() || !experience.Valid() || !track.Valid() {
		return user.User{}, ErrInvalidInput
	}

	return user.User{
		ID:              uuid.New(),
		Email:           email,
		FullName:        fullName,
		EducationLevel:  education,
		Department:      strings.TrimSpace(in.Department),
		ExperienceLevel: experience,
		PreferredTrack:  track,
		Skills:          dedupeSkills(in.Skills),
		TargetRoles:     []string{},
		Projects:        []user.Project{},
	}, nil
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dedupeSkills trims, drops blanks and keeps the first spelling of each
// case-insensitive duplicate.
func dedupeSkills(skills []string) []string {
	cleaned := matching.CleanSkills(skills)
	seen := make(map[string]struct{}, len(cleaned))
	out := make([]string, 0, len(cleaned))
	for _, s := range cleaned {
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
