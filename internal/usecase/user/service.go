package user

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

// UpdateProfileInput carries optional changes; nil fields are left alone.
type UpdateProfileInput struct {
	FullName        *string
	EducationLevel  *string
	Department      *string
	ExperienceLevel *string
	PreferredTrack  *string
	Skills          *[]string
	TargetRoles     *[]string
	Bio             *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if len(name) < 2 {
			return user.User{}, ErrInvalidInput
		}
		usr.FullName = name
	}
	if in.EducationLevel != nil {
		v := career.EducationLevel(strings.TrimSpace(*in.EducationLevel))
		if !v.Valid() {
			return user.User{}, ErrInvalidInput
		}
		usr.EducationLevel = v
	}
	if in.Department != nil {
		usr.Department = strings.TrimSpace(*in.Department)
	}
	if in.ExperienceLevel != nil {
		v := career.ExperienceLevel(strings.TrimSpace(*in.ExperienceLevel))
		if !v.Valid() {
			return user.User{}, ErrInvalidInput
		}
		usr.ExperienceLevel = v
	}
	if in.PreferredTrack != nil {
		v := career.Track(strings.TrimSpace(*in.PreferredTrack))
		if !v.Valid() {
			return user.User{}, ErrInvalidInput
		}
		usr.PreferredTrack = v
	}
	if in.Skills != nil {
		usr.Skills = dedupe(*in.Skills)
	}
	if in.TargetRoles != nil {
		usr.TargetRoles = dedupe(*in.TargetRoles)
	}
	if in.Bio != nil {
		usr.Bio = strings.TrimSpace(*in.Bio)
	}

	if err := s.save(ctx, usr); err != nil {
		return user.User{}, err
	}
	return s.GetProfile(ctx, userID)
}

// AddSkill appends skill unless the profile already lists it under any
// casing, and returns the resulting skill list.
func (s *Service) AddSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, ErrInvalidInput
	}

	usr, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range usr.Skills {
		if strings.EqualFold(existing, skill) {
			return usr.Skills, nil
		}
	}

	usr.Skills = append(usr.Skills, skill)
	if err := s.save(ctx, usr); err != nil {
		return nil, err
	}
	return usr.Skills, nil
}

// RemoveSkill drops every entry equal to skill ignoring case.
func (s *Service) RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, ErrInvalidInput
	}

	usr, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(usr.Skills))
	for _, existing := range usr.Skills {
		if strings.EqualFold(existing, skill) {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) == len(usr.Skills) {
		return usr.Skills, nil
	}

	usr.Skills = kept
	if err := s.save(ctx, usr); err != nil {
		return nil, err
	}
	return usr.Skills, nil
}

// ProjectInput describes a project to add to the profile. Title is required.
type ProjectInput struct {
	Title        string
	Description  string
	Technologies []string
}

// AddProject appends a project with a fresh id and returns the resulting
// project list.
func (s *Service) AddProject(ctx context.Context, userID uuid.UUID, in ProjectInput) ([]user.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	usr, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	usr.Projects = append(usr.Projects, user.Project{
		ID:           uuid.New(),
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Technologies: dedupe(in.Technologies),
	})
	if err := s.save(ctx, usr); err != nil {
		return nil, err
	}
	return usr.Projects, nil
}

// RemoveProject drops the project with projectID. An unknown id leaves the
// list unchanged.
func (s *Service) RemoveProject(ctx context.Context, userID, projectID uuid.UUID) ([]user.Project, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]user.Project, 0, len(usr.Projects))
	for _, p := range usr.Projects {
		if p.ID == projectID {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(usr.Projects) {
		return usr.Projects, nil
	}

	usr.Projects = kept
	if err := s.save(ctx, usr); err != nil {
		return nil, err
	}
	return usr.Projects, nil
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrNotFound
	}
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	if usr.Skills == nil {
		usr.Skills = []string{}
	}
	if usr.Projects == nil {
		usr.Projects = []user.Project{}
	}
	return usr, nil
}

func (s *Service) save(ctx context.Context, usr user.User) error {
	if err := s.users.UpdateProfile(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func dedupe(values []string) []string {
	cleaned := matching.CleanSkills(values)
	seen := make(map[string]struct{}, len(cleaned))
	out := make([]string, 0, len(cleaned))
	for _, v := range cleaned {
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
