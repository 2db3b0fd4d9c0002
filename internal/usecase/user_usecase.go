package usecase

import (
	"context"

	"career-compass/internal/domain/user"
	ucuser "career-compass/internal/usecase/user"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.User, error)
	AddSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error)
	AddProject(ctx context.Context, userID uuid.UUID, in ucuser.ProjectInput) ([]user.Project, error)
	RemoveProject(ctx context.Context, userID, projectID uuid.UUID) ([]user.Project, error)
}

type Profile struct {
	svc *ucuser.Service
}

func NewProfileUsecase(users user.Repository) *Profile {
	return &Profile{svc: ucuser.NewService(users)}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return u.svc.GetProfile(ctx, userID)
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.User, error) {
	return u.svc.UpdateProfile(ctx, userID, in)
}

func (u *Profile) AddSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	return u.svc.AddSkill(ctx, userID, skill)
}

func (u *Profile) RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	return u.svc.RemoveSkill(ctx, userID, skill)
}

func (u *Profile) AddProject(ctx context.Context, userID uuid.UUID, in ucuser.ProjectInput) ([]user.Project, error) {
	return u.svc.AddProject(ctx, userID, in)
}

func (u *Profile) RemoveProject(ctx context.Context, userID, projectID uuid.UUID) ([]user.Project, error) {
	return u.svc.RemoveProject(ctx, userID, projectID)
}
