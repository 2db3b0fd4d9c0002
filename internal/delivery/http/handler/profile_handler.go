package handler

import (
	"errors"
	"net/url"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"
	ucuser "career-compass/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	FullName        *string   `json:"fullName" validate:"omitempty,min=2,max=120"`
	EducationLevel  *string   `json:"educationLevel" validate:"omitempty,max=50"`
	Department      *string   `json:"department" validate:"omitempty,max=120"`
	ExperienceLevel *string   `json:"experienceLevel" validate:"omitempty,max=50"`
	PreferredTrack  *string   `json:"preferredTrack" validate:"omitempty,max=50"`
	Skills          *[]string `json:"skills" validate:"omitempty,max=100,dive,max=100"`
	TargetRoles     *[]string `json:"targetRoles" validate:"omitempty,max=20,dive,max=120"`
	Bio             *string   `json:"bio" validate:"omitempty,max=2000"`
}

type addSkillRequest struct {
	Skill string `json:"skill" validate:"required,max=100"`
}

type addProjectRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Technologies []string `json:"technologies" validate:"omitempty,max=30,dive,max=100"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// RegisterRoutes expects r to be behind the auth middleware.
func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetProfile)
	r.Put("/", h.UpdateProfile)
	r.Post("/skills", h.AddSkill)
	r.Delete("/skills/:skill", h.RemoveSkill)
	r.Post("/projects", h.AddProject)
	r.Delete("/projects/:projectId", h.RemoveProject)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.OK(c, usr)
}

func (h *ProfileHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, ucuser.UpdateProfileInput{
		FullName:        req.FullName,
		EducationLevel:  req.EducationLevel,
		Department:      req.Department,
		ExperienceLevel: req.ExperienceLevel,
		PreferredTrack:  req.PreferredTrack,
		Skills:          req.Skills,
		TargetRoles:     req.TargetRoles,
		Bio:             req.Bio,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.OK(c, usr)
}

func (h *ProfileHandler) AddSkill(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	skills, err := h.uc.AddSkill(c.Context(), userID, req.Skill)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.OK(c, skills)
}

func (h *ProfileHandler) RemoveSkill(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	skill, err := url.PathUnescape(c.Params("skill"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill", nil, err)
	}

	skills, err := h.uc.RemoveSkill(c.Context(), userID, skill)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.OK(c, skills)
}

func (h *ProfileHandler) AddProject(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	projects, err := h.uc.AddProject(c.Context(), userID, ucuser.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.OK(c, projects)
}

func (h *ProfileHandler) RemoveProject(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	projects, err := h.uc.RemoveProject(c.Context(), userID, projectID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.OK(c, projects)
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, ucuser.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
