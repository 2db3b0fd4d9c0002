package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResourcesHandler struct {
	catalog   usecase.ResourceCatalogUsecase
	recommend usecase.ResourceRecommendationUsecase
}

type bySkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,max=50,dive,max=100"`
	Limit  int      `json:"limit" validate:"omitempty,min=0"`
	Offset int      `json:"offset" validate:"omitempty,min=0"`
}

func NewResourcesHandler(catalog usecase.ResourceCatalogUsecase, recommend usecase.ResourceRecommendationUsecase) *ResourcesHandler {
	return &ResourcesHandler{catalog: catalog, recommend: recommend}
}

func (h *ResourcesHandler) RegisterRoutes(r fiber.Router, protect fiber.Handler) {
	if r == nil || protect == nil {
		return
	}

	r.Get("/recommended", protect, h.Recommended)
	r.Post("/by-skills", h.BySkills)
	r.Get("/:id", h.Get)
	r.Get("/", h.List)
}

func (h *ResourcesHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return err
	}

	page, err := h.catalog.List(c.Context(), usecase.ResourceListParams{
		Skill:      c.Query("skill"),
		AnySkills:  splitCSV(c.Query("skills")),
		Platform:   c.Query("platform"),
		Cost:       c.Query("cost"),
		Difficulty: c.Query("difficulty"),
		Track:      c.Query("track"),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, page)
}

func (h *ResourcesHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "resource")
	if err != nil {
		return err
	}

	res, err := h.catalog.Get(c.Context(), id)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, res)
}

func (h *ResourcesHandler) BySkills(c fiber.Ctx) error {
	var req bySkillsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	page, err := h.catalog.BySkills(c.Context(), req.Skills, req.Limit, req.Offset)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, page)
}

func (h *ResourcesHandler) Recommended(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.recommend.RecommendResources(c.Context(), userID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, items)
}
