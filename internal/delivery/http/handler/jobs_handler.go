package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	catalog   usecase.JobCatalogUsecase
	recommend usecase.JobRecommendationUsecase
	analysis  usecase.JobAnalysisUsecase
}

func NewJobsHandler(catalog usecase.JobCatalogUsecase, recommend usecase.JobRecommendationUsecase, analysis usecase.JobAnalysisUsecase) *JobsHandler {
	return &JobsHandler{catalog: catalog, recommend: recommend, analysis: analysis}
}

// RegisterRoutes mounts the job endpoints. Static segments go first so
// /recommended is not captured by /:id.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, protect fiber.Handler) {
	if r == nil || protect == nil {
		return
	}

	r.Get("/recommended", protect, h.Recommended)
	r.Get("/:id/analysis", protect, h.Analysis)
	r.Get("/:id", h.Get)
	r.Get("/", h.List)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return err
	}

	page, err := h.catalog.List(c.Context(), usecase.JobListParams{
		Track:           c.Query("track"),
		Location:        c.Query("location"),
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Search:          c.Query("search"),
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, page)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "job")
	if err != nil {
		return err
	}

	j, err := h.catalog.Get(c.Context(), id)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, j)
}

func (h *JobsHandler) Recommended(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.recommend.Recommend(c.Context(), userID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, items)
}

func (h *JobsHandler) Analysis(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "job")
	if err != nil {
		return err
	}

	out, err := h.analysis.Analyze(c.Context(), userID, id)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.OK(c, out)
}
