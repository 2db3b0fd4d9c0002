package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"career-compass/internal/domain/resource"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourcesApp(catalog *fakeResourceCatalog, rec *fakeResourceRecommender) *fiber.App {
	h := NewResourcesHandler(catalog, rec)
	return newTestApp(func(app *fiber.App) {
		h.RegisterRoutes(app.Group("/resources"), middlewareFor(newTestJWT()))
	})
}

func TestResourcesHandler_BySkillsValidatesBody(t *testing.T) {
	catalog := &fakeResourceCatalog{page: usecase.ResourcePage{Items: []resource.LearningResource{}}}
	app := newResourcesApp(catalog, &fakeResourceRecommender{})

	req := httptest.NewRequest(http.MethodPost, "/resources/by-skills", strings.NewReader(`{"skills":[]}`))
	req.Header.Set("Content-Type", "application/json")
	status, env := doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation failed", env.Message)
	assert.Contains(t, string(env.Data), `"skills"`)

	req = httptest.NewRequest(http.MethodPost, "/resources/by-skills", strings.NewReader(`{"skills":["React","SQL"]}`))
	req.Header.Set("Content-Type", "application/json")
	status, _ = doRequest(t, app, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"React", "SQL"}, catalog.gotSkills)
}

func TestResourcesHandler_ListParsesFilters(t *testing.T) {
	catalog := &fakeResourceCatalog{page: usecase.ResourcePage{Items: []resource.LearningResource{}}}
	app := newResourcesApp(catalog, &fakeResourceRecommender{})

	status, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/resources?skills=React,%20SQL,&cost=Free&difficulty=Beginner", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"React", "SQL"}, catalog.params.AnySkills)
	assert.Equal(t, "Free", catalog.params.Cost)
	assert.Equal(t, "Beginner", catalog.params.Difficulty)
}

func TestResourcesHandler_Recommended(t *testing.T) {
	rec := &fakeResourceRecommender{items: []usecase.RecommendedResource{{
		Resource:       resource.LearningResource{Title: "SQL for Data Science"},
		Score:          65,
		MatchingSkills: []string{"SQL"},
	}}}
	app := newResourcesApp(&fakeResourceCatalog{}, rec)

	req := httptest.NewRequest(http.MethodGet, "/resources/recommended", nil)
	req.Header.Set("Authorization", bearer(t, newTestJWT(), uuid.New()))

	status, env := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, rec.gotLimit)
	assert.Contains(t, string(env.Data), `"score":65`)
}

func TestResourcesHandler_GetNotFound(t *testing.T) {
	app := newResourcesApp(&fakeResourceCatalog{err: usecase.ErrResourceNotFound}, &fakeResourceRecommender{})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/resources/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Learning resource not found", env.Message)
}
