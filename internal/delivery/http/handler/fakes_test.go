package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/job"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/pkg/validator"
	"career-compass/internal/usecase"
	ucauth "career-compass/internal/usecase/auth"
	ucuser "career-compass/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestJWT() *jwt.HMACService {
	return jwt.NewHMACService(config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	}, "career-compass")
}

func newTestApp(register func(app *fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{StructValidator: validator.New()})
	app.Use(middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).Middleware())
	register(app)
	return app
}

func bearer(t *testing.T, svc *jwt.HMACService, id uuid.UUID) string {
	t.Helper()
	tok, err := svc.GenerateAccessToken(id, "dev@example.com")
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

type fakeAuthUC struct {
	registered ucauth.RegisterInput
	usr        user.User
	pair       jwt.TokenPair
	err        error
	refreshed  string
}

func (f *fakeAuthUC) Register(_ context.Context, in ucauth.RegisterInput) (user.User, jwt.TokenPair, error) {
	f.registered = in
	return f.usr, f.pair, f.err
}

func (f *fakeAuthUC) Login(_ context.Context, _ ucauth.LoginInput) (user.User, jwt.TokenPair, error) {
	return f.usr, f.pair, f.err
}

func (f *fakeAuthUC) Refresh(_ context.Context, tok string) (jwt.TokenPair, error) {
	f.refreshed = tok
	return f.pair, f.err
}

type fakeProfileUC struct {
	usr       user.User
	skills    []string
	err       error
	gotUserID uuid.UUID
	gotSkill  string
	gotUpdate ucuser.UpdateProfileInput

	projects     []user.Project
	gotProject   ucuser.ProjectInput
	gotProjectID uuid.UUID
}

func (f *fakeProfileUC) GetProfile(_ context.Context, id uuid.UUID) (user.User, error) {
	f.gotUserID = id
	return f.usr, f.err
}

func (f *fakeProfileUC) UpdateProfile(_ context.Context, id uuid.UUID, in ucuser.UpdateProfileInput) (user.User, error) {
	f.gotUserID = id
	f.gotUpdate = in
	return f.usr, f.err
}

func (f *fakeProfileUC) AddSkill(_ context.Context, id uuid.UUID, skill string) ([]string, error) {
	f.gotUserID = id
	f.gotSkill = skill
	return f.skills, f.err
}

func (f *fakeProfileUC) RemoveSkill(_ context.Context, id uuid.UUID, skill string) ([]string, error) {
	f.gotUserID = id
	f.gotSkill = skill
	return f.skills, f.err
}

func (f *fakeProfileUC) AddProject(_ context.Context, id uuid.UUID, in ucuser.ProjectInput) ([]user.Project, error) {
	f.gotUserID = id
	f.gotProject = in
	return f.projects, f.err
}

func (f *fakeProfileUC) RemoveProject(_ context.Context, id, projectID uuid.UUID) ([]user.Project, error) {
	f.gotUserID = id
	f.gotProjectID = projectID
	return f.projects, f.err
}

type fakeJobCatalog struct {
	params usecase.JobListParams
	page   usecase.JobPage
	j      job.Job
	err    error
}

func (f *fakeJobCatalog) List(_ context.Context, p usecase.JobListParams) (usecase.JobPage, error) {
	f.params = p
	return f.page, f.err
}

func (f *fakeJobCatalog) Get(_ context.Context, _ uuid.UUID) (job.Job, error) {
	return f.j, f.err
}

type fakeJobRecommender struct {
	gotUser  uuid.UUID
	gotLimit int
	items    []usecase.RecommendedJob
	err      error
}

func (f *fakeJobRecommender) Recommend(_ context.Context, id uuid.UUID, limit int) ([]usecase.RecommendedJob, error) {
	f.gotUser = id
	f.gotLimit = limit
	return f.items, f.err
}

func (f *fakeJobRecommender) RecommendForProfile(_ context.Context, _ matching.Profile, limit int) ([]usecase.RecommendedJob, error) {
	f.gotLimit = limit
	return f.items, f.err
}

type fakeJobAnalyzer struct {
	out usecase.JobAnalysis
	err error
}

func (f *fakeJobAnalyzer) Analyze(_ context.Context, _, _ uuid.UUID) (usecase.JobAnalysis, error) {
	return f.out, f.err
}

type fakeResourceCatalog struct {
	params    usecase.ResourceListParams
	gotSkills []string
	page      usecase.ResourcePage
	r         resource.LearningResource
	err       error
}

func (f *fakeResourceCatalog) List(_ context.Context, p usecase.ResourceListParams) (usecase.ResourcePage, error) {
	f.params = p
	return f.page, f.err
}

func (f *fakeResourceCatalog) Get(_ context.Context, _ uuid.UUID) (resource.LearningResource, error) {
	return f.r, f.err
}

func (f *fakeResourceCatalog) BySkills(_ context.Context, skills []string, _, _ int) (usecase.ResourcePage, error) {
	f.gotSkills = skills
	return f.page, f.err
}

type fakeResourceRecommender struct {
	gotLimit int
	items    []usecase.RecommendedResource
	err      error
}

func (f *fakeResourceRecommender) RecommendResources(_ context.Context, _ uuid.UUID, limit int) ([]usecase.RecommendedResource, error) {
	f.gotLimit = limit
	return f.items, f.err
}

func (f *fakeResourceRecommender) RecommendResourcesForProfile(_ context.Context, _ matching.Profile, limit int) ([]usecase.RecommendedResource, error) {
	f.gotLimit = limit
	return f.items, f.err
}

func middlewareFor(svc *jwt.HMACService) fiber.Handler {
	return middleware.NewAuthMiddleware(svc).Middleware()
}

type pingFunc func() error

func (f pingFunc) Ping(context.Context) error { return f() }
