package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neuralink-ai/site-backend/internal/api/http/handlers"
	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/events"
	"github.com/neuralink-ai/site-backend/internal/observability"
	"github.com/neuralink-ai/site-backend/internal/repository"
	"github.com/neuralink-ai/site-backend/internal/seed"
	"github.com/neuralink-ai/site-backend/internal/service"
)

type testServer struct {
	app           *fiber.App
	consultations repository.ConsultationRepository
}

type serverOption func(*RouteConfig)

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	cat, err := seed.Load()
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher()
	services := repository.NewMemoryServiceRepository(cat.Services)
	team := repository.NewMemoryTeamRepository(cat.Team)
	consultations := repository.NewMemoryConsultationRepository()

	routes := RouteConfig{
		Health: handlers.NewHealthHandler("NeuraLink AI Backend", "1.0.0", nil),
		Services: handlers.NewServicesHandler(service.NewCatalogService(service.CatalogDependencies{
			ServiceRepo: services,
			Dispatcher:  dispatcher,
		})),
		Team: handlers.NewTeamHandler(service.NewTeamService(team)),
		Contact: handlers.NewContactHandler(
			service.NewContactService(cat.Contact),
			service.NewConsultationService(service.ConsultationDependencies{
				ConsultationRepo: consultations,
				Dispatcher:       dispatcher,
			}),
		),
		Dashboard: handlers.NewDashboardHandler(service.NewDashboardService(service.DashboardDependencies{
			ServiceRepo:      services,
			TeamRepo:         team,
			ConsultationRepo: consultations,
			User:             cat.DashboardUser,
		})),
		Metrics: observability.NewMetrics(),
	}
	for _, opt := range opts {
		opt(&routes)
	}

	app := NewServer(ServerConfig{
		AppName:    "test",
		Logger:     zap.NewNop(),
		Middleware: MiddlewareConfig{AllowOrigins: "*"},
		Routes:     routes,
	})
	return &testServer{app: app, consultations: consultations}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type serviceEnvelope struct {
	Message string         `json:"message"`
	Service domain.Service `json:"service"`
}

func TestHealthAndInfo(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/health", "")
	require.Equal(t, fiber.StatusOK, status)
	health := decode[map[string]string](t, body)
	assert.Equal(t, "OK", health["status"])
	assert.Equal(t, "NeuraLink AI Backend", health["service"])
	assert.NotEmpty(t, health["timestamp"])

	status, body = srv.do(t, fiber.MethodGet, "/api", "")
	require.Equal(t, fiber.StatusOK, status)
	info := decode[map[string]any](t, body)
	assert.Equal(t, "1.0.0", info["version"])
	assert.Contains(t, info["endpoints"], "/api/services")
}

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadiness(t *testing.T) {
	srv := newTestServer(t)
	status, _ := srv.do(t, fiber.MethodGet, "/api/health/ready", "")
	assert.Equal(t, fiber.StatusOK, status)

	down := newTestServer(t, func(rc *RouteConfig) {
		rc.Health = handlers.NewHealthHandler("svc", "v", map[string]handlers.Pinger{
			"redis": pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
		})
	})
	status, body := down.do(t, fiber.MethodGet, "/api/health/ready", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), "connection refused")
}

func TestServices_ListAndGet(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/services", "")
	require.Equal(t, fiber.StatusOK, status)
	list := decode[[]domain.Service](t, body)
	require.Len(t, list, 6)
	assert.Equal(t, "AI Strategy Consulting", list[0].Title)

	status, body = srv.do(t, fiber.MethodGet, "/api/services/4", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Computer Vision Solutions", decode[domain.Service](t, body).Title)
}

func TestServices_GetMissing(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/services/99", "")
	require.Equal(t, fiber.StatusNotFound, status)
	e := decode[errorBody](t, body)
	assert.Equal(t, "Service not found", e.Error)
	assert.Equal(t, "Service with ID 99 does not exist", e.Message)

	status, body = srv.do(t, fiber.MethodGet, "/api/services/abc", "")
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Service with ID abc does not exist", decode[errorBody](t, body).Message)
}

func TestServices_CreateDefaults(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodPost, "/api/services", `{"title":"X","description":"Y","icon":"Z"}`)
	require.Equal(t, fiber.StatusCreated, status)

	raw := decode[map[string]any](t, body)
	svc := raw["service"].(map[string]any)
	assert.Equal(t, float64(7), svc["id"])
	assert.Equal(t, []any{}, svc["features"])
	assert.Equal(t, "Contact for pricing", svc["price"])

	status, body = srv.do(t, fiber.MethodGet, "/api/services/7", "")
	require.Equal(t, fiber.StatusOK, status)
	got := decode[domain.Service](t, body)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "Y", got.Description)
	assert.Equal(t, "Z", got.Icon)
}

func TestServices_CreateValidation(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodPost, "/api/services", `{"title":"X"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", decode[errorBody](t, body).Error)

	status, _ = srv.do(t, fiber.MethodPost, "/api/services", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = srv.do(t, fiber.MethodPost, "/api/services", `{"title":`)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid payload", decode[errorBody](t, body).Error)

	_, body = srv.do(t, fiber.MethodGet, "/api/services", "")
	assert.Len(t, decode[[]domain.Service](t, body), 6)
}

func TestServices_UpdatePriceOnly(t *testing.T) {
	srv := newTestServer(t)

	_, body := srv.do(t, fiber.MethodGet, "/api/services/2", "")
	before := decode[domain.Service](t, body)

	status, body := srv.do(t, fiber.MethodPut, "/api/services/2", `{"price":"X"}`)
	require.Equal(t, fiber.StatusOK, status)
	env := decode[serviceEnvelope](t, body)
	assert.Equal(t, "Service updated successfully", env.Message)

	expected := before
	expected.Price = "X"
	assert.Equal(t, expected, env.Service)

	status, _ = srv.do(t, fiber.MethodPut, "/api/services/99", `{"price":"X"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestServices_Delete(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodDelete, "/api/services/3", "")
	require.Equal(t, fiber.StatusOK, status)
	env := decode[serviceEnvelope](t, body)
	assert.Equal(t, "Service deleted successfully", env.Message)
	assert.Equal(t, "Process Automation", env.Service.Title)

	status, _ = srv.do(t, fiber.MethodGet, "/api/services/3", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = srv.do(t, fiber.MethodDelete, "/api/services/3", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTeam(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/team", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]domain.TeamMember](t, body), 6)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/5", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Lisa Wang", decode[domain.TeamMember](t, body).Name)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/expertise/nlp", "")
	require.Equal(t, fiber.StatusOK, status)
	members := decode[[]domain.TeamMember](t, body)
	require.Len(t, members, 1)
	assert.Equal(t, 5, members[0].ID)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/expertise/mlops", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]domain.TeamMember](t, body), 2)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/expertise/Quantum", "")
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No team members found", decode[errorBody](t, body).Error)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/42", "")
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Team member not found", decode[errorBody](t, body).Error)
}

func TestTeam_ExpertiseWithEscapedSpaces(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/team/expertise/machine%20learning", "")
	require.Equal(t, fiber.StatusOK, status)
	members := decode[[]domain.TeamMember](t, body)
	require.Len(t, members, 1)
	assert.Equal(t, 1, members[0].ID)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/expertise/Deep%20Learning", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]domain.TeamMember](t, body), 2)

	status, body = srv.do(t, fiber.MethodGet, "/api/team/expertise/quantum%20computing", "")
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, `No team members found with expertise in "quantum computing"`, decode[errorBody](t, body).Message)
}

func TestServices_EscapedID(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/services/%31", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, decode[domain.Service](t, body).ID)
}

func TestContactInfo(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/contact", "")
	require.Equal(t, fiber.StatusOK, status)
	info := decode[domain.ContactInfo](t, body)
	assert.Equal(t, "contact@neuralink-ai.com", info.Email)
	assert.Equal(t, "San Francisco", info.Address.City)
	assert.Equal(t, "9:00 AM - 6:00 PM PST", info.BusinessHours["monday"])
}

func TestConsultationIntake(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodPost, "/api/contact/consultation",
		`{"name":"Jane","email":"jane@example.com","message":"Need NLP help"}`)
	require.Equal(t, fiber.StatusCreated, status)
	ack := decode[map[string]any](t, body)
	assert.Equal(t, "Consultation request submitted successfully", ack["message"])
	assert.Equal(t, float64(1), ack["requestId"])
	assert.Equal(t, "24 hours", ack["estimatedResponseTime"])

	status, body = srv.do(t, fiber.MethodGet, "/api/contact/consultation-requests", "")
	require.Equal(t, fiber.StatusOK, status)
	list := decode[service.ConsultationList](t, body)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Requests, 1)
	assert.Equal(t, "Not specified", list.Requests[0].Company)
	assert.Equal(t, "General inquiry", list.Requests[0].ServiceInterest)
	assert.Equal(t, domain.ConsultationStatusPending, list.Requests[0].Status)

	status, body = srv.do(t, fiber.MethodGet, "/api/contact/consultation-requests/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Jane", decode[domain.ConsultationRequest](t, body).Name)

	status, body = srv.do(t, fiber.MethodGet, "/api/contact/consultation-requests/2", "")
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Request not found", decode[errorBody](t, body).Error)
}

func TestConsultationIntake_Validation(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodPost, "/api/contact/consultation", `{"name":"Jane","email":"jane@example.com"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, errorBody{Error: "Missing required fields", Message: "Name, email, and message are required"}, decode[errorBody](t, body))

	status, body = srv.do(t, fiber.MethodPost, "/api/contact/consultation", `{"name":"Jane","email":"not-an-email","message":"hi"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, errorBody{Error: "Invalid email", Message: "Please provide a valid email address"}, decode[errorBody](t, body))

	_, body = srv.do(t, fiber.MethodGet, "/api/contact/consultation-requests", "")
	assert.Equal(t, 0, decode[service.ConsultationList](t, body).Total)
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, fiber.MethodGet, "/api/dashboard", "")
	require.Equal(t, fiber.StatusOK, status)
	snap := decode[domain.DashboardSnapshot](t, body)
	assert.Equal(t, "Admin User", snap.User.Name)
	assert.Equal(t, 6, snap.Metrics.TotalServices)
	assert.Equal(t, 6, snap.Metrics.ActiveTeamMembers)
	assert.Equal(t, 0, snap.Metrics.ResponseRate)
	assert.Empty(t, snap.RecentActivity)

	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		status, _ := srv.do(t, fiber.MethodPost, "/api/contact/consultation",
			`{"name":"`+name+`","email":"x@y.io","message":"m"}`)
		require.Equal(t, fiber.StatusCreated, status)
	}
	require.NoError(t, srv.consultations.Create(context.Background(), &domain.ConsultationRequest{
		Name:   "G",
		Status: domain.ConsultationStatusCompleted,
	}))
	srv.do(t, fiber.MethodPost, "/api/services", `{"title":"X","description":"Y","icon":"Z"}`)

	_, body = srv.do(t, fiber.MethodGet, "/api/dashboard", "")
	snap = decode[domain.DashboardSnapshot](t, body)
	assert.Equal(t, 7, snap.Metrics.TotalServices)
	assert.Equal(t, 7, snap.Metrics.TotalConsultations)
	assert.Equal(t, 6, snap.Metrics.PendingConsultations)
	assert.Equal(t, 14, snap.Metrics.ResponseRate)
	require.Len(t, snap.RecentActivity, 5)
	assert.Equal(t, "New consultation request from G", snap.RecentActivity[0].Title)
	assert.Equal(t, "New consultation request from C", snap.RecentActivity[4].Title)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{fiber.MethodGet, "/api/unknown"},
		{fiber.MethodGet, "/"},
		{fiber.MethodPatch, "/api/services/1"},
		{fiber.MethodPost, "/api/team"},
	} {
		status, body := srv.do(t, tc.method, tc.path, "")
		require.Equal(t, fiber.StatusNotFound, status, tc.path)
		assert.Equal(t, errorBody{Error: "Not Found", Message: "The requested endpoint does not exist"}, decode[errorBody](t, body))
	}
}

func TestPanicBecomesInternalError(t *testing.T) {
	logger := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: fallbackErrorHandler(logger, nil)})
	RegisterMiddlewares(app, logger, nil, MiddlewareConfig{AllowOrigins: "*"})
	app.Get("/boom", func(*fiber.Ctx) error { panic("kaboom") })
	app.Use(notFoundHandler)
	srv := &testServer{app: app}

	status, body := srv.do(t, fiber.MethodGet, "/boom", "")
	require.Equal(t, fiber.StatusInternalServerError, status)
	e := decode[errorBody](t, body)
	assert.Equal(t, "Internal Server Error", e.Error)
	assert.Equal(t, "Something went wrong!", e.Message)
	assert.NotContains(t, string(body), "kaboom")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	srv.do(t, fiber.MethodGet, "/api/services", "")

	status, body := srv.do(t, fiber.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "neuralink_api_http_requests_total")
}

func TestSecurityAndRequestIDHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/health", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://example.com")
	resp, err := srv.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
