package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neuralink-ai/site-backend/internal/api/dto"
)

// Pinger is a dependency that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness, readiness and API info requests.
type HealthHandler struct {
	serviceName  string
	version      string
	dependencies map[string]Pinger
}

// NewHealthHandler returns a new handler instance. Only configured
// dependencies should be passed in.
func NewHealthHandler(serviceName, version string, dependencies map[string]Pinger) *HealthHandler {
	if dependencies == nil {
		dependencies = map[string]Pinger{}
	}
	return &HealthHandler{serviceName: serviceName, version: version, dependencies: dependencies}
}

// Live handles GET /api/health.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "OK",
		Timestamp: currentTimestamp(),
		Service:   h.serviceName,
	})
}

// Ready handles GET /api/health/ready by pinging each dependency.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := map[string]string{}
	ready := true
	for name, dep := range h.dependencies {
		if err := dep.Ping(ctx); err != nil {
			depStatus[name] = err.Error()
			ready = false
			continue
		}
		depStatus[name] = "ok"
	}

	if ready {
		return c.JSON(dto.ReadinessResponse{Status: "ready", Dependencies: depStatus})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ReadinessResponse{
		Status:       "unavailable",
		Dependencies: depStatus,
	})
}

// Info handles GET /api.
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(dto.APIInfoResponse{
		Name:    h.serviceName,
		Version: h.version,
		Endpoints: []string{
			"/api/health",
			"/api/services",
			"/api/team",
			"/api/contact",
			"/api/dashboard",
		},
	})
}
