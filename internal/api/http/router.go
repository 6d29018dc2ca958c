package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/neuralink-ai/site-backend/internal/api/http/handlers"
	"github.com/neuralink-ai/site-backend/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Services  *handlers.ServicesHandler
	Team      *handlers.TeamHandler
	Contact   *handlers.ContactHandler
	Dashboard *handlers.DashboardHandler
	Metrics   *observability.Metrics
}

// ServerConfig bundles everything needed to build the fiber app.
type ServerConfig struct {
	AppName    string
	Logger     *zap.Logger
	Middleware MiddlewareConfig
	Routes     RouteConfig
}

// NewServer builds a fiber app with middlewares and routes registered.
func NewServer(cfg ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          fallbackErrorHandler(cfg.Logger, cfg.Routes.Metrics),
	})
	RegisterMiddlewares(app, cfg.Logger, cfg.Routes.Metrics, cfg.Middleware)
	RegisterRoutes(app, cfg.Routes)
	return app
}

// RegisterRoutes wires HTTP routes. Anything unmatched falls through to a 404.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")
	api.Get("/", cfg.Health.Info)
	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	services := api.Group("/services")
	services.Get("/", cfg.Services.List)
	services.Post("/", cfg.Services.Create)
	services.Get("/:id", cfg.Services.Get)
	services.Put("/:id", cfg.Services.Update)
	services.Delete("/:id", cfg.Services.Delete)

	team := api.Group("/team")
	team.Get("/", cfg.Team.List)
	team.Get("/expertise/:skill", cfg.Team.ByExpertise)
	team.Get("/:id", cfg.Team.Get)

	contact := api.Group("/contact")
	contact.Get("/", cfg.Contact.Info)
	contact.Post("/consultation", cfg.Contact.SubmitConsultation)
	contact.Get("/consultation-requests", cfg.Contact.ListConsultations)
	contact.Get("/consultation-requests/:id", cfg.Contact.GetConsultation)

	api.Get("/dashboard", cfg.Dashboard.Get)

	app.Use(notFoundHandler)
}
