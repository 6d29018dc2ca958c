package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/neuralink-ai/site-backend/internal/api/dto"
	"github.com/neuralink-ai/site-backend/internal/service"
)

// ServicesHandler exposes the services catalog.
type ServicesHandler struct {
	catalog *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalog *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{catalog: catalog}
}

// List GET /api/services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	services, err := h.catalog.ListServices(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(services)
}

// Get GET /api/services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, service.NewServiceNotFound)
	if err != nil {
		return err
	}
	svc, err := h.catalog.GetService(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(svc)
}

// Create POST /api/services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.CreateService(c.UserContext(), service.ServiceCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ServiceMutationResponse{
		Message: "Service created successfully",
		Service: *svc,
	})
}

// Update PUT /api/services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, service.NewServiceNotFound)
	if err != nil {
		return err
	}
	var req dto.UpdateServiceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	svc, err := h.catalog.UpdateService(c.UserContext(), id, service.ServicePatch{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ServiceMutationResponse{
		Message: "Service updated successfully",
		Service: *svc,
	})
}

// Delete DELETE /api/services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, service.NewServiceNotFound)
	if err != nil {
		return err
	}
	svc, err := h.catalog.DeleteService(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ServiceMutationResponse{
		Message: "Service deleted successfully",
		Service: *svc,
	})
}
