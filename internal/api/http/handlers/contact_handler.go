package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/neuralink-ai/site-backend/internal/api/dto"
	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/service"
)

// ContactHandler serves contact info and consultation intake.
type ContactHandler struct {
	contact       *service.ContactService
	consultations *service.ConsultationService
}

// NewContactHandler constructs handler.
func NewContactHandler(contact *service.ContactService, consultations *service.ConsultationService) *ContactHandler {
	return &ContactHandler{contact: contact, consultations: consultations}
}

// Info GET /api/contact.
func (h *ContactHandler) Info(c *fiber.Ctx) error {
	return c.JSON(h.contact.GetContactInfo())
}

// SubmitConsultation POST /api/contact/consultation.
func (h *ContactHandler) SubmitConsultation(c *fiber.Ctx) error {
	var req dto.ConsultationSubmitRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	created, err := h.consultations.Submit(c.UserContext(), service.ConsultationInput{
		Name:            req.Name,
		Email:           req.Email,
		Company:         req.Company,
		Message:         req.Message,
		ServiceInterest: req.ServiceInterest,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ConsultationSubmitResponse{
		Message:               "Consultation request submitted successfully",
		RequestID:             created.ID,
		EstimatedResponseTime: domain.EstimatedResponseTime,
	})
}

// ListConsultations GET /api/contact/consultation-requests.
func (h *ContactHandler) ListConsultations(c *fiber.Ctx) error {
	list, err := h.consultations.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetConsultation GET /api/contact/consultation-requests/:id.
func (h *ContactHandler) GetConsultation(c *fiber.Ctx) error {
	id, err := parseID(c, service.NewConsultationNotFound)
	if err != nil {
		return err
	}
	req, err := h.consultations.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(req)
}
