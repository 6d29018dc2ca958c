package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neuralink-ai/site-backend/internal/service"
)

// TeamHandler exposes the team roster.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

// List GET /api/team.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	members, err := h.team.ListTeam(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(members)
}

// Get GET /api/team/:id.
func (h *TeamHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, service.NewTeamMemberNotFound)
	if err != nil {
		return err
	}
	member, err := h.team.GetTeamMember(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(member)
}

// ByExpertise GET /api/team/expertise/:skill.
func (h *TeamHandler) ByExpertise(c *fiber.Ctx) error {
	members, err := h.team.FindByExpertise(c.UserContext(), param(c, "skill"))
	if err != nil {
		return err
	}
	return c.JSON(members)
}
