package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/repository"
	apperrors "github.com/neuralink-ai/site-backend/pkg/util"
)

// TeamService serves the read-only team roster.
type TeamService struct {
	team repository.TeamRepository
}

// NewTeamService constructs the service.
func NewTeamService(team repository.TeamRepository) *TeamService {
	return &TeamService{team: team}
}

// NewTeamMemberNotFound builds the not-found error for a team member reference.
func NewTeamMemberNotFound(ref any) error {
	return apperrors.NewNotFound("Team member not found", fmt.Sprintf("Team member with ID %v does not exist", ref))
}

// ListTeam returns the full roster.
func (s *TeamService) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	members, err := s.team.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return members, nil
}

// GetTeamMember fetches one member.
func (s *TeamService) GetTeamMember(ctx context.Context, id int) (*domain.TeamMember, error) {
	member, err := s.team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewTeamMemberNotFound(id)
		}
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// FindByExpertise returns members with an expertise tag containing skill, ignoring case.
// Zero matches is reported as not found rather than an empty list.
func (s *TeamService) FindByExpertise(ctx context.Context, skill string) ([]domain.TeamMember, error) {
	members, err := s.team.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	needle := strings.ToLower(skill)
	matches := make([]domain.TeamMember, 0)
	for _, m := range members {
		for _, exp := range m.Expertise {
			if strings.Contains(strings.ToLower(exp), needle) {
				matches = append(matches, m)
				break
			}
		}
	}
	if len(matches) == 0 {
		return nil, apperrors.NewNotFound("No team members found",
			fmt.Sprintf("No team members found with expertise in \"%s\"", needle))
	}
	return matches, nil
}
