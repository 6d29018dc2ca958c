package service

import (
	"context"
	"fmt"
	"math"

	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/repository"
	apperrors "github.com/neuralink-ai/site-backend/pkg/util"
)

const recentActivityLimit = 5

// DashboardService computes the admin dashboard snapshot.
type DashboardService struct {
	services      repository.ServiceRepository
	team          repository.TeamRepository
	consultations repository.ConsultationRepository
	user          domain.DashboardUser
}

// DashboardDependencies bundles the collections the dashboard reads.
type DashboardDependencies struct {
	ServiceRepo      repository.ServiceRepository
	TeamRepo         repository.TeamRepository
	ConsultationRepo repository.ConsultationRepository
	User             domain.DashboardUser
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	return &DashboardService{
		services:      deps.ServiceRepo,
		team:          deps.TeamRepo,
		consultations: deps.ConsultationRepo,
		user:          deps.User,
	}
}

// GetDashboard recomputes the snapshot from the current collections.
func (s *DashboardService) GetDashboard(ctx context.Context) (*domain.DashboardSnapshot, error) {
	totalServices, err := s.services.Count(ctx)
	if err != nil {
		return nil, dashboardFailure(fmt.Errorf("count services: %w", err))
	}
	teamSize, err := s.team.Count(ctx)
	if err != nil {
		return nil, dashboardFailure(fmt.Errorf("count team: %w", err))
	}
	requests, err := s.consultations.List(ctx)
	if err != nil {
		return nil, dashboardFailure(fmt.Errorf("list consultations: %w", err))
	}

	pending, answered := 0, 0
	for _, req := range requests {
		if req.Status == domain.ConsultationStatusPending {
			pending++
		}
		if req.Answered() {
			answered++
		}
	}

	return &domain.DashboardSnapshot{
		User: s.user,
		Metrics: domain.DashboardMetrics{
			TotalServices:        totalServices,
			ActiveTeamMembers:    teamSize,
			TotalConsultations:   len(requests),
			PendingConsultations: pending,
			ResponseRate:         ResponseRate(answered, len(requests)),
		},
		RecentActivity: RecentActivity(requests, recentActivityLimit),
	}, nil
}

// ResponseRate is the rounded percentage of answered requests, or 0 with none.
func ResponseRate(answered, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(answered)/float64(total)*100 + 0.5))
}

// RecentActivity projects the last limit requests, newest first.
func RecentActivity(requests []domain.ConsultationRequest, limit int) []domain.ActivityItem {
	start := len(requests) - limit
	if start < 0 {
		start = 0
	}
	items := make([]domain.ActivityItem, 0, len(requests)-start)
	for i := len(requests) - 1; i >= start; i-- {
		req := requests[i]
		items = append(items, domain.ActivityItem{
			ID:        req.ID,
			Type:      "consultation",
			Title:     "New consultation request from " + req.Name,
			Timestamp: req.Timestamp,
		})
	}
	return items
}

func dashboardFailure(err error) error {
	return apperrors.NewInternalErrorWithMessage("Failed to fetch dashboard data", err)
}
