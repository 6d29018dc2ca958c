package repository

import (
	"context"
	"sync"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

// TeamRepository exposes the read-only team roster.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id int) (*domain.TeamMember, error)
	Count(ctx context.Context) (int, error)
}

type memoryTeamRepository struct {
	mu      sync.RWMutex
	members []domain.TeamMember
}

// NewMemoryTeamRepository returns a repository over the seeded roster.
func NewMemoryTeamRepository(seed []domain.TeamMember) TeamRepository {
	members := make([]domain.TeamMember, 0, len(seed))
	for _, m := range seed {
		members = append(members, cloneMember(m))
	}
	return &memoryTeamRepository{members: members}
}

func (r *memoryTeamRepository) List(_ context.Context) ([]domain.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, cloneMember(m))
	}
	return out, nil
}

func (r *memoryTeamRepository) GetByID(_ context.Context, id int) (*domain.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.ID == id {
			member := cloneMember(m)
			return &member, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryTeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members), nil
}

func cloneMember(m domain.TeamMember) domain.TeamMember {
	m.Expertise = append([]string{}, m.Expertise...)
	return m
}
