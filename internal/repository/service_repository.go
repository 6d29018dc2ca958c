package repository

import (
	"context"
	"sync"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

// ServiceRepository manages persistence for catalog services.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int) (*domain.Service, error)
	// Create assigns svc.ID as the highest existing id plus one.
	Create(ctx context.Context, svc *domain.Service) error
	// Update applies fn to the stored record and persists the result.
	Update(ctx context.Context, id int, fn func(*domain.Service)) (*domain.Service, error)
	Delete(ctx context.Context, id int) (*domain.Service, error)
	Count(ctx context.Context) (int, error)
}

type memoryServiceRepository struct {
	mu       sync.RWMutex
	services []domain.Service
}

// NewMemoryServiceRepository returns a repository holding seed in insertion order.
func NewMemoryServiceRepository(seed []domain.Service) ServiceRepository {
	services := make([]domain.Service, 0, len(seed))
	for _, svc := range seed {
		services = append(services, svc.Clone())
	}
	return &memoryServiceRepository{services: services}
}

func (r *memoryServiceRepository) List(_ context.Context) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Service, 0, len(r.services))
	for _, svc := range r.services {
		out = append(out, svc.Clone())
	}
	return out, nil
}

func (r *memoryServiceRepository) GetByID(_ context.Context, id int) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	svc := r.services[idx].Clone()
	return &svc, nil
}

func (r *memoryServiceRepository) Create(_ context.Context, svc *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for _, existing := range r.services {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	svc.ID = maxID + 1
	r.services = append(r.services, svc.Clone())
	return nil
}

func (r *memoryServiceRepository) Update(_ context.Context, id int, fn func(*domain.Service)) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	updated := r.services[idx].Clone()
	fn(&updated)
	updated.ID = id
	r.services[idx] = updated.Clone()
	return &updated, nil
}

func (r *memoryServiceRepository) Delete(_ context.Context, id int) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	removed := r.services[idx]
	r.services = append(r.services[:idx], r.services[idx+1:]...)
	return &removed, nil
}

func (r *memoryServiceRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services), nil
}

// indexOf must be called with mu held.
func (r *memoryServiceRepository) indexOf(id int) int {
	for i := range r.services {
		if r.services[i].ID == id {
			return i
		}
	}
	return -1
}
