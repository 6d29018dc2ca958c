package repository

import (
	"context"
	"sync"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

// ConsultationRepository stores consultation requests in submission order.
type ConsultationRepository interface {
	List(ctx context.Context) ([]domain.ConsultationRequest, error)
	GetByID(ctx context.Context, id int) (*domain.ConsultationRequest, error)
	// Create assigns req.ID as the current number of stored requests plus one.
	// Ids would collide if requests could ever be removed.
	Create(ctx context.Context, req *domain.ConsultationRequest) error
}

type memoryConsultationRepository struct {
	mu       sync.RWMutex
	requests []domain.ConsultationRequest
}

// NewMemoryConsultationRepository returns an empty in-memory intake log.
func NewMemoryConsultationRepository() ConsultationRepository {
	return &memoryConsultationRepository{}
}

func (r *memoryConsultationRepository) List(_ context.Context) ([]domain.ConsultationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ConsultationRequest{}, r.requests...), nil
}

func (r *memoryConsultationRepository) GetByID(_ context.Context, id int) (*domain.ConsultationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.ID == id {
			found := req
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryConsultationRepository) Create(_ context.Context, req *domain.ConsultationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = len(r.requests) + 1
	r.requests = append(r.requests, *req)
	return nil
}
