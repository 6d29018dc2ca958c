package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/events"
	"github.com/neuralink-ai/site-backend/internal/repository"
	apperrors "github.com/neuralink-ai/site-backend/pkg/util"
)

// CatalogService manages the services catalog.
type CatalogService struct {
	services   repository.ServiceRepository
	dispatcher events.Dispatcher
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	ServiceRepo repository.ServiceRepository
	Dispatcher  events.Dispatcher
}

// ServiceCreateInput describes a new catalog entry.
type ServiceCreateInput struct {
	Title       string
	Description string
	Icon        string
	Features    []string
	Price       string
}

// ServicePatch carries a partial update. Nil fields are left untouched;
// non-nil fields overwrite even when empty.
type ServicePatch struct {
	Title       *string
	Description *string
	Icon        *string
	Features    *[]string
	Price       *string
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{services: deps.ServiceRepo, dispatcher: deps.Dispatcher}
}

// NewServiceNotFound builds the not-found error for a service reference.
func NewServiceNotFound(ref any) error {
	return apperrors.NewNotFound("Service not found", fmt.Sprintf("Service with ID %v does not exist", ref))
}

// ListServices returns every service in insertion order.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return services, nil
}

// GetService fetches a single service.
func (s *CatalogService) GetService(ctx context.Context, id int) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	return svc, nil
}

// CreateService validates and appends a new service.
func (s *CatalogService) CreateService(ctx context.Context, input ServiceCreateInput) (*domain.Service, error) {
	if input.Title == "" || input.Description == "" || input.Icon == "" {
		return nil, apperrors.NewValidationError("Missing required fields", "Title, description, and icon are required")
	}
	svc := &domain.Service{
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		Features:    input.Features,
		Price:       input.Price,
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if svc.Price == "" {
		svc.Price = domain.DefaultServicePrice
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, apperrors.MapError(err)
	}
	publishEvent(ctx, s.dispatcher, events.NewEvent(events.EventServiceCreated, svc.ID, events.ServiceChangedPayload{
		Title: svc.Title,
		Price: svc.Price,
	}))
	return svc, nil
}

// UpdateService applies a partial update.
func (s *CatalogService) UpdateService(ctx context.Context, id int, patch ServicePatch) (*domain.Service, error) {
	svc, err := s.services.Update(ctx, id, patch.apply)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	publishEvent(ctx, s.dispatcher, events.NewEvent(events.EventServiceUpdated, svc.ID, events.ServiceChangedPayload{
		Title: svc.Title,
		Price: svc.Price,
	}))
	return svc, nil
}

// DeleteService removes a service and returns it.
func (s *CatalogService) DeleteService(ctx context.Context, id int) (*domain.Service, error) {
	svc, err := s.services.Delete(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	publishEvent(ctx, s.dispatcher, events.NewEvent(events.EventServiceDeleted, svc.ID, events.ServiceChangedPayload{
		Title: svc.Title,
	}))
	return svc, nil
}

func (s *CatalogService) mapLookupError(id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewServiceNotFound(id)
	}
	return apperrors.MapError(err)
}

func (p ServicePatch) apply(svc *domain.Service) {
	if p.Title != nil {
		svc.Title = *p.Title
	}
	if p.Description != nil {
		svc.Description = *p.Description
	}
	if p.Icon != nil {
		svc.Icon = *p.Icon
	}
	if p.Features != nil {
		svc.Features = append([]string{}, (*p.Features)...)
	}
	if p.Price != nil {
		svc.Price = *p.Price
	}
}
