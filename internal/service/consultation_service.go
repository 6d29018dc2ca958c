package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/events"
	"github.com/neuralink-ai/site-backend/internal/repository"
	apperrors "github.com/neuralink-ai/site-backend/pkg/util"
)

// TimestampLayout renders instants as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// emailPattern is a deliberately loose shape check: something@something.something,
// where no part contains whitespace or '@'. Whitespace includes the Unicode
// space separators and BOM in addition to ASCII control whitespace.
var emailPattern = regexp.MustCompile(`^[^\t\n\v\f\r\p{Z}\x{FEFF}@]+@[^\t\n\v\f\r\p{Z}\x{FEFF}@]+\.[^\t\n\v\f\r\p{Z}\x{FEFF}@]+$`)

// ConsultationService handles consultation request intake.
type ConsultationService struct {
	requests   repository.ConsultationRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// ConsultationDependencies bundles collaborators for intake.
type ConsultationDependencies struct {
	ConsultationRepo repository.ConsultationRepository
	Dispatcher       events.Dispatcher
	Clock            func() time.Time
}

// ConsultationInput is a submitted contact form.
type ConsultationInput struct {
	Name            string
	Email           string
	Company         string
	Message         string
	ServiceInterest string
}

// ConsultationList is the listing envelope.
type ConsultationList struct {
	Total    int                          `json:"total"`
	Requests []domain.ConsultationRequest `json:"requests"`
}

// NewConsultationService constructs the service.
func NewConsultationService(deps ConsultationDependencies) *ConsultationService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ConsultationService{
		requests:   deps.ConsultationRepo,
		dispatcher: deps.Dispatcher,
		now:        clock,
	}
}

// NewConsultationNotFound builds the not-found error for a consultation reference.
func NewConsultationNotFound(ref any) error {
	return apperrors.NewNotFound("Request not found", fmt.Sprintf("Consultation request with ID %v does not exist", ref))
}

// ValidEmail reports whether email passes the intake format check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Submit validates and records a consultation request.
func (s *ConsultationService) Submit(ctx context.Context, input ConsultationInput) (*domain.ConsultationRequest, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, apperrors.NewValidationError("Missing required fields", "Name, email, and message are required")
	}
	if !ValidEmail(input.Email) {
		return nil, apperrors.NewValidationError("Invalid email", "Please provide a valid email address")
	}

	req := &domain.ConsultationRequest{
		Name:            input.Name,
		Email:           input.Email,
		Company:         input.Company,
		Message:         input.Message,
		ServiceInterest: input.ServiceInterest,
		Timestamp:       s.now().UTC().Format(TimestampLayout),
		Status:          domain.ConsultationStatusPending,
	}
	if req.Company == "" {
		req.Company = domain.DefaultCompany
	}
	if req.ServiceInterest == "" {
		req.ServiceInterest = domain.DefaultServiceInterest
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, apperrors.MapError(err)
	}
	publishEvent(ctx, s.dispatcher, events.NewEvent(events.EventConsultationSubmitted, req.ID, events.ConsultationSubmittedPayload{
		Name:            req.Name,
		Email:           req.Email,
		Company:         req.Company,
		ServiceInterest: req.ServiceInterest,
	}))
	return req, nil
}

// ListAll returns every request with the total count.
func (s *ConsultationService) ListAll(ctx context.Context) (*ConsultationList, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if requests == nil {
		requests = []domain.ConsultationRequest{}
	}
	return &ConsultationList{Total: len(requests), Requests: requests}, nil
}

// GetByID fetches one request.
func (s *ConsultationService) GetByID(ctx context.Context, id int) (*domain.ConsultationRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewConsultationNotFound(id)
		}
		return nil, apperrors.MapError(err)
	}
	return req, nil
}
