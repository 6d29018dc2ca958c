package service

import (
	"maps"

	"github.com/neuralink-ai/site-backend/internal/domain"
)

// ContactService returns the static company contact record.
type ContactService struct {
	info domain.ContactInfo
}

// NewContactService constructs the service.
func NewContactService(info domain.ContactInfo) *ContactService {
	return &ContactService{info: info}
}

// GetContactInfo returns a copy of the contact record.
func (s *ContactService) GetContactInfo() domain.ContactInfo {
	out := s.info
	out.BusinessHours = maps.Clone(s.info.BusinessHours)
	return out
}
