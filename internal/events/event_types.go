package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventServiceCreated        EventType = "service_created"
	EventServiceUpdated        EventType = "service_updated"
	EventServiceDeleted        EventType = "service_deleted"
	EventConsultationSubmitted EventType = "consultation_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int         `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, entityID int, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// ServiceChangedPayload payload.
type ServiceChangedPayload struct {
	Title string `json:"title"`
	Price string `json:"price,omitempty"`
}

// ConsultationSubmittedPayload payload.
type ConsultationSubmittedPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	ServiceInterest string `json:"service_interest"`
}
