package domain

// ConsultationStatus enumerates lifecycle states for consultation requests.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusResponded ConsultationStatus = "responded"
	ConsultationStatusCompleted ConsultationStatus = "completed"
)

const (
	DefaultCompany         = "Not specified"
	DefaultServiceInterest = "General inquiry"
	EstimatedResponseTime  = "24 hours"
)

// ConsultationRequest is a prospect's request submitted through the contact form.
type ConsultationRequest struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Company         string             `json:"company"`
	Message         string             `json:"message"`
	ServiceInterest string             `json:"serviceInterest"`
	Timestamp       string             `json:"timestamp"`
	Status          ConsultationStatus `json:"status"`
}

// Answered reports whether the request has received a response.
func (r ConsultationRequest) Answered() bool {
	return r.Status == ConsultationStatusResponded || r.Status == ConsultationStatusCompleted
}
