package dto

// ConsultationSubmitRequest payload.
type ConsultationSubmitRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	Message         string `json:"message"`
	ServiceInterest string `json:"serviceInterest"`
}

// ConsultationSubmitResponse acknowledges an accepted request.
type ConsultationSubmitResponse struct {
	Message               string `json:"message"`
	RequestID             int    `json:"requestId"`
	EstimatedResponseTime string `json:"estimatedResponseTime"`
}
