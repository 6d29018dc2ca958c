package dto

import "github.com/neuralink-ai/site-backend/internal/domain"

// CreateServiceRequest payload.
type CreateServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}

// UpdateServiceRequest payload. Omitted or null fields keep their stored value.
type UpdateServiceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
	Price       *string   `json:"price"`
}

// ServiceMutationResponse wraps a created, updated or deleted service.
type ServiceMutationResponse struct {
	Message string         `json:"message"`
	Service domain.Service `json:"service"`
}
