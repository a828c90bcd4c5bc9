package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/partner"
)

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	FirstName        string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName         string     `json:"last_name" binding:"required,min=1,max=100"`
	Email            string     `json:"email" binding:"required,email,max=255"`
	Phone            string     `json:"phone" binding:"max=50"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Address          string     `json:"address" binding:"max=500"`
	EmergencyContact string     `json:"emergency_contact" binding:"max=255"`
	DeviceID         *uuid.UUID `json:"device_id"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	FirstName        *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName         *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email            *string    `json:"email" binding:"omitempty,email,max=255"`
	Phone            *string    `json:"phone" binding:"omitempty,max=50"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Address          *string    `json:"address" binding:"omitempty,max=500"`
	EmergencyContact *string    `json:"emergency_contact" binding:"omitempty,max=255"`
	Status           *string    `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// ClientListFilter represents filtering options for client listing
type ClientListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID               uuid.UUID  `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Address          string     `json:"address,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	Status           string     `json:"status"`
	DeviceID         *uuid.UUID `json:"device_id,omitempty"`
	LastSeen         *time.Time `json:"last_seen,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:               client.ID,
		FirstName:        client.FirstName,
		LastName:         client.LastName,
		FullName:         client.FullName(),
		Email:            client.Email,
		Phone:            client.Phone,
		DateOfBirth:      client.DateOfBirth,
		Address:          client.Address,
		EmergencyContact: client.EmergencyContact,
		Status:           string(client.Status),
		DeviceID:         client.DeviceID,
		LastSeen:         client.LastSeen,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain clients to response DTOs
func ToClientResponses(clients []partner.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses
}
