package zone

import (
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/zone"
)

// CreateZoneRequest represents a request to create a new zone
type CreateZoneRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=100"`
	Type          string     `json:"type" binding:"required,oneof=safe restricted danger transit"`
	EnvironmentID *uuid.UUID `json:"environment_id"`
	Description   string     `json:"description" binding:"max=1000"`
}

// UpdateZoneRequest represents a request to update a zone
type UpdateZoneRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Type          *string    `json:"type" binding:"omitempty,oneof=safe restricted danger transit"`
	EnvironmentID *uuid.UUID `json:"environment_id"`
	Description   *string    `json:"description" binding:"omitempty,max=1000"`
}

// ZoneListFilter represents filtering options for zone listing
type ZoneListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Type     string `form:"type"`
}

// CreateEnvironmentRequest represents a request to create a new environment
type CreateEnvironmentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ZoneResponse represents a zone in API responses
type ZoneResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	EnvironmentID *uuid.UUID `json:"environment_id,omitempty"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// EnvironmentResponse represents an environment in API responses
type EnvironmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToZoneResponse converts a domain zone to a response DTO
func ToZoneResponse(z *zone.Zone) ZoneResponse {
	return ZoneResponse{
		ID:            z.ID,
		Name:          z.Name,
		Type:          string(z.Type),
		EnvironmentID: z.EnvironmentID,
		Description:   z.Description,
		CreatedAt:     z.CreatedAt,
		UpdatedAt:     z.UpdatedAt,
	}
}

// ToZoneResponses converts a slice of domain zones to response DTOs
func ToZoneResponses(zones []zone.Zone) []ZoneResponse {
	responses := make([]ZoneResponse, 0, len(zones))
	for i := range zones {
		responses = append(responses, ToZoneResponse(&zones[i]))
	}
	return responses
}

// ToEnvironmentResponse converts a domain environment to a response DTO
func ToEnvironmentResponse(env *zone.Environment) EnvironmentResponse {
	return EnvironmentResponse{
		ID:        env.ID,
		Name:      env.Name,
		CreatedAt: env.CreatedAt,
	}
}

// ToEnvironmentResponses converts a slice of domain environments to response DTOs
func ToEnvironmentResponses(envs []zone.Environment) []EnvironmentResponse {
	responses := make([]EnvironmentResponse, 0, len(envs))
	for i := range envs {
		responses = append(responses, ToEnvironmentResponse(&envs[i]))
	}
	return responses
}
