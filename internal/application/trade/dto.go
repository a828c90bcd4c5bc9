package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/trade"
)

// CreateSaleRequest represents a request to record a sale
type CreateSaleRequest struct {
	DeviceID uuid.UUID  `json:"device_id" binding:"required"`
	ClientID uuid.UUID  `json:"client_id" binding:"required"`
	UserID   *uuid.UUID `json:"user_id"`
	SoldAt   *time.Time `json:"sold_at"`
	Notes    string     `json:"notes" binding:"max=1000"`
}

// UpdateSaleRequest represents a request to update a sale
type UpdateSaleRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=completed refunded cancelled"`
	Notes  *string `json:"notes" binding:"omitempty,max=1000"`
}

// SaleListFilter represents filtering options for sale listing
type SaleListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Status   string `form:"status"`
	ClientID string `form:"client_id"`
	DeviceID string `form:"device_id"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID        uuid.UUID  `json:"id"`
	DeviceID  uuid.UUID  `json:"device_id"`
	ClientID  uuid.UUID  `json:"client_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Price     float64    `json:"price"`
	Status    string     `json:"status"`
	SoldAt    time.Time  `json:"sold_at"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToSaleResponse converts a domain sale to a response DTO
func ToSaleResponse(sale *trade.Sale) SaleResponse {
	price, _ := sale.Price.Float64()
	return SaleResponse{
		ID:        sale.ID,
		DeviceID:  sale.DeviceID,
		ClientID:  sale.ClientID,
		UserID:    sale.UserID,
		Price:     price,
		Status:    string(sale.Status),
		SoldAt:    sale.SoldAt,
		Notes:     sale.Notes,
		CreatedAt: sale.CreatedAt,
		UpdatedAt: sale.UpdatedAt,
	}
}

// ToSaleResponses converts a slice of domain sales to response DTOs
func ToSaleResponses(sales []trade.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		responses = append(responses, ToSaleResponse(&sales[i]))
	}
	return responses
}
