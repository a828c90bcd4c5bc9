package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/visionassist/backend/internal/domain/catalog"
)

// CreateDeviceRequest represents a request to register a new device
type CreateDeviceRequest struct {
	SerialNumber      string           `json:"serial_number" binding:"required,min=1,max=100"`
	Type              string           `json:"type" binding:"required,oneof=glasses bracelet cane pendant"`
	Price             decimal.Decimal  `json:"price" binding:"required"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
	FirmwareVersion   string           `json:"firmware_version" binding:"max=50"`
	Notes             string           `json:"notes"`
}

// UpdateDeviceRequest represents a request to update a device
type UpdateDeviceRequest struct {
	Type              *string          `json:"type" binding:"omitempty,oneof=glasses bracelet cane pendant"`
	Price             *decimal.Decimal `json:"price"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
	Status            *string          `json:"status" binding:"omitempty,oneof=available connected disconnected maintenance"`
	FirmwareVersion   *string          `json:"firmware_version" binding:"omitempty,max=50"`
	Notes             *string          `json:"notes"`
}

// DeviceListFilter represents filtering options for device listing
type DeviceListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Type     string `form:"type"`
	Status   string `form:"status"`
}

// DeviceResponse represents a device in API responses
type DeviceResponse struct {
	ID                uuid.UUID `json:"id"`
	SerialNumber      string    `json:"serial_number"`
	Type              string    `json:"type"`
	Price             float64   `json:"price"`
	ManufacturingCost *float64  `json:"manufacturing_cost,omitempty"`
	Status            string    `json:"status"`
	FirmwareVersion   string    `json:"firmware_version,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToDeviceResponse converts a domain device to a response DTO
func ToDeviceResponse(device *catalog.Device) DeviceResponse {
	resp := DeviceResponse{
		ID:              device.ID,
		SerialNumber:    device.SerialNumber,
		Type:            string(device.Type),
		Price:           toFloat64(device.Price),
		Status:          string(device.Status),
		FirmwareVersion: device.FirmwareVersion,
		Notes:           device.Notes,
		CreatedAt:       device.CreatedAt,
		UpdatedAt:       device.UpdatedAt,
	}
	if device.ManufacturingCost != nil {
		cost := toFloat64(*device.ManufacturingCost)
		resp.ManufacturingCost = &cost
	}
	return resp
}

// ToDeviceResponses converts a slice of domain devices to response DTOs
func ToDeviceResponses(devices []catalog.Device) []DeviceResponse {
	responses := make([]DeviceResponse, 0, len(devices))
	for i := range devices {
		responses = append(responses, ToDeviceResponse(&devices[i]))
	}
	return responses
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
