package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/visionassist/backend/internal/domain/shared"
)

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRefunded  SaleStatus = "refunded"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Sale records the sale of a device to a client. Price is captured at the
// time of sale so later catalog repricing does not rewrite history.
type Sale struct {
	shared.BaseEntity
	DeviceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"device_id"`
	ClientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	UserID   *uuid.UUID      `gorm:"type:uuid" json:"user_id,omitempty"`
	Price    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	Status   SaleStatus      `gorm:"type:varchar(20);not null;default:'completed';index" json:"status"`
	SoldAt   time.Time       `gorm:"not null;index" json:"sold_at"`
	Notes    string          `gorm:"type:text" json:"notes,omitempty"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new completed sale
func NewSale(deviceID, clientID uuid.UUID, price decimal.Decimal, soldAt time.Time) (*Sale, error) {
	if deviceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale requires a device")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale requires a client")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale price cannot be negative")
	}
	if soldAt.IsZero() {
		soldAt = time.Now()
	}

	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		DeviceID:   deviceID,
		ClientID:   clientID,
		Price:      price,
		Status:     SaleStatusCompleted,
		SoldAt:     soldAt,
	}, nil
}

// Refund marks the sale as refunded
func (s *Sale) Refund() error {
	if s.Status != SaleStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Only completed sales can be refunded")
	}
	s.Status = SaleStatusRefunded
	s.Touch()
	return nil
}

// Cancel marks the sale as cancelled
func (s *Sale) Cancel() error {
	if s.Status == SaleStatusRefunded {
		return shared.NewDomainError("INVALID_STATE", "Refunded sales cannot be cancelled")
	}
	s.Status = SaleStatusCancelled
	s.Touch()
	return nil
}
