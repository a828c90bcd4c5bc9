package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/visionassist/backend/internal/domain/shared"
)

// DeviceStatus represents the operational status of a device
type DeviceStatus string

const (
	DeviceStatusAvailable    DeviceStatus = "available"
	DeviceStatusConnected    DeviceStatus = "connected"
	DeviceStatusDisconnected DeviceStatus = "disconnected"
	DeviceStatusMaintenance  DeviceStatus = "maintenance"
)

// DeviceType identifies a wearable product line
type DeviceType string

const (
	DeviceTypeGlasses  DeviceType = "glasses"
	DeviceTypeBracelet DeviceType = "bracelet"
	DeviceTypeCane     DeviceType = "cane"
	DeviceTypePendant  DeviceType = "pendant"
)

// Device represents a wearable assistance device in the catalog.
// It is the aggregate root for product operations.
type Device struct {
	shared.BaseEntity
	SerialNumber string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"serial_number"`
	Type         DeviceType      `gorm:"type:varchar(50);not null;index" json:"type"`
	Price        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	// ManufacturingCost is nullable: imported stock often lacks cost data and
	// the KPI engine estimates it from the price instead.
	ManufacturingCost *decimal.Decimal `gorm:"type:decimal(18,4)" json:"manufacturing_cost,omitempty"`
	Status            DeviceStatus     `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	FirmwareVersion   string           `gorm:"type:varchar(50)" json:"firmware_version,omitempty"`
	Notes             string           `gorm:"type:text" json:"notes,omitempty"`
}

// TableName returns the table name for GORM
func (Device) TableName() string {
	return "devices"
}

// NewDevice creates a new device with required fields
func NewDevice(serialNumber string, deviceType DeviceType, price decimal.Decimal) (*Device, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Device serial number is required")
	}
	if deviceType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Device type is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Device price cannot be negative")
	}

	return &Device{
		BaseEntity:   shared.NewBaseEntity(),
		SerialNumber: strings.ToUpper(serialNumber),
		Type:         deviceType,
		Price:        price,
		Status:       DeviceStatusAvailable,
	}, nil
}

// SetPricing updates price and manufacturing cost
func (d *Device) SetPricing(price decimal.Decimal, manufacturingCost *decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Device price cannot be negative")
	}
	if manufacturingCost != nil && manufacturingCost.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Manufacturing cost cannot be negative")
	}
	d.Price = price
	d.ManufacturingCost = manufacturingCost
	d.Touch()
	return nil
}

// MarkConnected transitions the device to the connected status.
// Devices under maintenance cannot be handed to a user.
func (d *Device) MarkConnected() error {
	if d.Status == DeviceStatusMaintenance {
		return shared.NewDomainError("INVALID_STATE", "Device is under maintenance")
	}
	d.Status = DeviceStatusConnected
	d.Touch()
	return nil
}

// MarkDisconnected transitions the device to the disconnected status
func (d *Device) MarkDisconnected() {
	d.Status = DeviceStatusDisconnected
	d.Touch()
}

// Release returns the device to the available pool
func (d *Device) Release() {
	d.Status = DeviceStatusAvailable
	d.Touch()
}
