package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord is a read model carrying the fields the KPI engine needs
// from a sale joined with its device.
type SaleRecord struct {
	ID                uuid.UUID        `json:"id"`
	CreatedAt         time.Time        `json:"created_at"`
	Price             decimal.Decimal  `json:"price"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost,omitempty"`
	DeviceType        string           `json:"device_type"`
}

// UserRecord is a read model for user activity queries
type UserRecord struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IncidentRecord is a read model for incident aggregation
type IncidentRecord struct {
	ID         uuid.UUID `json:"id"`
	Severity   string    `json:"severity"`
	ReportedAt time.Time `json:"reported_at"`
	IsResolved bool      `json:"is_resolved"`
}

// TypeCount pairs a device type with the number of sales of that type
type TypeCount struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

// Repository defines the windowed read queries feeding the KPI engine.
// All windows are inclusive on both ends.
type Repository interface {
	// SalesBetween returns sales created within [from, to]
	SalesBetween(ctx context.Context, from, to time.Time) ([]SaleRecord, error)

	// CountSales returns the all-time number of sales
	CountSales(ctx context.Context) (int64, error)

	// TotalRevenue returns the all-time revenue sum
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// AllUsers returns every platform user with their activity timestamps
	AllUsers(ctx context.Context) ([]UserRecord, error)

	// CountUsers returns the total number of platform users
	CountUsers(ctx context.Context) (int64, error)

	// ActiveUserCount returns users whose last login falls within [from, to]
	ActiveUserCount(ctx context.Context, from, to time.Time) (int64, error)

	// IncidentsBetween returns incidents reported within [from, to]
	IncidentsBetween(ctx context.Context, from, to time.Time) ([]IncidentRecord, error)

	// DevicesByType returns device counts grouped by type
	DevicesByType(ctx context.Context) ([]TypeCount, error)

	// CountDevices returns the total number of devices
	CountDevices(ctx context.Context) (int64, error)
}
