package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleDeviceRecord is a read model of a sale joined with its device
type SaleDeviceRecord struct {
	CreatedAt  time.Time       `json:"created_at"`
	DeviceType string          `json:"device_type"`
	Price      decimal.Decimal `json:"price"`
}

// SalesDataRepository defines the queries feeding the sales report.
// Nil window bounds mean unbounded.
type SalesDataRepository interface {
	// SaleRecords returns sales with device type and price within the window
	SaleRecords(ctx context.Context, from, to *time.Time) ([]SaleDeviceRecord, error)

	// CountSales returns the number of sales within the window
	CountSales(ctx context.Context, from, to *time.Time) (int64, error)
}
