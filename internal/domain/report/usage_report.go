package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeviceUsageCount is a read model counting uses per device in a window
type DeviceUsageCount struct {
	DeviceID     uuid.UUID `json:"device_id"`
	SerialNumber string    `json:"serial_number"`
	DeviceType   string    `json:"device_type"`
	UsageCount   int64     `json:"usage_count"`
}

// UserActivityCount pairs a user with the number of device uses recorded
// for them
type UserActivityCount struct {
	UserID        uuid.UUID `json:"user_id"`
	ActivityCount int64     `json:"activity_count"`
}

// StatusCount pairs a device status with the number of devices in it
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// UsageDataRepository defines the queries feeding the system usage report.
// Nil window bounds mean unbounded.
type UsageDataRepository interface {
	// DeviceUsageCounts returns per-device usage counts within the window
	DeviceUsageCounts(ctx context.Context, from, to *time.Time) ([]DeviceUsageCount, error)

	// UsageByUser returns per-user device usage counts within the window
	UsageByUser(ctx context.Context, from, to *time.Time) ([]UserActivityCount, error)

	// DeviceStatusDistribution returns device counts grouped by status
	DeviceStatusDistribution(ctx context.Context) ([]StatusCount, error)

	// LogCount returns the number of activity log entries within the window
	LogCount(ctx context.Context, from, to *time.Time) (int64, error)

	// HelpRequestCount returns the all-time number of help requests
	HelpRequestCount(ctx context.Context) (int64, error)
}
