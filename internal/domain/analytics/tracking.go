package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
)

// DeviceUsage records a single use of a device by a platform user.
// Rows are written by the device ingestion pipeline and read here for
// usage reporting.
type DeviceUsage struct {
	shared.BaseEntity
	DeviceID uuid.UUID `gorm:"type:uuid;not null;index" json:"device_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UsedAt   time.Time `gorm:"not null;index" json:"used_at"`
}

// TableName returns the table name for GORM
func (DeviceUsage) TableName() string {
	return "device_usages"
}

// ActivityLog records a user action for the activity distribution report
type ActivityLog struct {
	shared.BaseEntity
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Action string    `gorm:"type:varchar(100);not null;index" json:"action"`
}

// TableName returns the table name for GORM
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// HelpRequestStatus represents the state of a help request
type HelpRequestStatus string

const (
	HelpRequestOpen     HelpRequestStatus = "open"
	HelpRequestResolved HelpRequestStatus = "resolved"
)

// HelpRequest records a call for assistance raised through a device
type HelpRequest struct {
	shared.BaseEntity
	UserID uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Status HelpRequestStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
}

// TableName returns the table name for GORM
func (HelpRequest) TableName() string {
	return "help_requests"
}
