package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
)

// DeviceRepository defines the interface for device persistence
type DeviceRepository interface {
	// FindByID finds a device by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Device, error)

	// FindBySerialNumber finds a device by its serial number
	FindBySerialNumber(ctx context.Context, serialNumber string) (*Device, error)

	// FindAll finds all devices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Device, error)

	// FindByStatus finds devices with the given status
	FindByStatus(ctx context.Context, status DeviceStatus, filter shared.Filter) ([]Device, error)

	// Save creates or updates a device
	Save(ctx context.Context, device *Device) error

	// Delete deletes a device
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts devices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySerialNumber checks if a device with the given serial number exists
	ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error)
}
