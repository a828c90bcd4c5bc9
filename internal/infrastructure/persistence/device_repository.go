package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDeviceRepository implements DeviceRepository using GORM
type GormDeviceRepository struct {
	db *gorm.DB
}

// NewGormDeviceRepository creates a new GormDeviceRepository
func NewGormDeviceRepository(db *gorm.DB) *GormDeviceRepository {
	return &GormDeviceRepository{db: db}
}

// FindByID finds a device by its ID
func (r *GormDeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Device, error) {
	var device catalog.Device
	if err := r.db.WithContext(ctx).First(&device, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &device, nil
}

// FindBySerialNumber finds a device by its serial number
func (r *GormDeviceRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*catalog.Device, error) {
	var device catalog.Device
	if err := r.db.WithContext(ctx).
		First(&device, "serial_number = ?", strings.ToUpper(serialNumber)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &device, nil
}

// FindAll finds all devices matching the filter
func (r *GormDeviceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Device, error) {
	var devices []catalog.Device
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Device{}), filter)
	if err := query.Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// FindByStatus finds devices with the given status
func (r *GormDeviceRepository) FindByStatus(ctx context.Context, status catalog.DeviceStatus, filter shared.Filter) ([]catalog.Device, error) {
	var devices []catalog.Device
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Device{}).Where("status = ?", status),
		filter,
	)
	if err := query.Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// Save creates or updates a device
func (r *GormDeviceRepository) Save(ctx context.Context, device *catalog.Device) error {
	return r.db.WithContext(ctx).Save(device).Error
}

// Delete deletes a device
func (r *GormDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Device{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts devices matching the filter
func (r *GormDeviceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.Device{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySerialNumber checks if a device with the given serial number exists
func (r *GormDeviceRepository) ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Device{}).
		Where("serial_number = ?", strings.ToUpper(serialNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDeviceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DeviceSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormDeviceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("serial_number ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		}
	}

	return query
}

// Ensure GormDeviceRepository implements DeviceRepository
var _ catalog.DeviceRepository = (*GormDeviceRepository)(nil)
