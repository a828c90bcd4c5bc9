package persistence

import (
	"context"
	"time"

	"github.com/visionassist/backend/internal/domain/analytics"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/identity"
	"github.com/visionassist/backend/internal/domain/report"
	"github.com/visionassist/backend/internal/domain/trade"
	"github.com/visionassist/backend/internal/domain/zone"
	"gorm.io/gorm"
)

// windowed applies optional inclusive window bounds on the given column.
// Nil bounds mean unbounded.
func windowed(query *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(column+" >= ?", *from)
	}
	if to != nil {
		query = query.Where(column+" <= ?", *to)
	}
	return query
}

// GormUsageDataRepository implements the system usage report queries
type GormUsageDataRepository struct {
	db *gorm.DB
}

// NewGormUsageDataRepository creates a new GormUsageDataRepository
func NewGormUsageDataRepository(db *gorm.DB) *GormUsageDataRepository {
	return &GormUsageDataRepository{db: db}
}

// DeviceUsageCounts returns per-device usage counts within the window
func (r *GormUsageDataRepository) DeviceUsageCounts(ctx context.Context, from, to *time.Time) ([]report.DeviceUsageCount, error) {
	var counts []report.DeviceUsageCount
	query := r.db.WithContext(ctx).
		Model(&analytics.DeviceUsage{}).
		Select("device_usages.device_id, devices.serial_number, devices.type AS device_type, COUNT(*) AS usage_count").
		Joins("JOIN devices ON devices.id = device_usages.device_id").
		Group("device_usages.device_id, devices.serial_number, devices.type")
	query = windowed(query, "device_usages.used_at", from, to)
	if err := query.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// UsageByUser returns per-user device usage counts within the window
func (r *GormUsageDataRepository) UsageByUser(ctx context.Context, from, to *time.Time) ([]report.UserActivityCount, error) {
	var counts []report.UserActivityCount
	query := r.db.WithContext(ctx).
		Model(&analytics.DeviceUsage{}).
		Select("user_id, COUNT(*) AS activity_count").
		Group("user_id")
	query = windowed(query, "used_at", from, to)
	if err := query.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// DeviceStatusDistribution returns device counts grouped by status
func (r *GormUsageDataRepository) DeviceStatusDistribution(ctx context.Context) ([]report.StatusCount, error) {
	var counts []report.StatusCount
	err := r.db.WithContext(ctx).
		Model(&catalog.Device{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// LogCount returns the number of activity log entries within the window
func (r *GormUsageDataRepository) LogCount(ctx context.Context, from, to *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&analytics.ActivityLog{})
	query = windowed(query, "created_at", from, to)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HelpRequestCount returns the all-time number of help requests
func (r *GormUsageDataRepository) HelpRequestCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&analytics.HelpRequest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormSalesDataRepository implements the sales report queries
type GormSalesDataRepository struct {
	db *gorm.DB
}

// NewGormSalesDataRepository creates a new GormSalesDataRepository
func NewGormSalesDataRepository(db *gorm.DB) *GormSalesDataRepository {
	return &GormSalesDataRepository{db: db}
}

// SaleRecords returns sales with device type and price within the window
func (r *GormSalesDataRepository) SaleRecords(ctx context.Context, from, to *time.Time) ([]report.SaleDeviceRecord, error) {
	var records []report.SaleDeviceRecord
	query := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Select("sales.created_at, devices.type AS device_type, sales.price").
		Joins("JOIN devices ON devices.id = sales.device_id").
		Order("sales.created_at ASC")
	query = windowed(query, "sales.created_at", from, to)
	if err := query.Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountSales returns the number of sales within the window
func (r *GormSalesDataRepository) CountSales(ctx context.Context, from, to *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&trade.Sale{})
	query = windowed(query, "created_at", from, to)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormZoneDataRepository implements the zones report queries
type GormZoneDataRepository struct {
	db *gorm.DB
}

// NewGormZoneDataRepository creates a new GormZoneDataRepository
func NewGormZoneDataRepository(db *gorm.DB) *GormZoneDataRepository {
	return &GormZoneDataRepository{db: db}
}

// AllZones returns every zone with its environment name resolved
func (r *GormZoneDataRepository) AllZones(ctx context.Context) ([]report.ZoneRecord, error) {
	var records []report.ZoneRecord
	err := r.db.WithContext(ctx).
		Model(&zone.Zone{}).
		Select("zones.id, zones.name, zones.type, zones.environment_id, environments.name AS environment_name, zones.created_at").
		Joins("LEFT JOIN environments ON environments.id = zones.environment_id").
		Order("zones.created_at ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountZones returns the number of zones created within the window
func (r *GormZoneDataRepository) CountZones(ctx context.Context, from, to *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&zone.Zone{})
	query = windowed(query, "created_at", from, to)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormUserDataRepository implements the monthly active users report queries
type GormUserDataRepository struct {
	db *gorm.DB
}

// NewGormUserDataRepository creates a new GormUserDataRepository
func NewGormUserDataRepository(db *gorm.DB) *GormUserDataRepository {
	return &GormUserDataRepository{db: db}
}

// CountUsers returns the number of users, optionally only those created
// since the given time
func (r *GormUserDataRepository) CountUsers(ctx context.Context, createdSince *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&identity.User{})
	if createdSince != nil {
		query = query.Where("created_at >= ?", *createdSince)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ActiveUsersBetween returns users whose last login falls within [from, to]
func (r *GormUserDataRepository) ActiveUsersBetween(ctx context.Context, from, to time.Time) ([]report.ActiveUser, error) {
	var users []report.ActiveUser
	err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Select("id, email, name, last_login_at AS last_login").
		Where("last_login_at >= ? AND last_login_at <= ?", from, to).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ActivityByUser returns per-user action counts within [from, to]
func (r *GormUserDataRepository) ActivityByUser(ctx context.Context, from, to time.Time) ([]report.UserActionCount, error) {
	var counts []report.UserActionCount
	err := r.db.WithContext(ctx).
		Model(&analytics.ActivityLog{}).
		Select("user_id, COUNT(*) AS action_count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("user_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

var (
	_ report.UsageDataRepository = (*GormUsageDataRepository)(nil)
	_ report.SalesDataRepository = (*GormSalesDataRepository)(nil)
	_ report.ZoneDataRepository  = (*GormZoneDataRepository)(nil)
	_ report.UserDataRepository  = (*GormUserDataRepository)(nil)
)
