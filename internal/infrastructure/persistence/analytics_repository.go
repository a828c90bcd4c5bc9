package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/visionassist/backend/internal/domain/analytics"
	"github.com/visionassist/backend/internal/domain/catalog"
	"github.com/visionassist/backend/internal/domain/identity"
	"github.com/visionassist/backend/internal/domain/security"
	"github.com/visionassist/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormAnalyticsRepository implements the KPI read queries using GORM.
// Sales are joined with devices so the margin engine sees the recorded
// manufacturing cost alongside the captured price.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// SalesBetween returns sales created within [from, to]
func (r *GormAnalyticsRepository) SalesBetween(ctx context.Context, from, to time.Time) ([]analytics.SaleRecord, error) {
	var records []analytics.SaleRecord
	err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Select("sales.id, sales.created_at, sales.price, devices.manufacturing_cost, devices.type AS device_type").
		Joins("JOIN devices ON devices.id = sales.device_id").
		Where("sales.created_at >= ? AND sales.created_at <= ?", from, to).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountSales returns the all-time number of sales
func (r *GormAnalyticsRepository) CountSales(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Sale{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalRevenue returns the all-time revenue sum
func (r *GormAnalyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Select("COALESCE(SUM(price), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// AllUsers returns every platform user with their activity timestamps
func (r *GormAnalyticsRepository) AllUsers(ctx context.Context) ([]analytics.UserRecord, error) {
	var records []analytics.UserRecord
	err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Select("id, name, email, last_login_at AS last_login, created_at").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountUsers returns the total number of platform users
func (r *GormAnalyticsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ActiveUserCount returns users whose last login falls within [from, to]
func (r *GormAnalyticsRepository) ActiveUserCount(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("last_login_at >= ? AND last_login_at <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// IncidentsBetween returns incidents reported within [from, to]
func (r *GormAnalyticsRepository) IncidentsBetween(ctx context.Context, from, to time.Time) ([]analytics.IncidentRecord, error) {
	var records []analytics.IncidentRecord
	err := r.db.WithContext(ctx).
		Model(&security.Incident{}).
		Select("id, severity, reported_at, is_resolved").
		Where("reported_at >= ? AND reported_at <= ?", from, to).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DevicesByType returns device counts grouped by type
func (r *GormAnalyticsRepository) DevicesByType(ctx context.Context) ([]analytics.TypeCount, error) {
	var counts []analytics.TypeCount
	err := r.db.WithContext(ctx).
		Model(&catalog.Device{}).
		Select("type AS device_type, COUNT(*) AS count").
		Group("type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CountDevices returns the total number of devices
func (r *GormAnalyticsRepository) CountDevices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Device{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormAnalyticsRepository implements analytics.Repository
var _ analytics.Repository = (*GormAnalyticsRepository)(nil)
