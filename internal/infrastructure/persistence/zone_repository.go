package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
	"github.com/visionassist/backend/internal/domain/zone"
	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GormZoneRepository
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// FindByID finds a zone by its ID
func (r *GormZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*zone.Zone, error) {
	var z zone.Zone
	if err := r.db.WithContext(ctx).First(&z, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &z, nil
}

// FindAll finds all zones matching the filter
func (r *GormZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]zone.Zone, error) {
	var zones []zone.Zone
	query := r.applyFilter(r.db.WithContext(ctx).Model(&zone.Zone{}), filter)
	if err := query.Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// Save creates or updates a zone
func (r *GormZoneRepository) Save(ctx context.Context, z *zone.Zone) error {
	return r.db.WithContext(ctx).Save(z).Error
}

// Delete deletes a zone
func (r *GormZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&zone.Zone{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts zones matching the filter
func (r *GormZoneRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&zone.Zone{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormZoneRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ZoneSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormZoneRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "environment_id":
			query = query.Where("environment_id = ?", value)
		}
	}

	return query
}

// GormEnvironmentRepository implements EnvironmentRepository using GORM
type GormEnvironmentRepository struct {
	db *gorm.DB
}

// NewGormEnvironmentRepository creates a new GormEnvironmentRepository
func NewGormEnvironmentRepository(db *gorm.DB) *GormEnvironmentRepository {
	return &GormEnvironmentRepository{db: db}
}

// FindByID finds an environment by its ID
func (r *GormEnvironmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*zone.Environment, error) {
	var env zone.Environment
	if err := r.db.WithContext(ctx).First(&env, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &env, nil
}

// FindAll returns all environments
func (r *GormEnvironmentRepository) FindAll(ctx context.Context) ([]zone.Environment, error) {
	var envs []zone.Environment
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&envs).Error; err != nil {
		return nil, err
	}
	return envs, nil
}

// Save creates or updates an environment
func (r *GormEnvironmentRepository) Save(ctx context.Context, environment *zone.Environment) error {
	return r.db.WithContext(ctx).Save(environment).Error
}

// Delete deletes an environment
func (r *GormEnvironmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&zone.Environment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ zone.ZoneRepository        = (*GormZoneRepository)(nil)
	_ zone.EnvironmentRepository = (*GormEnvironmentRepository)(nil)
)
