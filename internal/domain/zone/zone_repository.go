package zone

import (
	"context"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
)

// ZoneRepository defines the interface for zone persistence
type ZoneRepository interface {
	// FindByID finds a zone by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Zone, error)

	// FindAll finds all zones matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Zone, error)

	// Save creates or updates a zone
	Save(ctx context.Context, zone *Zone) error

	// Delete deletes a zone
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts zones matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// EnvironmentRepository defines the interface for environment persistence
type EnvironmentRepository interface {
	// FindByID finds an environment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Environment, error)

	// FindAll returns all environments
	FindAll(ctx context.Context) ([]Environment, error)

	// Save creates or updates an environment
	Save(ctx context.Context, environment *Environment) error

	// Delete deletes an environment
	Delete(ctx context.Context, id uuid.UUID) error
}
