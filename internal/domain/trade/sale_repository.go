package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll finds all sales matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// FindByPeriod finds sales completed within [from, to)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]Sale, error)

	// FindByClient finds sales belonging to a client
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Sale, error)

	// Save creates or updates a sale
	Save(ctx context.Context, sale *Sale) error

	// Delete deletes a sale
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts sales matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
