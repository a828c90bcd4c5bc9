package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ZoneRecord is a read model of a zone joined with its environment name
type ZoneRecord struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	EnvironmentID   *uuid.UUID `json:"environment_id,omitempty"`
	EnvironmentName string     `json:"environment_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ZoneDataRepository defines the queries feeding the zones report.
// Nil window bounds mean unbounded.
type ZoneDataRepository interface {
	// AllZones returns every zone with its environment name resolved
	AllZones(ctx context.Context) ([]ZoneRecord, error)

	// CountZones returns the number of zones created within the window
	CountZones(ctx context.Context, from, to *time.Time) (int64, error)
}
