package zone

import (
	"strings"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
)

// ZoneType classifies a monitored zone
type ZoneType string

const (
	ZoneTypeSafe       ZoneType = "safe"
	ZoneTypeRestricted ZoneType = "restricted"
	ZoneTypeDanger     ZoneType = "danger"
	ZoneTypeTransit    ZoneType = "transit"
)

// Environment describes the surroundings a zone belongs to, such as
// "urban", "indoor" or "park".
type Environment struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

// TableName returns the table name for GORM
func (Environment) TableName() string {
	return "environments"
}

// NewEnvironment creates a new environment
func NewEnvironment(name string) (*Environment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Environment name is required")
	}
	return &Environment{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Zone represents a geographic area monitored for client safety
type Zone struct {
	shared.BaseEntity
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Type          ZoneType   `gorm:"type:varchar(20);not null;index" json:"type"`
	EnvironmentID *uuid.UUID `gorm:"type:uuid;index" json:"environment_id,omitempty"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
}

// TableName returns the table name for GORM
func (Zone) TableName() string {
	return "zones"
}

// NewZone creates a new zone
func NewZone(name string, zoneType ZoneType) (*Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Zone name is required")
	}
	if zoneType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Zone type is required")
	}
	return &Zone{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       zoneType,
	}, nil
}

// AttachEnvironment links the zone to an environment
func (z *Zone) AttachEnvironment(environmentID uuid.UUID) {
	z.EnvironmentID = &environmentID
	z.Touch()
}
