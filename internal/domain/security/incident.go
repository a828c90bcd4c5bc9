package security

import (
	"strings"
	"time"

	"github.com/visionassist/backend/internal/domain/shared"
)

// Severity classifies the impact of a security incident
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// ParseSeverity normalizes a severity string, defaulting unknown values
// to LOW so malformed incident feeds never break aggregation.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToUpper(strings.TrimSpace(s))) {
	case SeverityMedium:
		return SeverityMedium
	case SeverityHigh:
		return SeverityHigh
	case SeverityCritical:
		return SeverityCritical
	default:
		return SeverityLow
	}
}

// Incident records a security event detected on the platform, for example
// a device reporting tampering or a client entering a danger zone.
type Incident struct {
	shared.BaseEntity
	Severity    Severity   `gorm:"type:varchar(10);not null;index" json:"severity"`
	Description string     `gorm:"type:text;not null" json:"description"`
	ReportedAt  time.Time  `gorm:"not null;index" json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	IsResolved  bool       `gorm:"not null;default:false;index" json:"is_resolved"`
}

// TableName returns the table name for GORM
func (Incident) TableName() string {
	return "security_incidents"
}

// NewIncident creates a new unresolved incident
func NewIncident(severity Severity, description string, reportedAt time.Time) (*Incident, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Incident description is required")
	}
	if reportedAt.IsZero() {
		reportedAt = time.Now()
	}
	return &Incident{
		BaseEntity:  shared.NewBaseEntity(),
		Severity:    ParseSeverity(string(severity)),
		Description: description,
		ReportedAt:  reportedAt,
	}, nil
}

// Resolve marks the incident as resolved at the given time
func (i *Incident) Resolve(at time.Time) error {
	if i.IsResolved {
		return shared.NewDomainError("INVALID_STATE", "Incident is already resolved")
	}
	i.IsResolved = true
	i.ResolvedAt = &at
	i.Touch()
	return nil
}
