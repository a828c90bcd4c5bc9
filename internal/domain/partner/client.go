package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/visionassist/backend/internal/domain/shared"
)

// ClientStatus represents the lifecycle state of a client account
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"
)

// Client represents an end user of the assistance platform, typically a
// visually-impaired person or their caretaker.
type Client struct {
	shared.BaseEntity
	FirstName        string       `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string       `gorm:"type:varchar(100);not null" json:"last_name"`
	Email            string       `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone            string       `gorm:"type:varchar(50)" json:"phone,omitempty"`
	DateOfBirth      *time.Time   `json:"date_of_birth,omitempty"`
	Address          string       `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string       `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	Status           ClientStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	// DeviceID links the client to the device currently assigned to them.
	DeviceID *uuid.UUID `gorm:"type:uuid;index" json:"device_id,omitempty"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(firstName, lastName, email string) (*Client, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.ToLower(strings.TrimSpace(email))

	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_INPUT", "A valid email address is required")
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Status:     ClientStatusActive,
	}, nil
}

// FullName returns the client's display name
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AssignDevice links a device to the client
func (c *Client) AssignDevice(deviceID uuid.UUID) error {
	if c.Status != ClientStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Cannot assign a device to an inactive client")
	}
	c.DeviceID = &deviceID
	c.Touch()
	return nil
}

// UnassignDevice removes the device link
func (c *Client) UnassignDevice() {
	c.DeviceID = nil
	c.Touch()
}

// RecordActivity marks the client as seen at the given time
func (c *Client) RecordActivity(at time.Time) {
	c.LastSeen = &at
	c.Touch()
}

// Suspend suspends the client account
func (c *Client) Suspend() {
	c.Status = ClientStatusSuspended
	c.Touch()
}

// Activate reactivates the client account
func (c *Client) Activate() {
	c.Status = ClientStatusActive
	c.Touch()
}

// Deactivate marks the client account as inactive
func (c *Client) Deactivate() {
	c.Status = ClientStatusInactive
	c.Touch()
}
