package identity

import (
	"strings"
	"time"

	"github.com/visionassist/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole represents the access level of a back-office user
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleAnalyst  UserRole = "analyst"
	UserRoleSupport  UserRole = "support"
	UserRoleReadOnly UserRole = "readonly"
)

// UserStatus represents the lifecycle state of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// User represents a back-office operator of the platform
type User struct {
	shared.BaseEntity
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'readonly'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(name, email, password string, role UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "User name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_INPUT", "A valid email address is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	if role == "" {
		role = UserRoleReadOnly
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       UserStatusActive,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// RecordLogin stores the timestamp of a successful login
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.Touch()
}

// Disable disables the user account
func (u *User) Disable() {
	u.Status = UserStatusDisabled
	u.Touch()
}

// Enable reactivates the user account
func (u *User) Enable() {
	u.Status = UserStatusActive
	u.Touch()
}

// IsActive reports whether the account can be used
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
