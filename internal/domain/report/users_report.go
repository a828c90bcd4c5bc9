package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActiveUser is a read model of a user active within a window
type ActiveUser struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UserActionCount pairs a user with their logged action count
type UserActionCount struct {
	UserID      uuid.UUID `json:"user_id"`
	ActionCount int64     `json:"action_count"`
}

// UserDataRepository defines the queries feeding the monthly active users
// report
type UserDataRepository interface {
	// CountUsers returns the number of users, optionally only those
	// created since the given time
	CountUsers(ctx context.Context, createdSince *time.Time) (int64, error)

	// ActiveUsersBetween returns users whose last login falls within
	// [from, to]
	ActiveUsersBetween(ctx context.Context, from, to time.Time) ([]ActiveUser, error)

	// ActivityByUser returns per-user action counts within [from, to]
	ActivityByUser(ctx context.Context, from, to time.Time) ([]UserActionCount, error)
}
