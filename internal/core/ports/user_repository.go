package ports

import (
	"context"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// UpsertByEmail atomically inserts the user when no document with the same
	// email exists, or returns the existing document untouched. This single
	// round trip replaces a read-then-write pair so that two concurrent
	// first-time logins converge on one record.
	UpsertByEmail(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
