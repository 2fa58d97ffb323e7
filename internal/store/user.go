package store

import (
	"context"

	"github.com/spendtrack/spendtrack-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Lookup is an exact match on the stored value; no case folding.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// DeleteByEmail removes a user from the store by email, cascading to the
	// user's expenses. Returns true if a matching account existed and was
	// removed, false if there was no match. A missing account is not an error.
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}
