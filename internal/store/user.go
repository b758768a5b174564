package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/madr-io/madr-api/internal/domain"
)

// UserStore defines the interface for account ("conta") persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The caller must have hashed the password already; only the hash is
	// persisted. Returns ErrDuplicate if the username or email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user never contains the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's details. The caller must provide a
	// complete user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrDuplicate if updating to a username/email that is taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
