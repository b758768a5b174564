package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/madr-io/madr-api/internal/domain"
)

// NovelistStore defines the interface for novelist ("romancista") persistence.
type NovelistStore interface {
	// Create saves a new novelist.
	// Returns ErrDuplicate if the name is already taken.
	Create(ctx context.Context, novelist *domain.Novelist) error

	// GetByID retrieves a novelist by their unique ID.
	// Returns ErrNovelistNotFound if the novelist does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Novelist, error)

	// List returns a page of novelists whose name contains nameFilter
	// (case-insensitive substring match; empty matches all), ordered by
	// name, plus the total number of matches across all pages.
	List(ctx context.Context, nameFilter string, limit, offset int) ([]domain.Novelist, int64, error)

	// Update persists a renamed novelist.
	// Returns ErrNovelistNotFound if the novelist does not exist.
	// Returns ErrDuplicate if the new name collides with another novelist.
	Update(ctx context.Context, novelist *domain.Novelist) error

	// Delete removes a novelist and all books belonging to them, within a
	// single transaction (composition: no orphaned book may remain).
	// Returns ErrNovelistNotFound if the novelist does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
