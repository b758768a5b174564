package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/madr-io/madr-api/internal/domain"
)

// BookFilter holds the optional predicates for listing books.
// Nil fields are ignored. Title is a case-insensitive substring match;
// Year and NovelistID are exact matches.
type BookFilter struct {
	Title      *string
	Year       *int
	NovelistID *uuid.UUID
}

// BookStore defines the interface for book ("livro") persistence.
type BookStore interface {
	// Create saves a new book.
	// Returns ErrDuplicate if the title is already taken.
	// Returns ErrNovelistNotFound if the referenced novelist does not exist.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// List returns a page of books matching the filter, ordered by title,
	// plus the total number of matches across all pages.
	List(ctx context.Context, filter BookFilter, limit, offset int) ([]domain.Book, int64, error)

	// Update persists a modified book.
	// Returns ErrBookNotFound if the book does not exist.
	// Returns ErrDuplicate if the new title collides with another book.
	// Returns ErrNovelistNotFound if a reassigned novelist does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
