package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
// A unique violation on the title maps to store.ErrDuplicate; a foreign key
// violation on novelist_id maps to store.ErrNovelistNotFound.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	query := `
		INSERT INTO books (id, title, year, novelist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Year,
		book.NovelistID,
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) && !store.IsNotFoundError(mapped) {
			s.logger.Error("failed to create book",
				slog.String("error", err.Error()),
				slog.String("book_id", book.ID.String()))
		}
		return mapped
	}

	s.logger.Info("book created successfully",
		slog.String("book_id", book.ID.String()),
		slog.String("title", book.Title))
	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	query := `
		SELECT id, title, year, novelist_id, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Year,
		&book.NovelistID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBookNotFound
		}
		s.logger.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, err
	}

	return &book, nil
}

// List implements store.BookStore.List
// Predicates are combined with AND; nil filter fields are ignored.
func (s *PostgresBookStore) List(
	ctx context.Context,
	filter store.BookFilter,
	limit, offset int,
) ([]domain.Book, int64, error) {
	where, args := buildBookPredicates(filter)

	var total int64
	countQuery := `SELECT count(*) FROM books` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		s.logger.Error("failed to count books", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT id, title, year, novelist_id, created_at, updated_at FROM books` +
		where +
		` ORDER BY title LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to list books", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	books := make([]domain.Book, 0, limit)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Year,
			&book.NovelistID,
			&book.CreatedAt,
			&book.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// buildBookPredicates renders the WHERE clause and argument list for the
// given filter. The returned clause starts with " WHERE" or is empty.
func buildBookPredicates(filter store.BookFilter) (string, []any) {
	var predicates []string
	var args []any

	if filter.Title != nil {
		args = append(args, *filter.Title)
		predicates = append(predicates, `title ILIKE '%' || $`+strconv.Itoa(len(args))+` || '%'`)
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		predicates = append(predicates, `year = $`+strconv.Itoa(len(args)))
	}
	if filter.NovelistID != nil {
		args = append(args, *filter.NovelistID)
		predicates = append(predicates, `novelist_id = $`+strconv.Itoa(len(args)))
	}

	if len(predicates) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(predicates, " AND "), args
}

// Update implements store.BookStore.Update
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	query := `
		UPDATE books
		SET title = $2, year = $3, novelist_id = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Year,
		book.NovelistID,
		book.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) && !store.IsNotFoundError(mapped) {
			s.logger.Error("failed to update book",
				slog.String("error", err.Error()),
				slog.String("book_id", book.ID.String()))
		}
		return mapped
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrBookNotFound
	}

	return nil
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrBookNotFound
	}

	s.logger.Info("book deleted successfully", slog.String("book_id", id.String()))
	return nil
}
