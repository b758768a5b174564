package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/store"
)

// PostgresNovelistStore implements the store.NovelistStore interface
// using a PostgreSQL database as the storage backend.
//
// Unlike the other stores it requires a *sql.DB rather than a DBTX because
// Delete runs the cascading book removal inside its own transaction.
type PostgresNovelistStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresNovelistStore creates a new PostgreSQL implementation of the
// NovelistStore interface. If logger is nil, a default logger will be used.
func NewPostgresNovelistStore(db *sql.DB, logger *slog.Logger) *PostgresNovelistStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresNovelistStore{
		db:     db,
		logger: logger.With(slog.String("component", "novelist_store")),
	}
}

// Ensure PostgresNovelistStore implements store.NovelistStore interface
var _ store.NovelistStore = (*PostgresNovelistStore)(nil)

// Create implements store.NovelistStore.Create
func (s *PostgresNovelistStore) Create(ctx context.Context, novelist *domain.Novelist) error {
	query := `
		INSERT INTO novelists (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		novelist.ID,
		novelist.Name,
		novelist.CreatedAt,
		novelist.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			s.logger.Error("failed to create novelist",
				slog.String("error", err.Error()),
				slog.String("novelist_id", novelist.ID.String()))
		}
		return mapped
	}

	s.logger.Info("novelist created successfully",
		slog.String("novelist_id", novelist.ID.String()),
		slog.String("name", novelist.Name))
	return nil
}

// GetByID implements store.NovelistStore.GetByID
func (s *PostgresNovelistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Novelist, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM novelists
		WHERE id = $1
	`

	var novelist domain.Novelist
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&novelist.ID,
		&novelist.Name,
		&novelist.CreatedAt,
		&novelist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNovelistNotFound
		}
		s.logger.Error("failed to get novelist by ID",
			slog.String("error", err.Error()),
			slog.String("novelist_id", id.String()))
		return nil, err
	}

	return &novelist, nil
}

// List implements store.NovelistStore.List
// The name filter is a case-insensitive substring match; an empty filter
// matches every novelist.
func (s *PostgresNovelistStore) List(
	ctx context.Context,
	nameFilter string,
	limit, offset int,
) ([]domain.Novelist, int64, error) {
	var total int64
	countQuery := `
		SELECT count(*)
		FROM novelists
		WHERE name ILIKE '%' || $1 || '%'
	`
	if err := s.db.QueryRowContext(ctx, countQuery, nameFilter).Scan(&total); err != nil {
		s.logger.Error("failed to count novelists", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM novelists
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.QueryContext(ctx, query, nameFilter, limit, offset)
	if err != nil {
		s.logger.Error("failed to list novelists", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	novelists := make([]domain.Novelist, 0, limit)
	for rows.Next() {
		var novelist domain.Novelist
		if err := rows.Scan(
			&novelist.ID,
			&novelist.Name,
			&novelist.CreatedAt,
			&novelist.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		novelists = append(novelists, novelist)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return novelists, total, nil
}

// Update implements store.NovelistStore.Update
func (s *PostgresNovelistStore) Update(ctx context.Context, novelist *domain.Novelist) error {
	query := `
		UPDATE novelists
		SET name = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, novelist.ID, novelist.Name, novelist.UpdatedAt)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			s.logger.Error("failed to update novelist",
				slog.String("error", err.Error()),
				slog.String("novelist_id", novelist.ID.String()))
		}
		return mapped
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNovelistNotFound
	}

	return nil
}

// Delete implements store.NovelistStore.Delete
// The novelist's books are removed in the same transaction as the novelist
// row, so a partial delete can never leave orphaned books behind.
func (s *PostgresNovelistStore) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	booksResult, err := tx.ExecContext(ctx, `DELETE FROM books WHERE novelist_id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete novelist's books",
			slog.String("error", err.Error()),
			slog.String("novelist_id", id.String()))
		return MapError(err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM novelists WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete novelist",
			slog.String("error", err.Error()),
			slog.String("novelist_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNovelistNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	booksDeleted, _ := booksResult.RowsAffected()
	s.logger.Info("novelist deleted successfully",
		slog.String("novelist_id", id.String()),
		slog.Int64("books_deleted", booksDeleted))
	return nil
}
