package api_test

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/madr-io/madr-api/internal/domain"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

// Function-field mocks: tests set only the methods a handler is expected
// to call. Anything else fails loudly.

var errUnexpectedCall = errors.New("unexpected store call")

type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn     func(ctx context.Context, user *domain.User) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.createFn == nil {
		return errUnexpectedCall
	}
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.updateFn == nil {
		return errUnexpectedCall
	}
	return m.updateFn(ctx, user)
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return errUnexpectedCall
	}
	return m.deleteFn(ctx, id)
}

type mockNovelistStore struct {
	createFn  func(ctx context.Context, novelist *domain.Novelist) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Novelist, error)
	listFn    func(ctx context.Context, nameFilter string, limit, offset int) ([]domain.Novelist, int64, error)
	updateFn  func(ctx context.Context, novelist *domain.Novelist) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockNovelistStore) Create(ctx context.Context, novelist *domain.Novelist) error {
	if m.createFn == nil {
		return errUnexpectedCall
	}
	return m.createFn(ctx, novelist)
}

func (m *mockNovelistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Novelist, error) {
	if m.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockNovelistStore) List(
	ctx context.Context,
	nameFilter string,
	limit, offset int,
) ([]domain.Novelist, int64, error) {
	if m.listFn == nil {
		return nil, 0, errUnexpectedCall
	}
	return m.listFn(ctx, nameFilter, limit, offset)
}

func (m *mockNovelistStore) Update(ctx context.Context, novelist *domain.Novelist) error {
	if m.updateFn == nil {
		return errUnexpectedCall
	}
	return m.updateFn(ctx, novelist)
}

func (m *mockNovelistStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return errUnexpectedCall
	}
	return m.deleteFn(ctx, id)
}

type mockBookStore struct {
	createFn  func(ctx context.Context, book *domain.Book) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	listFn    func(ctx context.Context, filter store.BookFilter, limit, offset int) ([]domain.Book, int64, error)
	updateFn  func(ctx context.Context, book *domain.Book) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.createFn == nil {
		return errUnexpectedCall
	}
	return m.createFn(ctx, book)
}

func (m *mockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockBookStore) List(
	ctx context.Context,
	filter store.BookFilter,
	limit, offset int,
) ([]domain.Book, int64, error) {
	if m.listFn == nil {
		return nil, 0, errUnexpectedCall
	}
	return m.listFn(ctx, filter, limit, offset)
}

func (m *mockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.updateFn == nil {
		return errUnexpectedCall
	}
	return m.updateFn(ctx, book)
}

func (m *mockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return errUnexpectedCall
	}
	return m.deleteFn(ctx, id)
}

type mockJWTService struct {
	generateFn func(ctx context.Context, email string) (string, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	if m.generateFn == nil {
		return "", errUnexpectedCall
	}
	return m.generateFn(ctx, email)
}

func (m *mockJWTService) ValidateToken(_ context.Context, _ string) (*auth.Claims, error) {
	return nil, errUnexpectedCall
}

type mockHasher struct {
	hashFn func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFn == nil {
		return "hashed:" + password, nil
	}
	return m.hashFn(password)
}

type mockVerifier struct {
	compareFn func(hashedPassword, password string) error
}

func (m *mockVerifier) Compare(hashedPassword, password string) error {
	if m.compareFn == nil {
		return errUnexpectedCall
	}
	return m.compareFn(hashedPassword, password)
}
