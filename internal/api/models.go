package api

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/madr-io/madr-api/internal/domain"
)

// Request and response models for the API. JSON field names follow the
// public Portuguese contract.

// CreateAccountRequest is the body for POST /contas.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"senha"    validate:"required"`
}

// UpdateAccountRequest is the body for PUT /contas/{id}. A nil field means
// "leave unchanged"; any subset of the three may be supplied.
type UpdateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"senha"`
}

// AccountResponse is the public view of an account. The password hash is
// never serialized.
type AccountResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// TokenResponse is the body returned by /auth/token and /auth/refresh_token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateNovelistRequest is the body for POST /romancistas.
type CreateNovelistRequest struct {
	Name string `json:"nome" validate:"required"`
}

// UpdateNovelistRequest is the body for PATCH /romancistas/{id}. A nil
// field means "leave unchanged".
type UpdateNovelistRequest struct {
	Name *string `json:"nome"`
}

// NovelistResponse is the public view of a novelist.
type NovelistResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}

// NovelistListResponse is the envelope for novelist listings.
type NovelistListResponse struct {
	Novelists []NovelistResponse `json:"romancistas"`
	Total     int64              `json:"total"`
}

// YearValue is a publication year that may arrive as a JSON number or a
// numeric string such as "1999". Anything else decodes into a field-level
// validation failure instead of a bare parse error.
type YearValue int

func (y *YearValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return domain.NewFieldError("ano", "Input should be a valid integer")
	}
	*y = YearValue(n)
	return nil
}

// CreateBookRequest is the body for POST /livros.
type CreateBookRequest struct {
	Title      string    `json:"titulo"        validate:"required"`
	Year       YearValue `json:"ano"`
	NovelistID uuid.UUID `json:"romancista_id" validate:"required"`
}

// UpdateBookRequest is the body for PATCH /livros/{id}. Nil fields are
// left unchanged.
type UpdateBookRequest struct {
	Title      *string    `json:"titulo"`
	Year       *YearValue `json:"ano"`
	NovelistID *uuid.UUID `json:"romancista_id"`
}

// BookResponse is the public view of a book.
type BookResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"titulo"`
	Year       int       `json:"ano"`
	NovelistID uuid.UUID `json:"romancista_id"`
}

// BookListResponse is the envelope for book listings.
type BookListResponse struct {
	Books []BookResponse `json:"livros"`
	Total int64          `json:"total"`
}

func toAccountResponse(u *domain.User) AccountResponse {
	return AccountResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func toNovelistResponse(n *domain.Novelist) NovelistResponse {
	return NovelistResponse{
		ID:   n.ID,
		Name: n.Name,
	}
}

func toNovelistListResponse(novelists []domain.Novelist, total int64) NovelistListResponse {
	out := make([]NovelistResponse, 0, len(novelists))
	for i := range novelists {
		out = append(out, toNovelistResponse(&novelists[i]))
	}
	return NovelistListResponse{Novelists: out, Total: total}
}

func toBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Year:       b.Year,
		NovelistID: b.NovelistID,
	}
}

func toBookListResponse(books []domain.Book, total int64) BookListResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, toBookResponse(&books[i]))
	}
	return BookListResponse{Books: out, Total: total}
}
