package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Book represents a titled work ("livro") with a publication year, belonging
// to exactly one novelist. The title is stored in sanitized form and is
// unique across all books.
type Book struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"titulo"`
	Year       int       `json:"ano"`
	NovelistID uuid.UUID `json:"romancista_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewBook creates a new Book with the sanitized form of title.
// Returns a FieldError if the title or year is invalid, or if the
// novelist ID is missing.
func NewBook(title string, year int, novelistID uuid.UUID) (*Book, error) {
	canonical, err := SanitizeText("titulo", title)
	if err != nil {
		return nil, err
	}

	if err := ValidateYear(year); err != nil {
		return nil, err
	}

	if novelistID == uuid.Nil {
		return nil, NewFieldError("romancista_id", "Field required")
	}

	return &Book{
		ID:         uuid.New(),
		Title:      canonical,
		Year:       year,
		NovelistID: novelistID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}, nil
}

// SetTitle replaces the title with the sanitized form of raw.
func (b *Book) SetTitle(raw string) error {
	canonical, err := SanitizeText("titulo", raw)
	if err != nil {
		return err
	}
	b.Title = canonical
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// SetYear replaces the publication year after validating its bounds.
func (b *Book) SetYear(year int) error {
	if err := ValidateYear(year); err != nil {
		return err
	}
	b.Year = year
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// SetNovelist reassigns the book to another novelist. Referential existence
// is enforced by the store at write time.
func (b *Book) SetNovelist(novelistID uuid.UUID) error {
	if novelistID == uuid.Nil {
		return NewFieldError("romancista_id", "Field required")
	}
	b.NovelistID = novelistID
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// ValidateYear checks that year lies in (0, current calendar year].
// The messages mirror the upper-bound phrasing "less than year+1" so the
// boundary reads as an exclusive limit.
func ValidateYear(year int) error {
	if year <= 0 {
		return NewFieldError("ano", "Input should be greater than 0")
	}
	if max := time.Now().Year(); year > max {
		return NewFieldError("ano", fmt.Sprintf("Input should be less than %d", max+1))
	}
	return nil
}
