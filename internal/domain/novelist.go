package domain

import (
	"time"

	"github.com/google/uuid"
)

// Novelist represents an author ("romancista") who owns zero or more books.
// The name is stored in sanitized form and is unique across all novelists.
type Novelist struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNovelist creates a new Novelist with the sanitized form of name.
// Returns a FieldError if the sanitized name is empty or contains
// disallowed characters.
func NewNovelist(name string) (*Novelist, error) {
	canonical, err := SanitizeText("nome", name)
	if err != nil {
		return nil, err
	}

	return &Novelist{
		ID:        uuid.New(),
		Name:      canonical,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// Rename replaces the novelist's name with the sanitized form of raw.
func (n *Novelist) Rename(raw string) error {
	canonical, err := SanitizeText("nome", raw)
	if err != nil {
		return err
	}
	n.Name = canonical
	n.UpdatedAt = time.Now().UTC()
	return nil
}
