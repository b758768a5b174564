package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account ("conta") of the MADR application.
// It contains essential account information and authentication details.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email and password.
// The username is sanitized to its canonical form. It generates a new UUID
// for the user ID and sets the creation/update timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, email, password string) (*User, error) {
	canonical, err := SanitizeText("username", username)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:        uuid.New(),
		Username:  canonical,
		Email:     email,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// SetUsername replaces the username with the sanitized form of raw.
// Returns a FieldError if the sanitized result is invalid.
func (u *User) SetUsername(raw string) error {
	canonical, err := SanitizeText("username", raw)
	if err != nil {
		return err
	}
	u.Username = canonical
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
//
// Email grammar is enforced at the request layer (validator's "email" tag);
// here we only require the field to be present.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrInvalidID
	}

	if u.Username == "" {
		return NewFieldError("username", "must have at least 1 character")
	}

	if u.Email == "" {
		return NewFieldError("email", "must have at least 1 character")
	}

	// Either a plaintext password (pre-hash) or an existing hash must be set.
	if u.Password == "" && u.HashedPassword == "" {
		return NewFieldError("senha", "must have at least 1 character")
	}

	return nil
}
