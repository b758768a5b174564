// Package auth provides the credential services of the application:
// password hashing/verification and signed, time-limited access tokens.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the account
	// identified by email. The email becomes the subject claim.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns the claims containing the subject email if the
	// token is valid, or an error if validation fails (expired, invalid
	// signature, missing subject, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims of an access token.
type Claims struct {
	// Email is the subject of the token: the account's email address.
	Email string

	// Standard registered JWT claims
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
