package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing signed identity tokens.
type TokenService interface {
	// GenerateToken creates a signed token binding the user's ID and email.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing user identity if the token is valid, or
	// ErrInvalidToken/ErrExpiredToken if validation fails. Callers must treat
	// the failure modes identically at the API boundary.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity asserted by a verified token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid,omitempty"`

	// Email is the user's email at issuance time.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
