// Package service provides application-level services for accounts and expenses.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check these with errors.Is; the API layer maps them to HTTP status
// codes.
var (
	// ErrUnknownEmail indicates a login attempt against an email with no
	// account. The API layer maps this to HTTP 400, distinct from a bad
	// password, matching the split in the public contract.
	ErrUnknownEmail = errors.New("no account with that email")

	// ErrInvalidPassword indicates the supplied password did not verify
	// against the stored hash. The API layer maps this to HTTP 401.
	ErrInvalidPassword = errors.New("password does not match")
)
