package auth

import (
	"errors"
	"net/http"
)

var (
	// Validation failures (400)
	ErrInvalidInput = errors.New("please provide valid input")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrWeakPassword = errors.New("invalid password format: password must be at least 8 characters long, contain at least one uppercase letter, one lowercase letter, one number, and one special character")

	// Conflict (409)
	ErrEmailTaken = errors.New("email already exists")

	// Not found (404)
	ErrUserNotFound = errors.New("user not found")

	// Unauthorized (401)
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
)

// Token verification failures. These never leave the service: they are
// collapsed into ErrUnauthorized so clients cannot tell a missing cookie
// from an expired or tampered token. They exist so the cause can be
// logged.
var (
	ErrTokenMissing   = errors.New("no session token")
	ErrTokenExpired   = errors.New("session token expired")
	ErrTokenMalformed = errors.New("malformed session token")
	ErrTokenSignature = errors.New("session token signature mismatch")
)

// StatusCode maps a service error to the HTTP status it is reported
// with. Unknown errors map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
