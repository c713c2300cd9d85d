package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is the parent of every login failure. Callers that
	// only care whether a login failed match on it; the HTTP layer matches the
	// two children to keep their distinct client messages.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownEmail       = fmt.Errorf("%w: unknown email", ErrInvalidCredentials)
	ErrWrongPassword      = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)

	// ErrUnauthorized is the parent of every token rejection.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTokenInvalid   = fmt.Errorf("%w: token is invalid", ErrUnauthorized)
	ErrTokenExpired   = fmt.Errorf("%w: token is expired", ErrUnauthorized)
	ErrMissingSubject = fmt.Errorf("%w: token has no subject", ErrUnauthorized)

	ErrInvalidHash     = errors.New("stored password hash is malformed")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}
