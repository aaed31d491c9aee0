// Package common defines sentinel errors shared across the gateway and
// authentication service layers of userhub. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound deliberately covers both a
	// missing record and a record the caller does not own, so the two
	// cases stay indistinguishable to clients.
	ErrorNotFound    = errors.New("not found")
	ErrorEmailExists = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
