// Package common defines shared sentinel errors used across the service
// layers of userhub. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// ErrStoreUnavailable wraps driver failures that are not a business
	// outcome (connectivity, timeouts). Surfaced as a server error.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
