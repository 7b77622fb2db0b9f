// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (rejected before any network call is made).
	ErrorValidation = errors.New("validation error")

	// Token lifecycle errors.
	ErrNoRefreshToken = errors.New("no refresh token")
	ErrTokenExpired   = errors.New("token expired")
)
