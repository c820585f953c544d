// Package common defines shared constants and sentinel errors used across
// client and server layers of bowlsignup. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Sign-up errors.
	ErrValidation        = errors.New("validation error")
	ErrDuplicateRejected = errors.New("duplicate entry")

	// Remote collection errors.
	ErrRemoteWriteFailed  = errors.New("remote write failed")
	ErrSubscriptionFailed = errors.New("subscription failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
