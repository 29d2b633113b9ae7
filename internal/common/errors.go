package common

import "errors"

// Sentinel errors shared by client and service layers. Callers should use
// errors.Is to match these values.
var (
	// Transport / API errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Credential errors (login rejected or no token in the response).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Profile sync errors.
	ErrNoChanges    = errors.New("no changes")
	ErrSaveInFlight = errors.New("save already in flight")
	ErrFileTooLarge = errors.New("file exceeds size limit")
)
