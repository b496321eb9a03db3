package apperrors

import "errors"

// Domain error taxonomy. Services return these (possibly wrapped); controllers
// map them to HTTP status codes.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateUsername    = errors.New("username already taken")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrNotFound             = errors.New("not found")
	ErrPersistence          = errors.New("persistence failure")
)
