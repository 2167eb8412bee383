package services

import "errors"

// Sentinel errors the handler boundary maps to HTTP statuses. Messages match
// the wire strings the frontend already expects.
var (
	ErrUserNotFound       = errors.New("User not found")
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAIUnavailable      = errors.New("AI service not available")
)
