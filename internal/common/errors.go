package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authority errors. All of them are recoverable and meant to be shown
	// to the user.
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEmailNotFound          = errors.New("email not found")
	ErrInvalidOrExpiredTicket = errors.New("invalid or expired reset ticket")
	ErrNoActiveSession        = errors.New("no user logged in")

	// Validation errors.
	ErrUnknownRole = errors.New("unknown role")
)
