package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
)

// ErrPasswordMismatch is reported when a password and its confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ErrRequiredField matches every error reported for a blank form field.
var ErrRequiredField = errors.New("required field is empty")

type requiredFieldError struct {
	field string
}

func (e *requiredFieldError) Error() string { return e.field + " is required" }

func (e *requiredFieldError) Is(target error) bool { return target == ErrRequiredField }

// requireFields returns an error naming the first blank field, in form order.
// fields alternates labels and values.
func requireFields(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return &requiredFieldError{field: fields[i]}
		}
	}
	return nil
}

// requireSecret is requireFields for a password read as bytes.
func requireSecret(field string, secret []byte) error {
	if len(secret) == 0 {
		return &requiredFieldError{field: field}
	}
	return nil
}

// HumanError renders err the way the forms show it to the user.
func HumanError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, common.ErrEmailAlreadyRegistered):
		return "Email already registered"
	case errors.Is(err, common.ErrEmailNotFound):
		return "Email not found"
	case errors.Is(err, common.ErrInvalidOrExpiredTicket):
		return "Invalid or expired reset token"
	case errors.Is(err, common.ErrNoActiveSession):
		return "No user logged in"
	case errors.Is(err, ErrRequiredField):
		var rf *requiredFieldError
		if errors.As(err, &rf) {
			return rf.Error()
		}
		return "Please fill in all required fields"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, common.ErrUnknownRole):
		return "Unknown role"
	case errors.Is(err, common.ErrorInternal):
		return "Something went wrong, please try again"
	default:
		return err.Error()
	}
}
