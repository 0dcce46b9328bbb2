package domain

import (
	"errors"
	"strings"
)

var (
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrAdministratorNotFound = errors.New("administrator not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

// ValidationError carries every rule a request violated, not just the first one.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// IsNotFound reports whether err is one of the resource-not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVehicleNotFound) || errors.Is(err, ErrAdministratorNotFound)
}
