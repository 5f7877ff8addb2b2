package profilerepo

import (
	"errors"
)

const (
	ValidationError = constError("invalid request")
	// ErrProfileNotFound is returned when no profile exists for a user.
	ErrProfileNotFound = constError("profile not found")
)

// IsNotFoundError checks if the error is a missing profile error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ValidationError)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
