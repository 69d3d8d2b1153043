// Package common defines sentinel errors shared by the storage, service and
// CLI layers. Callers should match them with errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// Input errors: an empty required field or a mismatched confirmation.
	ErrValidation       = errors.New("validation error")
	ErrRequiredField    = fmt.Errorf("%w: required field is empty", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)

	// Authentication outcomes.
	ErrUnknownUser          = errors.New("unknown user")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// Registration conflict.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrStore marks any failure of the underlying persistence.
	ErrStore = errors.New("store error")
)
