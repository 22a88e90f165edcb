// errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of these so callers can
// classify a failure with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidSchema    = errors.New("invalid schema")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrTransport        = errors.New("transport failure")
)

var (
	ErrDatabaseOperation = fmt.Errorf("%w: database operation failed", ErrTransport)
	ErrEmailDelivery     = fmt.Errorf("%w: email delivery failed", ErrTransport)
	ErrInternalServer    = errors.New("internal server error")

	// ErrConstraintViolation is a write rejected by a store uniqueness constraint.
	ErrConstraintViolation = fmt.Errorf("%w: store constraint violated", ErrConflict)
)

// Is and As re-export the standard helpers so callers importing this package
// under an alias don't also need the standard errors package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
