// errors/form_errors.go
package errors

import "fmt"

var (
	ErrFormNotFound        = fmt.Errorf("%w: form not found", ErrNotFound)
	ErrFormExists          = fmt.Errorf("%w: event already has a form", ErrConflict)
	ErrFormHasParticipants = fmt.Errorf("%w: form already holds participant data", ErrConflict)
	ErrInvalidFormSchema   = fmt.Errorf("%w: form must contain exactly one Email field of type email", ErrInvalidSchema)
	ErrUnknownFieldType    = fmt.Errorf("%w: unknown field type", ErrInvalidSchema)
	ErrInvalidFieldName    = fmt.Errorf("%w: field names must be non-empty and unique", ErrInvalidSchema)
	ErrFormChanged         = fmt.Errorf("%w: form fields changed during the request", ErrConflict)
)
