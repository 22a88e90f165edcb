// errors/participant_errors.go
package errors

import "fmt"

var (
	ErrParticipantNotFound     = fmt.Errorf("%w: participant not found", ErrNotFound)
	ErrMissingEmail            = fmt.Errorf("%w: participant has no email", ErrConflict)
	ErrMissingQrCode           = fmt.Errorf("%w: participant has no QR code", ErrConflict)
	ErrEmptySheet              = fmt.Errorf("%w: spreadsheet has no header row", ErrInvalidInput)
	ErrInvalidImage            = fmt.Errorf("%w: image could not be decoded", ErrInvalidInput)
	ErrInvalidParticipantPatch = fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	ErrParticipantData         = fmt.Errorf("%w: participant data does not match the form", ErrValidationFailed)
)
