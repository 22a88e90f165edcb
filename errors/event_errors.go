// errors/event_errors.go
package errors

import "fmt"

var (
	ErrEventNotFound         = fmt.Errorf("%w: event not found", ErrNotFound)
	ErrInvalidEventData      = fmt.Errorf("%w: invalid event data", ErrInvalidInput)
	ErrInvalidEventStatus    = fmt.Errorf("%w: invalid event status", ErrInvalidInput)
	ErrInvitationsSent       = fmt.Errorf("%w: invitations were already sent for this event", ErrConflict)
	ErrNotEventOrganizer     = fmt.Errorf("%w: only the organizer may change this event", ErrForbidden)
	ErrNotEventMember        = fmt.Errorf("%w: not an organizer or staff member of this event", ErrForbidden)
	ErrUserCannotBeStaff     = fmt.Errorf("%w: user does not accept staff assignments", ErrConflict)
	ErrInvalidSearchCriteria = fmt.Errorf("%w: invalid search criteria", ErrInvalidInput)
)
