// util/validation_util.go

package util

import (
	"fmt"
	"strings"
	"unicode/utf8"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

const (
	maxNameLength        = 200
	minPasswordLength    = 8
	minStaffSearchLength = 3
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateEvent(event model.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("%w: event name cannot be empty", ed_errors.ErrInvalidEventData)
	}
	if utf8.RuneCountInString(event.Name) > maxNameLength {
		return fmt.Errorf("%w: event name longer than %d characters", ed_errors.ErrInvalidEventData, maxNameLength)
	}
	if event.DateTime.IsZero() {
		return fmt.Errorf("%w: event date cannot be empty", ed_errors.ErrInvalidEventData)
	}
	if event.Status != "" {
		if _, ok := model.ParseEventStatus(string(event.Status)); !ok {
			return fmt.Errorf("%w: %q", ed_errors.ErrInvalidEventStatus, event.Status)
		}
	}
	return nil
}

// ValidateEventPatch only checks the name; every other field may be cleared.
func (v *ValidationUtil) ValidateEventPatch(patch model.EventPatch) error {
	if strings.TrimSpace(patch.Name) == "" {
		return fmt.Errorf("%w: event name cannot be empty", ed_errors.ErrInvalidEventData)
	}
	if utf8.RuneCountInString(patch.Name) > maxNameLength {
		return fmt.Errorf("%w: event name longer than %d characters", ed_errors.ErrInvalidEventData, maxNameLength)
	}
	return nil
}

func (v *ValidationUtil) ValidateUserName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ed_errors.ErrInvalidUserData)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ed_errors.ErrInvalidUserData, maxNameLength)
	}
	return nil
}

func (v *ValidationUtil) ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ed_errors.ErrInvalidUserData, minPasswordLength)
	}
	if strings.TrimSpace(password) != password {
		return fmt.Errorf("%w: password cannot start or end with whitespace", ed_errors.ErrInvalidUserData)
	}
	return nil
}

func (v *ValidationUtil) ValidateStaffSearch(emailPart string) error {
	if utf8.RuneCountInString(strings.TrimSpace(emailPart)) < minStaffSearchLength {
		return fmt.Errorf("%w: search needs at least %d characters", ed_errors.ErrInvalidSearchCriteria, minStaffSearchLength)
	}
	return nil
}
