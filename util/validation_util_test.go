package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

func TestValidationUtil_ValidateEvent(t *testing.T) {
	v := NewValidationUtil()
	when := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	assert.NoError(t, v.ValidateEvent(model.Event{Name: "Meetup", DateTime: when}))
	assert.ErrorIs(t, v.ValidateEvent(model.Event{Name: " ", DateTime: when}), ed_errors.ErrInvalidEventData)
	assert.ErrorIs(t, v.ValidateEvent(model.Event{Name: "Meetup"}), ed_errors.ErrInvalidEventData)
	assert.ErrorIs(t, v.ValidateEvent(model.Event{Name: strings.Repeat("x", 201), DateTime: when}), ed_errors.ErrInvalidEventData)
	assert.ErrorIs(t, v.ValidateEvent(model.Event{Name: "Meetup", DateTime: when, Status: "cancelled"}), ed_errors.ErrInvalidEventStatus)
}

func TestValidationUtil_Users(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateUserName("Ada"))
	assert.ErrorIs(t, v.ValidateUserName(""), ed_errors.ErrInvalidUserData)

	assert.NoError(t, v.ValidatePassword("s3cret-pass"))
	assert.ErrorIs(t, v.ValidatePassword("short"), ed_errors.ErrInvalidUserData)
	assert.ErrorIs(t, v.ValidatePassword(" padded-pass "), ed_errors.ErrInvalidUserData)
}

func TestValidationUtil_ValidateStaffSearch(t *testing.T) {
	v := NewValidationUtil()
	assert.NoError(t, v.ValidateStaffSearch("ada"))
	assert.ErrorIs(t, v.ValidateStaffSearch(" a "), ed_errors.ErrInvalidSearchCriteria)
}
