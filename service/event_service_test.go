package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

func TestEventService_CreateEvent(t *testing.T) {
	t.Run("starts upcoming whatever the caller sent", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("CreateEvent", ctx, mock.MatchedBy(func(e model.Event) bool {
			return e.Status == model.EventUpcoming && e.Name == "Go Meetup"
		}), organizerID).Return(testEvent(), nil)

		created, err := f.eventService().CreateEvent(ctx, model.Event{
			Name:     "Go Meetup",
			DateTime: time.Date(2026, 11, 5, 18, 30, 0, 0, time.UTC),
			Status:   model.EventFinished,
		}, organizerID)

		require.NoError(t, err)
		assert.Equal(t, testEventID, created.ID)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.eventService().CreateEvent(ctx, model.Event{Name: "  ", DateTime: time.Now()}, organizerID)
		assert.ErrorIs(t, err, ed_errors.ErrInvalidEventData)
		assert.ErrorIs(t, err, ed_errors.ErrInvalidInput)
	})
}

func TestEventService_UpdateEventStatus(t *testing.T) {
	t.Run("organizer moves the event", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)
		f.events.On("UpdateStatus", ctx, testEventID, model.EventInProgress).Return(nil)

		updated, err := f.eventService().UpdateEventStatus(ctx, testEventID, " In_Progress ", organizerID)

		require.NoError(t, err)
		assert.Equal(t, model.EventInProgress, updated.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.eventService().UpdateEventStatus(ctx, testEventID, "cancelled", organizerID)
		assert.ErrorIs(t, err, ed_errors.ErrInvalidEventStatus)
	})

	t.Run("staff may not change the event", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)

		_, err := f.eventService().UpdateEventStatus(ctx, testEventID, "finished", staffID)

		assert.ErrorIs(t, err, ed_errors.ErrNotEventOrganizer)
		f.events.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		denied := f.deniedAudits()
		require.Len(t, denied, 1)
		assert.Equal(t, staffID, denied[0].UserID)
		assert.Equal(t, "update_event_status", denied[0].Action)
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	f := newFixture(t)
	patch := model.EventPatch{Name: "Go Meetup #2", DateTime: time.Date(2026, 12, 1, 18, 0, 0, 0, time.UTC)}
	updated := testEvent()
	updated.Name = patch.Name
	f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)
	f.events.On("UpdateEvent", ctx, testEventID, patch).Return(updated, nil)

	got, err := f.eventService().UpdateEvent(ctx, testEventID, patch, organizerID)

	require.NoError(t, err)
	assert.Equal(t, "Go Meetup #2", got.Name)
}

func TestEventService_DeleteEvent(t *testing.T) {
	t.Run("removes the event", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)
		f.events.On("DeleteEvent", ctx, testEventID).Return(&model.EventDeletion{FormID: testFormID, Participants: 3}, nil)

		assert.NoError(t, f.eventService().DeleteEvent(ctx, testEventID, organizerID))
	})

	t.Run("invitations already sent", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)
		f.events.On("DeleteEvent", ctx, testEventID).Return(nil, ed_errors.ErrInvitationsSent)

		err := f.eventService().DeleteEvent(ctx, testEventID, organizerID)
		assert.ErrorIs(t, err, ed_errors.ErrConflict)
	})

	t.Run("missing event", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, int64(99)).Return(nil, ed_errors.ErrEventNotFound)

		err := f.eventService().DeleteEvent(ctx, 99, organizerID)
		assert.ErrorIs(t, err, ed_errors.ErrNotFound)
	})
}

func TestEventService_GetEventAudit(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	t.Run("organizer reads the event trail", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)
		f.audit.On("QueryLogs", ctx, from, to, int64(0), "event", testEventID).
			Return([]audit.AuditLog{{ID: "a", Action: "update_event", EntityID: testEventID}}, nil)

		logs, err := f.eventService().GetEventAudit(ctx, testEventID, from, to, organizerID)

		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "update_event", logs[0].Action)
	})

	t.Run("staff may not read it", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)

		_, err := f.eventService().GetEventAudit(ctx, testEventID, from, to, staffID)

		assert.ErrorIs(t, err, ed_errors.ErrNotEventOrganizer)
		f.audit.AssertNotCalled(t, "QueryLogs", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty range", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.eventService().GetEventAudit(ctx, testEventID, to, from, organizerID)
		assert.ErrorIs(t, err, ed_errors.ErrInvalidInput)
	})

	t.Run("search failure", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("GetEvent", ctx, testEventID).Return(testEvent(), nil)
		f.audit.On("QueryLogs", ctx, from, to, int64(0), "event", testEventID).Return(nil, errors.New("cluster down"))

		_, err := f.eventService().GetEventAudit(ctx, testEventID, from, to, organizerID)
		assert.Error(t, err)
	})
}
