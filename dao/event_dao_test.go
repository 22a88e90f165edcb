package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	mocks "github.com/dev-mohitbeniwal/eventdesk/test/mock"
)

func eventRecord(id, createdBy int64, status string) []any {
	return []any{
		"e", mocks.Node("Event", map[string]any{
			"id":                   id,
			"name":                 "Meetup",
			"status":               status,
			"dateTime":             "2024-05-01T18:30:00Z",
			"invitationTemplateId": int64(0),
		}),
		"createdBy", createdBy,
	}
}

func deleteCheck(status string, formID, participants, invited int64) []any {
	return []any{"status", status, "formId", formID, "participants", participants, "invited", invited}
}

func TestEventDAO_CreateEvent(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("RETURN u.id AS id"), mocks.Params(map[string]any{"userId": int64(10001)})).
		Return(mocks.Records(mocks.Record("id", int64(10001))), nil).Once()
	expectSequence(tx, "Event", 10000)
	tx.On("Run", mocks.Query("CREATE (u)-[:CREATED]->(e:Event)"), mock.MatchedBy(func(params map[string]any) bool {
		props := params["props"].(map[string]any)
		_, hasCreatedBy := props["createdBy"]
		return props["id"] == int64(10000) &&
			props["status"] == "upcoming" &&
			props["dateTime"] == "2024-05-01T18:30:00Z" &&
			!hasCreatedBy
	})).Return(mocks.Records(mocks.Record(eventRecord(10000, 10001, "upcoming")...)), nil).Once()

	event, err := NewEventDAO(graph).CreateEvent(context.Background(), model.Event{
		Name:     "Meetup",
		DateTime: time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC),
		Status:   model.EventFinished,
	}, 10001)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), event.ID)
	assert.Equal(t, int64(10001), event.CreatedBy)
	assert.Equal(t, model.EventUpcoming, event.Status)
}

func TestEventDAO_CreateEventUnknownUser(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("RETURN u.id AS id"), mock.Anything).Return(mocks.Records(), nil).Once()

	_, err := NewEventDAO(graph).CreateEvent(context.Background(), model.Event{Name: "Meetup"}, 404)
	assert.ErrorIs(t, err, ed_errors.ErrUserNotFound)
}

func TestEventDAO_GetEvent(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("MATCH (e:Event {id: $id})"), mocks.Params(map[string]any{"id": int64(10000)})).
		Return(mocks.Records(mocks.Record(eventRecord(10000, 10001, "in_progress")...)), nil).Once()
	tx.On("Run", mocks.Query("MATCH (e:Event {id: $id})"), mock.Anything).Return(mocks.Records(), nil).Once()

	eventDAO := NewEventDAO(graph)
	event, err := eventDAO.GetEvent(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, model.EventInProgress, event.Status)
	assert.Equal(t, int64(10001), event.CreatedBy)

	_, err = eventDAO.GetEvent(context.Background(), 10000)
	assert.ErrorIs(t, err, ed_errors.ErrEventNotFound)
}

func TestEventDAO_UpdateStatus(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("SET e.status = $status"), mocks.Params(map[string]any{"status": "finished"})).
		Return(mocks.Records(mocks.Record("id", int64(10000))), nil).Once()

	eventDAO := NewEventDAO(graph)
	require.NoError(t, eventDAO.UpdateStatus(context.Background(), 10000, model.EventFinished))

	err := eventDAO.UpdateStatus(context.Background(), 10000, "cancelled")
	assert.ErrorIs(t, err, ed_errors.ErrInvalidEventStatus)
	assert.Equal(t, 1, graph.Writes)
}

func TestEventDAO_UpdateEventBlanksOmittedFields(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("SET e += $props"), mock.MatchedBy(func(params map[string]any) bool {
		props := params["props"].(map[string]any)
		_, touchesStatus := props["status"]
		return props["name"] == "Renamed" && props["location"] == "" && props["dateTime"] == "" && !touchesStatus
	})).Return(mocks.Records(mocks.Record(eventRecord(10000, 10001, "upcoming")...)), nil).Once()

	_, err := NewEventDAO(graph).UpdateEvent(context.Background(), 10000, model.EventPatch{Name: "Renamed"})
	assert.NoError(t, err)
}

func TestEventDAO_DeleteEventBlockedByInvitations(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("AS invited"), mock.Anything).
		Return(mocks.Records(mocks.Record(deleteCheck("upcoming", 10003, 2, 1)...)), nil).Once()

	_, err := NewEventDAO(graph).DeleteEvent(context.Background(), 10000)

	assert.ErrorIs(t, err, ed_errors.ErrInvitationsSent)
	assert.ErrorIs(t, err, ed_errors.ErrConflict)
	tx.AssertNotCalled(t, "Run", mocks.Query("DETACH DELETE f, e"), mock.Anything)
}

func TestEventDAO_DeleteEventCascades(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("AS invited"), mock.Anything).
		Return(mocks.Records(mocks.Record(deleteCheck("upcoming", 10003, 2, 0)...)), nil).Once()
	tx.On("Run", mocks.Query("DETACH DELETE f, e"), mocks.Params(map[string]any{"id": int64(10000)})).
		Return(mocks.Records(), nil).Once()

	deletion, err := NewEventDAO(graph).DeleteEvent(context.Background(), 10000)

	require.NoError(t, err)
	assert.Equal(t, &model.EventDeletion{FormID: 10003, Participants: 2}, deletion)
	assert.Equal(t, 1, graph.Writes)
}

func TestEventDAO_DeleteFinishedEventIgnoresInvitations(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("AS invited"), mock.Anything).
		Return(mocks.Records(mocks.Record(deleteCheck("finished", 10003, 3, 3)...)), nil).Once()
	tx.On("Run", mocks.Query("DETACH DELETE f, e"), mock.Anything).Return(mocks.Records(), nil).Once()

	_, err := NewEventDAO(graph).DeleteEvent(context.Background(), 10000)
	assert.NoError(t, err)
}

func TestEventDAO_DeleteMissingEvent(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("AS invited"), mock.Anything).Return(mocks.Records(), nil).Once()

	_, err := NewEventDAO(graph).DeleteEvent(context.Background(), 404)
	assert.ErrorIs(t, err, ed_errors.ErrEventNotFound)
}

func TestEventDAO_CommitFailure(t *testing.T) {
	graph, tx := newTestGraph(t)
	graph.CommitErr = ed_errors.ErrDatabaseOperation
	tx.On("Run", mocks.Query("AS invited"), mock.Anything).
		Return(mocks.Records(mocks.Record(deleteCheck("finished", 0, 0, 0)...)), nil).Once()
	tx.On("Run", mocks.Query("DETACH DELETE f, e"), mock.Anything).Return(mocks.Records(), nil).Once()

	_, err := NewEventDAO(graph).DeleteEvent(context.Background(), 10000)
	assert.ErrorIs(t, err, ed_errors.ErrTransport)
}

func TestEventDAO_ListStaffEvents(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("[:STAFF_FOR]->(e:Event)"), mocks.Params(map[string]any{"userId": int64(10005)})).
		Return(mocks.Records(
			mocks.Record(eventRecord(10000, 10001, "upcoming")...),
			mocks.Record(eventRecord(10002, 10001, "finished")...),
		), nil).Once()

	events, err := NewEventDAO(graph).ListStaffEvents(context.Background(), 10005)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(10002), events[1].ID)
	assert.Equal(t, int64(10001), events[1].CreatedBy)
}
