package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	mocks "github.com/dev-mohitbeniwal/eventdesk/test/mock"
)

func TestFormDAO_CreateForm(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(f) AS forms"), mocks.Params(map[string]any{"eventId": int64(10000)})).
		Return(mocks.Records(mocks.Record("id", int64(10000), "forms", int64(0))), nil).Once()
	expectSequence(tx, "Form", 10000)
	tx.On("Run", mocks.Query("CREATE (e)-[:HAS_FORM]->(f:Form"), mocks.Params(map[string]any{
		"eventId": int64(10000),
		"id":      int64(10000),
		"fields":  `[{"name":"Email","type":"email"}]`,
	})).Return(mocks.Records(mocks.Record("f", mocks.Node("Form", formNode(10000, 10000, `[{"name":"Email","type":"email"}]`)))), nil).Once()

	form, err := NewFormDAO(graph).CreateForm(context.Background(), 10000)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), form.ID)
	assert.Equal(t, model.DefaultFields(), form.Fields)
	assert.Equal(t, 1, graph.Writes)
}

func TestFormDAO_CreateFormTwice(t *testing.T) {
	graph, tx := newTestGraph(t)
	check := mocks.Query("count(f) AS forms")
	tx.On("Run", check, mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10000), "forms", int64(0))), nil).Once()
	expectSequence(tx, "Form", 10000)
	tx.On("Run", mocks.Query("CREATE (e)-[:HAS_FORM]"), mock.Anything).
		Return(mocks.Records(mocks.Record("f", mocks.Node("Form", formNode(10000, 10000, `[{"name":"Email","type":"email"}]`)))), nil).Once()
	tx.On("Run", check, mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10000), "forms", int64(1))), nil).Once()

	formDAO := NewFormDAO(graph)
	_, err := formDAO.CreateForm(context.Background(), 10000)
	require.NoError(t, err)

	_, err = formDAO.CreateForm(context.Background(), 10000)
	assert.ErrorIs(t, err, ed_errors.ErrFormExists)
	assert.True(t, errors.Is(err, ed_errors.ErrConflict))
}

func TestFormDAO_CreateFormMissingEvent(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(f) AS forms"), mock.Anything).Return(mocks.Records(), nil).Once()

	_, err := NewFormDAO(graph).CreateForm(context.Background(), 404)
	assert.ErrorIs(t, err, ed_errors.ErrEventNotFound)
}

func TestFormDAO_UpdateForm(t *testing.T) {
	fields := []model.FormField{
		{Name: "Email", Type: model.FieldEmail},
		{Name: "Phone", Type: model.FieldPhone},
	}
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(p) AS participants"), mocks.Params(map[string]any{"formId": int64(10003)})).
		Return(mocks.Records(mocks.Record("id", int64(10003), "participants", int64(0))), nil).Once()
	tx.On("Run", mocks.Query("SET f.fields = $fields"), mocks.Params(map[string]any{"fields": emailPhoneFields})).
		Return(mocks.Records(mocks.Record("f", mocks.Node("Form", formNode(10003, 10000, emailPhoneFields)))), nil).Once()

	form, err := NewFormDAO(graph).UpdateForm(context.Background(), 10003, fields)

	require.NoError(t, err)
	assert.Equal(t, fields, form.Fields)
}

func TestFormDAO_UpdateFormWithParticipants(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(p) AS participants"), mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10003), "participants", int64(2))), nil).Once()

	_, err := NewFormDAO(graph).UpdateForm(context.Background(), 10003, model.DefaultFields())

	assert.ErrorIs(t, err, ed_errors.ErrFormHasParticipants)
	assert.ErrorIs(t, err, ed_errors.ErrConflict)
	tx.AssertNotCalled(t, "Run", mocks.Query("SET f.fields"), mock.Anything)
}

func TestFormDAO_DeleteForm(t *testing.T) {
	graph, tx := newTestGraph(t)
	params := mocks.Params(map[string]any{"formId": int64(10003), "eventId": int64(10000)})
	tx.On("Run", mocks.Query("count(p) AS participants"), params).
		Return(mocks.Records(mocks.Record("id", int64(10003), "participants", int64(0))), nil).Once()
	tx.On("Run", mocks.Query("SET e.invitationTemplateId = 0"), params).Return(mocks.Records(), nil).Once()

	err := NewFormDAO(graph).DeleteForm(context.Background(), 10003, 10000)
	assert.NoError(t, err)
}

func TestFormDAO_DeleteFormBlocked(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(p) AS participants"), mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10003), "participants", int64(1))), nil).Once()

	err := NewFormDAO(graph).DeleteForm(context.Background(), 10003, 10000)

	assert.ErrorIs(t, err, ed_errors.ErrFormHasParticipants)
	tx.AssertNotCalled(t, "Run", mocks.Query("DETACH DELETE f"), mock.Anything)
}

func TestFormDAO_DeleteFormOfOtherEvent(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(p) AS participants"), mock.Anything).Return(mocks.Records(), nil).Once()

	err := NewFormDAO(graph).DeleteForm(context.Background(), 10003, 99999)
	assert.ErrorIs(t, err, ed_errors.ErrFormNotFound)
}

func TestFormDAO_FormHasParticipants(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("count(p) AS participants"), mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10003), "participants", int64(0))), nil).Once()
	tx.On("Run", mocks.Query("count(p) AS participants"), mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10003), "participants", int64(5))), nil).Once()

	formDAO := NewFormDAO(graph)
	has, err := formDAO.FormHasParticipants(context.Background(), 10003)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = formDAO.FormHasParticipants(context.Background(), 10003)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 2, graph.Reads)
}

func TestFormDAO_TransportFailure(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mock.Anything, mock.Anything).Return(nil, ed_errors.ErrDatabaseOperation).Once()

	_, err := NewFormDAO(graph).GetForm(context.Background(), 10003)
	assert.ErrorIs(t, err, ed_errors.ErrTransport)
}
