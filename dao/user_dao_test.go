package dao

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	mocks "github.com/dev-mohitbeniwal/eventdesk/test/mock"
)

func TestUserDAO_CreateUser(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("MATCH (u:User {email: $email})"), mocks.Params(map[string]any{"email": "sam@example.org"})).
		Return(mocks.Records(), nil).Once()
	expectSequence(tx, "User", 10001)
	tx.On("Run", mocks.Query("CREATE (u:User)"), mock.MatchedBy(func(params map[string]any) bool {
		props := params["props"].(map[string]any)
		return props["id"] == int64(10001) && props["passwordHash"] == "hash" && props["canBeStaff"] == true
	})).Return(mocks.Records(mocks.Record("u", mocks.Node("User", map[string]any{
		"id": int64(10001), "name": "Sam", "email": "sam@example.org", "passwordHash": "hash", "canBeStaff": true,
	}))), nil).Once()

	user, err := NewUserDAO(graph).CreateUser(context.Background(), model.User{
		Name: "Sam", Email: "sam@example.org", PasswordHash: "hash", CanBeStaff: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10001), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserDAO_CreateUserDuplicateEmail(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("MATCH (u:User {email: $email})"), mock.Anything).
		Return(mocks.Records(mocks.Record("id", int64(10001))), nil).Once()

	_, err := NewUserDAO(graph).CreateUser(context.Background(), model.User{Email: "sam@example.org"})

	assert.ErrorIs(t, err, ed_errors.ErrUserConflict)
	assert.ErrorIs(t, err, ed_errors.ErrConflict)
	tx.AssertNotCalled(t, "Run", mocks.Query("CREATE (u:User)"), mock.Anything)
}

func TestUserDAO_CreateUserLosesEmailRace(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("MATCH (u:User {email: $email})"), mock.Anything).Return(mocks.Records(), nil).Once()
	expectSequence(tx, "User", 10002)
	tx.On("Run", mocks.Query("CREATE (u:User)"), mock.Anything).Return(nil, db.StoreError(&neo4j.Neo4jError{
		Code: "Neo.ClientError.Schema.ConstraintValidationFailed",
		Msg:  "Node(10001) already exists with label `User` and property `email` = 'sam@example.org'",
	})).Once()

	_, err := NewUserDAO(graph).CreateUser(context.Background(), model.User{Email: "sam@example.org"})

	assert.ErrorIs(t, err, ed_errors.ErrUserConflict)
	assert.NotErrorIs(t, err, ed_errors.ErrTransport)
}

func TestUserDAO_GetUserByResetToken(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("passwordResetToken: $value"), mocks.Params(map[string]any{"value": "token"})).
		Return(mocks.Records(mocks.Record("u", mocks.Node("User", map[string]any{
			"id":                       int64(10001),
			"passwordResetToken":       "token",
			"passwordResetRequestedAt": "2024-05-01T18:30:00Z",
			"passwordResetAttempts":    int64(2),
		}))), nil).Once()
	tx.On("Run", mocks.Query("passwordResetToken: $value"), mock.Anything).Return(mocks.Records(), nil).Once()

	userDAO := NewUserDAO(graph)
	user, err := userDAO.GetUserByResetToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, 2, user.PasswordResetAttempts)
	assert.Equal(t, time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC), *user.PasswordResetRequestedAt)

	_, err = userDAO.GetUserByResetToken(context.Background(), "other")
	assert.ErrorIs(t, err, ed_errors.ErrResetTokenNotFound)

	_, err = userDAO.GetUserByResetToken(context.Background(), "")
	assert.ErrorIs(t, err, ed_errors.ErrResetTokenNotFound)
}

func TestUserDAO_UpdatePasswordClearsReset(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("SET u += $props"), mock.MatchedBy(func(params map[string]any) bool {
		props := params["props"].(map[string]any)
		return params["id"] == int64(10001) &&
			props["passwordHash"] == "new-hash" &&
			props["passwordResetToken"] == "" &&
			props["passwordResetAttempts"] == 0
	})).Return(mocks.Records(mocks.Record("id", int64(10001))), nil).Once()

	assert.NoError(t, NewUserDAO(graph).UpdatePassword(context.Background(), 10001, "new-hash"))
}

func TestUserDAO_UpdateNameMissingUser(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("SET u += $props"), mock.Anything).Return(mocks.Records(), nil).Once()

	err := NewUserDAO(graph).UpdateName(context.Background(), 404, "Sam")
	assert.ErrorIs(t, err, ed_errors.ErrUserNotFound)
}
