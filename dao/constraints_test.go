package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mocks "github.com/dev-mohitbeniwal/eventdesk/test/mock"
)

func TestEnsureConstraints(t *testing.T) {
	graph, tx := newTestGraph(t)
	tx.On("Run", mocks.Query("unique_user_email"), mock.Anything).
		Return(nil, errors.New("constraint already exists with different definition")).Once()
	tx.On("Run", mocks.Query("CREATE CONSTRAINT"), mock.Anything).
		Return(nil, nil).Times(len(constraintQueries) - 1)

	failed := EnsureConstraints(context.Background(), graph)

	assert.Equal(t, 1, failed)
	assert.Equal(t, len(constraintQueries), graph.Writes)
}
