package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

type staffSet map[[2]int64]bool

func (s staffSet) IsStaff(_ context.Context, eventID, userID int64) (bool, error) {
	return s[[2]int64{eventID, userID}], nil
}

type failingStaff struct{}

func (failingStaff) IsStaff(context.Context, int64, int64) (bool, error) {
	return false, ed_errors.ErrDatabaseOperation
}

const (
	organizer = int64(10001)
	staffer   = int64(10005)
	outsider  = int64(10009)
)

var event = &model.Event{ID: 10000, CreatedBy: organizer}

func TestEvaluator_Decisions(t *testing.T) {
	evaluator := NewEvaluator(staffSet{{10000, staffer}: true})

	tests := []struct {
		name   string
		userID int64
		action Action
		effect Effect
		rule   string
	}{
		{"organizer manages", organizer, ActionManage, EffectAllow, "organizer"},
		{"organizer views", organizer, ActionView, EffectAllow, "organizer"},
		{"staff views", staffer, ActionView, EffectAllow, "staff"},
		{"staff cannot manage", staffer, ActionManage, EffectDeny, ""},
		{"outsider cannot view", outsider, ActionView, EffectDeny, ""},
		{"outsider cannot manage", outsider, ActionManage, EffectDeny, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := evaluator.Evaluate(context.Background(), &AccessRequest{UserID: tt.userID, Action: tt.action, Event: event})
			require.NoError(t, err)
			assert.Equal(t, tt.effect, decision.Effect)
			assert.Equal(t, tt.rule, decision.Rule)
			assert.NotEmpty(t, decision.Reason)
		})
	}
}

func TestEvaluator_RequireErrors(t *testing.T) {
	evaluator := NewEvaluator(staffSet{{10000, staffer}: true})

	_, err := evaluator.Require(context.Background(), &AccessRequest{UserID: staffer, Action: ActionManage, Event: event})
	assert.ErrorIs(t, err, ed_errors.ErrNotEventOrganizer)
	assert.True(t, errors.Is(err, ed_errors.ErrForbidden))

	_, err = evaluator.Require(context.Background(), &AccessRequest{UserID: outsider, Action: ActionView, Event: event})
	assert.ErrorIs(t, err, ed_errors.ErrNotEventMember)

	decision, err := evaluator.Require(context.Background(), &AccessRequest{UserID: staffer, Action: ActionView, Event: event})
	require.NoError(t, err)
	assert.True(t, decision.Allowed())
}

func TestEvaluator_OrganizerSkipsStaffLookup(t *testing.T) {
	evaluator := NewEvaluator(failingStaff{})

	decision, err := evaluator.Evaluate(context.Background(), &AccessRequest{UserID: organizer, Action: ActionView, Event: event})
	require.NoError(t, err)
	assert.True(t, decision.Allowed())

	_, err = evaluator.Evaluate(context.Background(), &AccessRequest{UserID: outsider, Action: ActionView, Event: event})
	assert.ErrorIs(t, err, ed_errors.ErrTransport)
}

func TestEvaluator_EventWithoutOrganizer(t *testing.T) {
	evaluator := NewEvaluator(nil)

	decision, err := evaluator.Evaluate(context.Background(), &AccessRequest{UserID: 0, Action: ActionManage, Event: &model.Event{ID: 1}})
	require.NoError(t, err)
	assert.False(t, decision.Allowed())
}
