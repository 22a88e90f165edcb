// Package access decides whether a user may act on an event. Organizers may
// do anything with the events they created; staff may only read.
package access

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

// StaffChecker reports whether a STAFF_FOR edge links the user to the event.
type StaffChecker interface {
	IsStaff(ctx context.Context, eventID, userID int64) (bool, error)
}

type Evaluator struct {
	staff StaffChecker
}

func NewEvaluator(staff StaffChecker) *Evaluator {
	return &Evaluator{staff: staff}
}

type rule struct {
	name    string
	actions []Action
	match   func(ctx context.Context, e *Evaluator, req *AccessRequest) (bool, error)
}

// rules are tried in order; the first match allows. No match denies.
var rules = []rule{
	{
		name:    "organizer",
		actions: []Action{ActionManage, ActionView},
		match: func(_ context.Context, _ *Evaluator, req *AccessRequest) (bool, error) {
			return req.Event.CreatedBy != 0 && req.Event.CreatedBy == req.UserID, nil
		},
	},
	{
		name:    "staff",
		actions: []Action{ActionView},
		match: func(ctx context.Context, e *Evaluator, req *AccessRequest) (bool, error) {
			if e.staff == nil {
				return false, nil
			}
			return e.staff.IsStaff(ctx, req.Event.ID, req.UserID)
		},
	},
}

func (r rule) covers(action Action) bool {
	for _, a := range r.actions {
		if a == action {
			return true
		}
	}
	return false
}

func (e *Evaluator) Evaluate(ctx context.Context, req *AccessRequest) (AccessDecision, error) {
	if req.Event == nil {
		return AccessDecision{Effect: EffectDeny, Reason: "no event"}, nil
	}
	for _, r := range rules {
		if !r.covers(req.Action) {
			continue
		}
		matched, err := r.match(ctx, e, req)
		if err != nil {
			return AccessDecision{}, err
		}
		if matched {
			return AccessDecision{
				Effect: EffectAllow,
				Rule:   r.name,
				Reason: fmt.Sprintf("user %d is %s of event %d", req.UserID, r.name, req.Event.ID),
			}, nil
		}
	}
	return AccessDecision{
		Effect: EffectDeny,
		Reason: fmt.Sprintf("user %d may not %s event %d", req.UserID, req.Action, req.Event.ID),
	}, nil
}

// Require turns a deny into ErrNotEventOrganizer for manage requests and
// ErrNotEventMember for view requests.
func (e *Evaluator) Require(ctx context.Context, req *AccessRequest) (AccessDecision, error) {
	decision, err := e.Evaluate(ctx, req)
	if err != nil {
		return decision, err
	}
	if decision.Allowed() {
		return decision, nil
	}
	logger.Info("Access denied",
		zap.Int64("userID", req.UserID),
		zap.String("action", string(req.Action)),
		zap.String("reason", decision.Reason))
	if req.Action == ActionManage {
		return decision, ed_errors.ErrNotEventOrganizer
	}
	return decision, ed_errors.ErrNotEventMember
}
