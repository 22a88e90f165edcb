package access

import "github.com/dev-mohitbeniwal/eventdesk/model"

type Action string

const (
	// ActionManage covers every mutation of an event, its form and its
	// participant data.
	ActionManage Action = "manage"
	// ActionView covers reading participant data and the staff roster.
	ActionView Action = "view"
)

type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

type AccessRequest struct {
	UserID int64
	Action Action
	Event  *model.Event
}

type AccessDecision struct {
	Effect Effect `json:"effect"`
	Rule   string `json:"rule,omitempty"`
	Reason string `json:"reason"`
}

func (d AccessDecision) Allowed() bool {
	return d.Effect == EffectAllow
}
