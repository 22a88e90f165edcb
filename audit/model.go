// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog records one mutation attempted by a user.
type AuditLog struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	UserID        int64           `json:"user_id"`
	Action        string          `json:"action"`
	EntityType    string          `json:"entity_type"`
	EntityID      int64           `json:"entity_id"`
	AccessGranted bool            `json:"access_granted"`
	Reason        string          `json:"reason,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Changes encodes a set of changed values for ChangeDetails. Encoding
// failures yield nil; the audit entry is still written.
func Changes(details map[string]any) json.RawMessage {
	if len(details) == 0 {
		return nil
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	return payload
}
