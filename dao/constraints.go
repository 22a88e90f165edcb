// dao/constraints.go
package dao

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

var constraintQueries = map[string]string{
	"unique_user_id":        `CREATE CONSTRAINT unique_user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	"unique_user_email":     `CREATE CONSTRAINT unique_user_email IF NOT EXISTS FOR (u:User) REQUIRE u.email IS UNIQUE`,
	"unique_event_id":       `CREATE CONSTRAINT unique_event_id IF NOT EXISTS FOR (e:Event) REQUIRE e.id IS UNIQUE`,
	"unique_form_id":        `CREATE CONSTRAINT unique_form_id IF NOT EXISTS FOR (f:Form) REQUIRE f.id IS UNIQUE`,
	"unique_participant_id": `CREATE CONSTRAINT unique_participant_id IF NOT EXISTS FOR (p:ParticipantData) REQUIRE p.id IS UNIQUE`,
	"unique_sequence_name":  `CREATE CONSTRAINT unique_sequence_name IF NOT EXISTS FOR (s:Sequence) REQUIRE s.name IS UNIQUE`,
}

// EnsureConstraints creates the uniqueness constraints the store supports.
// Failures are logged and counted, not fatal: the application-level checks
// in each DAO do not depend on them.
func EnsureConstraints(ctx context.Context, graph db.Graph) int {
	failed := 0
	for name, query := range constraintQueries {
		_, err := graph.ExecuteWrite(ctx, func(ctx context.Context, tx db.Tx) (any, error) {
			return tx.Run(ctx, query, nil)
		})
		if err != nil {
			failed++
			logger.Warn("Failed to ensure constraint", zap.String("constraint", name), zap.Error(err))
			continue
		}
		logger.Info("Successfully ensured constraint", zap.String("constraint", name))
	}
	return failed
}
