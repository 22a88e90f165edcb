// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/eventdesk/audit"
)

// MockAuditService records the audit entries a service writes.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, from, to time.Time, userID int64, entityType string, entityID int64) ([]audit.AuditLog, error) {
	args := m.Called(ctx, from, to, userID, entityType, entityID)
	logs, _ := args.Get(0).([]audit.AuditLog)
	return logs, args.Error(1)
}
