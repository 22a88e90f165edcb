// audit/service.go
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID int64, entityType string, entityID int64) ([]AuditLog, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// LogAccess fills in the document id and timestamp when the caller left
// them empty.
func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = s.now().UTC()
	}
	return s.repo.LogAccess(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID int64, entityType string, entityID int64) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, entityType, entityID)
}
