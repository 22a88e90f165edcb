// service/guard.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/access"
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// Audited entity types.
const (
	entityEvent       = "event"
	entityForm        = "form"
	entityParticipant = "participant"
	entityStaff       = "staff"
	entityUser        = "user"
)

// guard resolves the event behind a request, asks the evaluator whether the
// caller may act on it and keeps the audit trail. Every event service shares
// one guard.
type guard struct {
	events    EventStore
	forms     FormStore
	cache     *util.CacheService
	evaluator *access.Evaluator
	audit     audit.Service
}

func newGuard(events EventStore, forms FormStore, staff StaffStore, cache *util.CacheService, auditService audit.Service) *guard {
	return &guard{
		events:    events,
		forms:     forms,
		cache:     cache,
		evaluator: access.NewEvaluator(staff),
		audit:     auditService,
	}
}

// event is a read-through cached lookup.
func (g *guard) event(ctx context.Context, eventID int64) (*model.Event, error) {
	cached, err := g.cache.GetEvent(ctx, eventID)
	if err != nil {
		logger.Warn("Failed to read event from cache", zap.Error(err), zap.Int64("eventID", eventID))
	} else if cached != nil {
		return cached, nil
	}

	event, err := g.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := g.cache.SetEvent(ctx, *event); err != nil {
		logger.Warn("Failed to cache event", zap.Error(err), zap.Int64("eventID", eventID))
	}
	return event, nil
}

func (g *guard) eventForForm(ctx context.Context, formID int64) (*model.Event, error) {
	return g.events.GetEventByForm(ctx, formID)
}

// form is a read-through cached lookup.
func (g *guard) form(ctx context.Context, formID int64) (*model.Form, error) {
	cached, err := g.cache.GetForm(ctx, formID)
	if err != nil {
		logger.Warn("Failed to read form from cache", zap.Error(err), zap.Int64("formID", formID))
	} else if cached != nil {
		return cached, nil
	}

	form, err := g.forms.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := g.cache.SetForm(ctx, *form); err != nil {
		logger.Warn("Failed to cache form", zap.Error(err), zap.Int64("formID", formID))
	}
	return form, nil
}

func (g *guard) invalidateEvent(ctx context.Context, eventID int64) {
	if err := g.cache.DeleteEvent(ctx, eventID); err != nil {
		logger.Warn("Failed to evict event from cache", zap.Error(err), zap.Int64("eventID", eventID))
	}
}

func (g *guard) invalidateForm(ctx context.Context, formID int64) {
	if formID == 0 {
		return
	}
	if err := g.cache.DeleteForm(ctx, formID); err != nil {
		logger.Warn("Failed to evict form from cache", zap.Error(err), zap.Int64("formID", formID))
	}
}

// authorize returns ErrNotEventOrganizer or ErrNotEventMember when the caller
// may not perform action on event. Denials are audited.
func (g *guard) authorize(ctx context.Context, userID int64, action access.Action, event *model.Event, op, entityType string, entityID int64) error {
	decision, err := g.evaluator.Require(ctx, &access.AccessRequest{
		UserID: userID,
		Action: action,
		Event:  event,
	})
	if err == nil {
		return nil
	}
	if ed_errors.Is(err, ed_errors.ErrForbidden) {
		g.write(ctx, audit.AuditLog{
			UserID:        userID,
			Action:        op,
			EntityType:    entityType,
			EntityID:      entityID,
			AccessGranted: false,
			Reason:        decision.Reason,
		})
	}
	return err
}

// record audits a successful mutation.
func (g *guard) record(ctx context.Context, userID int64, op, entityType string, entityID int64, changes map[string]any) {
	g.write(ctx, audit.AuditLog{
		UserID:        userID,
		Action:        op,
		EntityType:    entityType,
		EntityID:      entityID,
		AccessGranted: true,
		ChangeDetails: audit.Changes(changes),
	})
}

func (g *guard) write(ctx context.Context, log audit.AuditLog) {
	if g.audit == nil {
		return
	}
	if err := g.audit.LogAccess(ctx, log); err != nil {
		logger.Warn("Failed to write audit log",
			zap.Error(err),
			zap.String("action", log.Action),
			zap.Int64("entityID", log.EntityID))
	}
}
