// service/event_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/access"
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// IEventService defines the interface for event operations
type IEventService interface {
	CreateEvent(ctx context.Context, event model.Event, userID int64) (*model.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, patch model.EventPatch, userID int64) (*model.Event, error)
	UpdateEventStatus(ctx context.Context, eventID int64, status string, userID int64) (*model.Event, error)
	DeleteEvent(ctx context.Context, eventID int64, userID int64) error
	GetEvent(ctx context.Context, eventID int64) (*model.Event, error)
	ListUserEvents(ctx context.Context, userID int64) ([]*model.Event, error)
	ListStaffEvents(ctx context.Context, userID int64) ([]*model.Event, error)
	GetEventAudit(ctx context.Context, eventID int64, from, to time.Time, userID int64) ([]audit.AuditLog, error)
}

// EventService handles business logic for event operations
type EventService struct {
	eventStore     EventStore
	guard          *guard
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IEventService = &EventService{}

func NewEventService(eventStore EventStore, formStore FormStore, staffStore StaffStore, cacheService *util.CacheService, auditService audit.Service, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *EventService {
	return &EventService{
		eventStore:     eventStore,
		guard:          newGuard(eventStore, formStore, staffStore, cacheService, auditService),
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// CreateEvent stores a new upcoming event owned by userID.
func (s *EventService) CreateEvent(ctx context.Context, event model.Event, userID int64) (*model.Event, error) {
	event.Status = model.EventUpcoming
	if err := s.validationUtil.ValidateEvent(event); err != nil {
		return nil, err
	}

	created, err := s.eventStore.CreateEvent(ctx, event, userID)
	if err != nil {
		logger.Error("Error creating event", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	s.guard.record(ctx, userID, "create_event", entityEvent, created.ID, map[string]any{"name": created.Name})
	s.eventBus.Publish(ctx, util.EventCreated, *created)

	logger.Info("Event created successfully", zap.Int64("eventID", created.ID), zap.Int64("userID", userID))
	return created, nil
}

// UpdateEvent overwrites the descriptive fields of the event. Fields left
// empty in patch are stored empty.
func (s *EventService) UpdateEvent(ctx context.Context, eventID int64, patch model.EventPatch, userID int64) (*model.Event, error) {
	if err := s.validationUtil.ValidateEventPatch(patch); err != nil {
		return nil, err
	}

	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "update_event", entityEvent, eventID); err != nil {
		return nil, err
	}

	updated, err := s.eventStore.UpdateEvent(ctx, eventID, patch)
	if err != nil {
		logger.Error("Error updating event", zap.Error(err), zap.Int64("eventID", eventID))
		return nil, err
	}
	s.guard.invalidateEvent(ctx, eventID)

	s.guard.record(ctx, userID, "update_event", entityEvent, eventID, map[string]any{
		"old": map[string]any{"name": event.Name, "dateTime": event.DateTime, "location": event.Location},
		"new": map[string]any{"name": updated.Name, "dateTime": updated.DateTime, "location": updated.Location},
	})
	s.eventBus.Publish(ctx, util.EventUpdated, *updated)

	logger.Info("Event updated successfully", zap.Int64("eventID", eventID), zap.Int64("userID", userID))
	return updated, nil
}

// UpdateEventStatus moves the event to any of the known statuses. Transition
// order is not enforced.
func (s *EventService) UpdateEventStatus(ctx context.Context, eventID int64, status string, userID int64) (*model.Event, error) {
	parsed, ok := model.ParseEventStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ed_errors.ErrInvalidEventStatus, status)
	}

	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "update_event_status", entityEvent, eventID); err != nil {
		return nil, err
	}

	if err := s.eventStore.UpdateStatus(ctx, eventID, parsed); err != nil {
		logger.Error("Error updating event status", zap.Error(err), zap.Int64("eventID", eventID))
		return nil, err
	}
	s.guard.invalidateEvent(ctx, eventID)

	s.guard.record(ctx, userID, "update_event_status", entityEvent, eventID, map[string]any{
		"old": event.Status,
		"new": parsed,
	})
	updated := *event
	updated.Status = parsed
	s.eventBus.Publish(ctx, util.EventUpdated, updated)

	logger.Info("Event status updated",
		zap.Int64("eventID", eventID),
		zap.String("status", string(parsed)),
		zap.Int64("userID", userID))
	return &updated, nil
}

// DeleteEvent removes the event with its form and participant data. An event
// that is not finished cannot be deleted once invitations went out.
func (s *EventService) DeleteEvent(ctx context.Context, eventID int64, userID int64) error {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "delete_event", entityEvent, eventID); err != nil {
		return err
	}

	deletion, err := s.eventStore.DeleteEvent(ctx, eventID)
	if err != nil {
		logger.Error("Error deleting event", zap.Error(err), zap.Int64("eventID", eventID))
		return err
	}
	s.guard.invalidateEvent(ctx, eventID)
	s.guard.invalidateForm(ctx, deletion.FormID)

	s.guard.record(ctx, userID, "delete_event", entityEvent, eventID, map[string]any{
		"formId":       deletion.FormID,
		"participants": deletion.Participants,
	})
	s.eventBus.Publish(ctx, util.EventDeleted, eventID)

	logger.Info("Event deleted successfully",
		zap.Int64("eventID", eventID),
		zap.Int64("participants", deletion.Participants),
		zap.Int64("userID", userID))
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	return s.guard.event(ctx, eventID)
}

func (s *EventService) ListUserEvents(ctx context.Context, userID int64) ([]*model.Event, error) {
	events, err := s.eventStore.ListEventsByUser(ctx, userID)
	if err != nil {
		logger.Error("Error listing user events", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	return events, nil
}

func (s *EventService) ListStaffEvents(ctx context.Context, userID int64) ([]*model.Event, error) {
	events, err := s.eventStore.ListStaffEvents(ctx, userID)
	if err != nil {
		logger.Error("Error listing staff events", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	return events, nil
}

// GetEventAudit returns the audit entries recorded against the event in
// [from, to], newest first. Only the organizer may read them.
func (s *EventService) GetEventAudit(ctx context.Context, eventID int64, from, to time.Time, userID int64) ([]audit.AuditLog, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: audit range must start before it ends", ed_errors.ErrInvalidInput)
	}

	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "read_event_audit", entityEvent, eventID); err != nil {
		return nil, err
	}

	if s.guard.audit == nil {
		return []audit.AuditLog{}, nil
	}
	logs, err := s.guard.audit.QueryLogs(ctx, from, to, 0, entityEvent, eventID)
	if err != nil {
		logger.Error("Error querying event audit", zap.Error(err), zap.Int64("eventID", eventID))
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	return logs, nil
}
