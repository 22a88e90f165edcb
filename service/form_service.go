// service/form_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/access"
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/schema"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// IFormService defines the interface for registration form operations
type IFormService interface {
	CreateForm(ctx context.Context, eventID int64, userID int64) (*model.Form, error)
	UpdateForm(ctx context.Context, formID int64, fields []model.FormField, userID int64) (*model.Form, error)
	DeleteForm(ctx context.Context, formID int64, userID int64) error
	GetForm(ctx context.Context, formID int64, userID int64) (*model.Form, error)
	GetFormByEvent(ctx context.Context, eventID int64, userID int64) (*model.Form, error)
	FormTemplate(ctx context.Context, formID int64, userID int64) ([]byte, error)
}

// FormService handles business logic for registration forms
type FormService struct {
	formStore   FormStore
	guard       *guard
	spreadsheet Spreadsheet
	eventBus    *util.EventBus
}

var _ IFormService = &FormService{}

func NewFormService(formStore FormStore, eventStore EventStore, staffStore StaffStore, cacheService *util.CacheService, auditService audit.Service, spreadsheet Spreadsheet, eventBus *util.EventBus) *FormService {
	return &FormService{
		formStore:   formStore,
		guard:       newGuard(eventStore, formStore, staffStore, cacheService, auditService),
		spreadsheet: spreadsheet,
		eventBus:    eventBus,
	}
}

// CreateForm gives the event its single form, holding only the Email field.
func (s *FormService) CreateForm(ctx context.Context, eventID int64, userID int64) (*model.Form, error) {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "create_form", entityForm, eventID); err != nil {
		return nil, err
	}

	form, err := s.formStore.CreateForm(ctx, eventID)
	if err != nil {
		if !ed_errors.Is(err, ed_errors.ErrFormExists) {
			logger.Error("Error creating form", zap.Error(err), zap.Int64("eventID", eventID))
		}
		return nil, err
	}
	// The event now points at the form.
	s.guard.invalidateEvent(ctx, eventID)

	s.guard.record(ctx, userID, "create_form", entityForm, form.ID, map[string]any{"eventId": eventID})
	s.eventBus.Publish(ctx, util.FormCreated, *form)

	logger.Info("Form created successfully", zap.Int64("formID", form.ID), zap.Int64("eventID", eventID))
	return form, nil
}

// UpdateForm replaces the field list. A form holding participant data is
// never changed; otherwise the new list must pass NormalizeFields.
func (s *FormService) UpdateForm(ctx context.Context, formID int64, fields []model.FormField, userID int64) (*model.Form, error) {
	event, err := s.manageForm(ctx, formID, userID, "update_form")
	if err != nil {
		return nil, err
	}

	hasParticipants, err := s.formStore.FormHasParticipants(ctx, formID)
	if err != nil {
		return nil, err
	}
	if hasParticipants {
		return nil, ed_errors.ErrFormHasParticipants
	}

	normalized, err := schema.NormalizeFields(fields)
	if err != nil {
		return nil, err
	}

	updated, err := s.formStore.UpdateForm(ctx, formID, normalized)
	if err != nil {
		logger.Error("Error updating form", zap.Error(err), zap.Int64("formID", formID))
		return nil, err
	}
	s.guard.invalidateForm(ctx, formID)

	s.guard.record(ctx, userID, "update_form", entityForm, formID, map[string]any{
		"eventId": event.ID,
		"fields":  updated.Fields,
	})
	s.eventBus.Publish(ctx, util.FormUpdated, *updated)

	logger.Info("Form updated successfully", zap.Int64("formID", formID), zap.Int("fields", len(updated.Fields)))
	return updated, nil
}

// DeleteForm detaches the form from its event under the same participant
// rule as UpdateForm.
func (s *FormService) DeleteForm(ctx context.Context, formID int64, userID int64) error {
	event, err := s.manageForm(ctx, formID, userID, "delete_form")
	if err != nil {
		return err
	}

	if err := s.formStore.DeleteForm(ctx, formID, event.ID); err != nil {
		if !ed_errors.Is(err, ed_errors.ErrFormHasParticipants) {
			logger.Error("Error deleting form", zap.Error(err), zap.Int64("formID", formID))
		}
		return err
	}
	s.guard.invalidateForm(ctx, formID)
	s.guard.invalidateEvent(ctx, event.ID)

	s.guard.record(ctx, userID, "delete_form", entityForm, formID, map[string]any{"eventId": event.ID})
	s.eventBus.Publish(ctx, util.FormDeleted, formID)

	logger.Info("Form deleted successfully", zap.Int64("formID", formID), zap.Int64("eventID", event.ID))
	return nil
}

func (s *FormService) GetForm(ctx context.Context, formID int64, userID int64) (*model.Form, error) {
	form, err := s.guard.form(ctx, formID)
	if err != nil {
		return nil, err
	}
	event, err := s.guard.event(ctx, form.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionView, event, "view_form", entityForm, formID); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) GetFormByEvent(ctx context.Context, eventID int64, userID int64) (*model.Form, error) {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionView, event, "view_form", entityEvent, eventID); err != nil {
		return nil, err
	}
	return s.formStore.GetFormByEvent(ctx, eventID)
}

// FormTemplate returns an xlsx workbook whose header row lists the form's
// field names, ready to be filled in and imported.
func (s *FormService) FormTemplate(ctx context.Context, formID int64, userID int64) ([]byte, error) {
	form, err := s.GetForm(ctx, formID, userID)
	if err != nil {
		return nil, err
	}
	data, err := s.spreadsheet.FormTemplate(form.FieldNames())
	if err != nil {
		logger.Error("Error building form template", zap.Error(err), zap.Int64("formID", formID))
		return nil, err
	}
	return data, nil
}

// manageForm resolves the form's event and requires the caller to organize it.
func (s *FormService) manageForm(ctx context.Context, formID, userID int64, op string) (*model.Event, error) {
	event, err := s.guard.eventForForm(ctx, formID)
	if err != nil {
		if ed_errors.Is(err, ed_errors.ErrEventNotFound) {
			return nil, ed_errors.ErrFormNotFound
		}
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, op, entityForm, formID); err != nil {
		return nil, err
	}
	return event, nil
}
