// service/participant_service.go
package service

import (
	"context"
	"encoding/base64"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/access"
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/schema"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// IParticipantService defines the interface for participant data operations.
// Batch operations report per-row problems as field errors next to the
// accepted participants; the error return is reserved for failures of the
// whole request.
type IParticipantService interface {
	AddParticipants(ctx context.Context, formID int64, records []map[string]string, userID int64) ([]*model.ParticipantData, []schema.FieldError, error)
	ImportSpreadsheet(ctx context.Context, formID int64, data []byte, userID int64) ([]*model.ParticipantData, []schema.FieldError, error)
	AttachQrCode(ctx context.Context, participantID int64, image []byte, userID int64) error
	SetAttendance(ctx context.Context, formID, participantID int64, attended bool, userID int64) error
	UpdateData(ctx context.Context, participantID int64, patch map[string]string, userID int64) (*model.ParticipantData, []schema.FieldError, error)
	RemoveParticipant(ctx context.Context, participantID int64, userID int64) error
	ListByEvent(ctx context.Context, eventID int64, userID int64) ([]*model.ParticipantData, error)
	ListByForm(ctx context.Context, formID int64, userID int64) ([]*model.ParticipantData, error)
}

// ParticipantService handles business logic for participant data
type ParticipantService struct {
	participantStore ParticipantStore
	formStore        FormStore
	guard            *guard
	spreadsheet      Spreadsheet
	imageCodec       ImageCodec
	eventBus         *util.EventBus
}

var _ IParticipantService = &ParticipantService{}

func NewParticipantService(participantStore ParticipantStore, formStore FormStore, eventStore EventStore, staffStore StaffStore, cacheService *util.CacheService, auditService audit.Service, spreadsheet Spreadsheet, imageCodec ImageCodec, eventBus *util.EventBus) *ParticipantService {
	return &ParticipantService{
		participantStore: participantStore,
		formStore:        formStore,
		guard:            newGuard(eventStore, formStore, staffStore, cacheService, auditService),
		spreadsheet:      spreadsheet,
		imageCodec:       imageCodec,
		eventBus:         eventBus,
	}
}

// AddParticipants validates every record against the form and stores the
// ones without errors. Errors carry the 1-based position of their record.
func (s *ParticipantService) AddParticipants(ctx context.Context, formID int64, records []map[string]string, userID int64) ([]*model.ParticipantData, []schema.FieldError, error) {
	form, err := s.manageForm(ctx, formID, userID, "add_participants")
	if err != nil {
		return nil, nil, err
	}
	return s.insert(ctx, form, records, nil, userID, "add_participants")
}

// ImportSpreadsheet reads row 1 of the workbook as field names and every
// following non-blank row as one record. Errors carry the worksheet row.
func (s *ParticipantService) ImportSpreadsheet(ctx context.Context, formID int64, data []byte, userID int64) ([]*model.ParticipantData, []schema.FieldError, error) {
	form, err := s.manageForm(ctx, formID, userID, "import_participants")
	if err != nil {
		return nil, nil, err
	}

	header, rows, err := s.spreadsheet.ReadSheet(data)
	if err != nil {
		logger.Warn("Rejected participant workbook", zap.Error(err), zap.Int64("formID", formID))
		return nil, nil, err
	}
	records, lines := sheetRecords(header, rows)
	logger.Info("Participant workbook parsed",
		zap.Int64("formID", formID),
		zap.Strings("header", header),
		zap.Int("records", len(records)))

	return s.insert(ctx, form, records, lines, userID, "import_participants")
}

// sheetRecords keys each non-blank row by the header and returns the
// worksheet row number of every record. Columns without a header are dropped.
func sheetRecords(header []string, rows [][]string) ([]map[string]string, []int) {
	var (
		records []map[string]string
		lines   []int
	)
	for i, row := range rows {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		record := make(map[string]string, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			value := ""
			if col < len(row) {
				value = strings.TrimSpace(row[col])
			}
			record[name] = value
		}
		records = append(records, record)
		// Row 1 is the header.
		lines = append(lines, i+2)
	}
	return records, lines
}

// insert validates and stores records. When lines is set, error rows are
// renumbered to lines[row-1].
func (s *ParticipantService) insert(ctx context.Context, form *model.Form, records []map[string]string, lines []int, userID int64, op string) ([]*model.ParticipantData, []schema.FieldError, error) {
	accepted, fieldErrs := schema.ValidateBatch(form.Fields, records)
	if lines != nil {
		for i := range fieldErrs {
			fieldErrs[i].Row = lines[fieldErrs[i].Row-1]
		}
	}

	created, err := s.participantStore.InsertParticipants(ctx, form, accepted)
	if err != nil {
		logger.Error("Error storing participants", zap.Error(err), zap.Int64("formID", form.ID))
		return nil, nil, err
	}

	rejected := rejectedRows(fieldErrs)
	if len(created) > 0 {
		s.guard.record(ctx, userID, op, entityParticipant, form.ID, map[string]any{
			"accepted": len(created),
			"rejected": rejected,
		})
		s.eventBus.Publish(ctx, util.ParticipantsAdded, len(created))
	}
	if rejected > 0 {
		s.eventBus.Publish(ctx, util.ParticipantsRejected, rejected)
	}

	logger.Info("Participants submitted",
		zap.Int64("formID", form.ID),
		zap.Int("records", len(records)),
		zap.Int("accepted", len(created)),
		zap.Int("rejected", rejected))
	return created, fieldErrs, nil
}

func rejectedRows(errs []schema.FieldError) int {
	rows := make(map[int]struct{})
	for _, e := range errs {
		rows[e.Row] = struct{}{}
	}
	return len(rows)
}

// AttachQrCode stores the uploaded image as a base64 PNG thumbnail.
func (s *ParticipantService) AttachQrCode(ctx context.Context, participantID int64, image []byte, userID int64) error {
	if _, err := s.manageParticipant(ctx, participantID, userID, "attach_qr_code"); err != nil {
		return err
	}

	encoded, size, err := s.imageCodec.Encode(image)
	if err != nil {
		return err
	}

	found, err := s.participantStore.SetQrCode(ctx, participantID, base64.StdEncoding.EncodeToString(encoded))
	if err != nil {
		logger.Error("Error storing QR code", zap.Error(err), zap.Int64("participantID", participantID))
		return err
	}
	if !found {
		return ed_errors.ErrParticipantNotFound
	}

	s.guard.record(ctx, userID, "attach_qr_code", entityParticipant, participantID, map[string]any{"bytes": size})
	s.eventBus.Publish(ctx, util.ParticipantUpdated, participantID)

	logger.Info("QR code attached", zap.Int64("participantID", participantID), zap.Int("bytes", size))
	return nil
}

// SetAttendance fails with ErrParticipantNotFound unless the participant
// belongs to formID.
func (s *ParticipantService) SetAttendance(ctx context.Context, formID, participantID int64, attended bool, userID int64) error {
	if _, err := s.manageForm(ctx, formID, userID, "set_attendance"); err != nil {
		return err
	}

	found, err := s.participantStore.SetAttendance(ctx, formID, participantID, attended)
	if err != nil {
		logger.Error("Error setting attendance", zap.Error(err), zap.Int64("participantID", participantID))
		return err
	}
	if !found {
		return ed_errors.ErrParticipantNotFound
	}

	s.guard.record(ctx, userID, "set_attendance", entityParticipant, participantID, map[string]any{"attended": attended})
	if attended {
		s.eventBus.Publish(ctx, util.ParticipantCheckedIn, participantID)
	} else {
		s.eventBus.Publish(ctx, util.ParticipantUpdated, participantID)
	}
	return nil
}

// UpdateData merges patch over the participant's data. The merged record
// must pass validation against the current form; otherwise nothing is
// written and the field errors are returned.
func (s *ParticipantService) UpdateData(ctx context.Context, participantID int64, patch map[string]string, userID int64) (*model.ParticipantData, []schema.FieldError, error) {
	if len(patch) == 0 {
		return nil, nil, ed_errors.ErrInvalidParticipantPatch
	}
	if _, err := s.manageParticipant(ctx, participantID, userID, "update_participant"); err != nil {
		return nil, nil, err
	}

	updated, fieldErrs, err := s.participantStore.UpdateData(ctx, participantID, patch)
	if err != nil {
		logger.Error("Error updating participant data", zap.Error(err), zap.Int64("participantID", participantID))
		return nil, nil, err
	}
	if len(fieldErrs) > 0 {
		logger.Info("Participant data edit rejected",
			zap.Int64("participantID", participantID),
			zap.Int("fieldErrors", len(fieldErrs)))
		return nil, fieldErrs, nil
	}

	changed := make([]string, 0, len(patch))
	for key := range patch {
		changed = append(changed, key)
	}
	s.guard.record(ctx, userID, "update_participant", entityParticipant, participantID, map[string]any{"fields": changed})
	s.eventBus.Publish(ctx, util.ParticipantUpdated, participantID)
	return updated, nil, nil
}

// RemoveParticipant succeeds when the participant is already gone.
func (s *ParticipantService) RemoveParticipant(ctx context.Context, participantID int64, userID int64) error {
	_, err := s.manageParticipant(ctx, participantID, userID, "remove_participant")
	if ed_errors.Is(err, ed_errors.ErrParticipantNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.participantStore.RemoveParticipant(ctx, participantID); err != nil {
		logger.Error("Error removing participant", zap.Error(err), zap.Int64("participantID", participantID))
		return err
	}

	s.guard.record(ctx, userID, "remove_participant", entityParticipant, participantID, nil)
	s.eventBus.Publish(ctx, util.ParticipantRemoved, participantID)
	logger.Info("Participant removed", zap.Int64("participantID", participantID), zap.Int64("userID", userID))
	return nil
}

func (s *ParticipantService) ListByEvent(ctx context.Context, eventID int64, userID int64) ([]*model.ParticipantData, error) {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionView, event, "list_participants", entityEvent, eventID); err != nil {
		return nil, err
	}
	return s.participantStore.ListByEvent(ctx, eventID)
}

func (s *ParticipantService) ListByForm(ctx context.Context, formID int64, userID int64) ([]*model.ParticipantData, error) {
	form, err := s.formStore.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	event, err := s.guard.event(ctx, form.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionView, event, "list_participants", entityForm, formID); err != nil {
		return nil, err
	}
	return s.participantStore.ListByForm(ctx, formID)
}

// manageForm loads the form uncached, so records are validated against the
// stored schema, and requires the caller to organize its event.
func (s *ParticipantService) manageForm(ctx context.Context, formID, userID int64, op string) (*model.Form, error) {
	form, err := s.formStore.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	event, err := s.guard.event(ctx, form.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, op, entityForm, formID); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *ParticipantService) manageParticipant(ctx context.Context, participantID, userID int64, op string) (*model.ParticipantData, error) {
	participant, err := s.participantStore.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	event, err := s.guard.eventForForm(ctx, participant.FormID)
	if err != nil {
		if ed_errors.Is(err, ed_errors.ErrEventNotFound) {
			return nil, ed_errors.ErrParticipantNotFound
		}
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, op, entityParticipant, participantID); err != nil {
		return nil, err
	}
	return participant, nil
}
