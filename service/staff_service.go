// service/staff_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/access"
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// IStaffService defines the interface for staff assignment operations
type IStaffService interface {
	FindCandidates(ctx context.Context, emailPart string, limit int) ([]model.StaffCandidate, error)
	AssignStaff(ctx context.Context, eventID, staffUserID int64, userID int64) error
	RemoveStaff(ctx context.Context, eventID, staffUserID int64, userID int64) error
	LeaveEvent(ctx context.Context, eventID int64, userID int64) error
	ListStaff(ctx context.Context, eventID int64, userID int64) ([]model.StaffCandidate, error)
	ToggleCanBeStaff(ctx context.Context, userID int64) (bool, error)
}

// StaffService handles business logic for staff assignments
type StaffService struct {
	staffStore     StaffStore
	guard          *guard
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IStaffService = &StaffService{}

func NewStaffService(staffStore StaffStore, eventStore EventStore, formStore FormStore, cacheService *util.CacheService, auditService audit.Service, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *StaffService {
	return &StaffService{
		staffStore:     staffStore,
		guard:          newGuard(eventStore, formStore, staffStore, cacheService, auditService),
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// FindCandidates lists users open to staff assignments whose email contains
// emailPart, ignoring case.
func (s *StaffService) FindCandidates(ctx context.Context, emailPart string, limit int) ([]model.StaffCandidate, error) {
	if err := s.validationUtil.ValidateStaffSearch(emailPart); err != nil {
		return nil, err
	}
	users, err := s.staffStore.FindCandidates(ctx, strings.TrimSpace(emailPart), limit)
	if err != nil {
		logger.Error("Error searching staff candidates", zap.Error(err))
		return nil, err
	}
	return candidates(users), nil
}

func (s *StaffService) AssignStaff(ctx context.Context, eventID, staffUserID int64, userID int64) error {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "assign_staff", entityStaff, eventID); err != nil {
		return err
	}
	if staffUserID == event.CreatedBy {
		return fmt.Errorf("%w: the organizer cannot be staff of their own event", ed_errors.ErrInvalidInput)
	}

	if err := s.staffStore.AssignStaff(ctx, eventID, staffUserID); err != nil {
		if !ed_errors.Is(err, ed_errors.ErrUserCannotBeStaff) {
			logger.Error("Error assigning staff", zap.Error(err), zap.Int64("eventID", eventID))
		}
		return err
	}

	s.guard.record(ctx, userID, "assign_staff", entityStaff, eventID, map[string]any{"staffUserId": staffUserID})
	s.eventBus.Publish(ctx, util.StaffAssigned, staffUserID)
	logger.Info("Staff assigned",
		zap.Int64("eventID", eventID),
		zap.Int64("staffUserID", staffUserID),
		zap.Int64("userID", userID))
	return nil
}

// RemoveStaff succeeds when the user is not staff of the event.
func (s *StaffService) RemoveStaff(ctx context.Context, eventID, staffUserID int64, userID int64) error {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionManage, event, "remove_staff", entityStaff, eventID); err != nil {
		return err
	}
	return s.removeStaff(ctx, eventID, staffUserID, userID, "remove_staff")
}

// LeaveEvent removes the caller's own staff assignment.
func (s *StaffService) LeaveEvent(ctx context.Context, eventID int64, userID int64) error {
	if _, err := s.guard.event(ctx, eventID); err != nil {
		return err
	}
	return s.removeStaff(ctx, eventID, userID, userID, "leave_event")
}

func (s *StaffService) removeStaff(ctx context.Context, eventID, staffUserID, userID int64, op string) error {
	if err := s.staffStore.RemoveStaff(ctx, eventID, staffUserID); err != nil {
		logger.Error("Error removing staff", zap.Error(err), zap.Int64("eventID", eventID))
		return err
	}
	s.guard.record(ctx, userID, op, entityStaff, eventID, map[string]any{"staffUserId": staffUserID})
	s.eventBus.Publish(ctx, util.StaffRemoved, staffUserID)
	logger.Info("Staff removed",
		zap.String("op", op),
		zap.Int64("eventID", eventID),
		zap.Int64("staffUserID", staffUserID))
	return nil
}

func (s *StaffService) ListStaff(ctx context.Context, eventID int64, userID int64) ([]model.StaffCandidate, error) {
	event, err := s.guard.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.authorize(ctx, userID, access.ActionView, event, "list_staff", entityStaff, eventID); err != nil {
		return nil, err
	}
	users, err := s.staffStore.ListStaff(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return candidates(users), nil
}

// ToggleCanBeStaff flips whether the caller accepts new staff assignments.
func (s *StaffService) ToggleCanBeStaff(ctx context.Context, userID int64) (bool, error) {
	canBeStaff, err := s.staffStore.ToggleCanBeStaff(ctx, userID)
	if err != nil {
		return false, err
	}
	s.guard.record(ctx, userID, "toggle_can_be_staff", entityUser, userID, map[string]any{"canBeStaff": canBeStaff})
	return canBeStaff, nil
}

func candidates(users []*model.User) []model.StaffCandidate {
	out := make([]model.StaffCandidate, 0, len(users))
	for _, u := range users {
		out = append(out, u.Candidate())
	}
	return out
}
