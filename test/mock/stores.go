// test/mock/stores.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/schema"
)

// MockEventStore is a mock implementation of service.EventStore
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) CreateEvent(ctx context.Context, event model.Event, userID int64) (*model.Event, error) {
	args := m.Called(ctx, event, userID)
	return eventArg(args, 0), args.Error(1)
}

func (m *MockEventStore) GetEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	return eventArg(args, 0), args.Error(1)
}

func (m *MockEventStore) GetEventByForm(ctx context.Context, formID int64) (*model.Event, error) {
	args := m.Called(ctx, formID)
	return eventArg(args, 0), args.Error(1)
}

func (m *MockEventStore) ListEventsByUser(ctx context.Context, userID int64) ([]*model.Event, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]*model.Event)
	return events, args.Error(1)
}

func (m *MockEventStore) ListStaffEvents(ctx context.Context, userID int64) ([]*model.Event, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]*model.Event)
	return events, args.Error(1)
}

func (m *MockEventStore) UpdateEvent(ctx context.Context, eventID int64, patch model.EventPatch) (*model.Event, error) {
	args := m.Called(ctx, eventID, patch)
	return eventArg(args, 0), args.Error(1)
}

func (m *MockEventStore) UpdateStatus(ctx context.Context, eventID int64, status model.EventStatus) error {
	args := m.Called(ctx, eventID, status)
	return args.Error(0)
}

func (m *MockEventStore) DeleteEvent(ctx context.Context, eventID int64) (*model.EventDeletion, error) {
	args := m.Called(ctx, eventID)
	deletion, _ := args.Get(0).(*model.EventDeletion)
	return deletion, args.Error(1)
}

func eventArg(args mock.Arguments, i int) *model.Event {
	event, _ := args.Get(i).(*model.Event)
	return event
}

// MockFormStore is a mock implementation of service.FormStore
type MockFormStore struct {
	mock.Mock
}

func (m *MockFormStore) CreateForm(ctx context.Context, eventID int64) (*model.Form, error) {
	args := m.Called(ctx, eventID)
	return formArg(args, 0), args.Error(1)
}

func (m *MockFormStore) UpdateForm(ctx context.Context, formID int64, fields []model.FormField) (*model.Form, error) {
	args := m.Called(ctx, formID, fields)
	return formArg(args, 0), args.Error(1)
}

func (m *MockFormStore) DeleteForm(ctx context.Context, formID, eventID int64) error {
	args := m.Called(ctx, formID, eventID)
	return args.Error(0)
}

func (m *MockFormStore) FormHasParticipants(ctx context.Context, formID int64) (bool, error) {
	args := m.Called(ctx, formID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFormStore) GetForm(ctx context.Context, formID int64) (*model.Form, error) {
	args := m.Called(ctx, formID)
	return formArg(args, 0), args.Error(1)
}

func (m *MockFormStore) GetFormByEvent(ctx context.Context, eventID int64) (*model.Form, error) {
	args := m.Called(ctx, eventID)
	return formArg(args, 0), args.Error(1)
}

func formArg(args mock.Arguments, i int) *model.Form {
	form, _ := args.Get(i).(*model.Form)
	return form
}

// MockParticipantStore is a mock implementation of service.ParticipantStore
type MockParticipantStore struct {
	mock.Mock
}

func (m *MockParticipantStore) InsertParticipants(ctx context.Context, form *model.Form, records []map[string]string) ([]*model.ParticipantData, error) {
	args := m.Called(ctx, form, records)
	return participantsArg(args, 0), args.Error(1)
}

func (m *MockParticipantStore) GetParticipant(ctx context.Context, participantID int64) (*model.ParticipantData, error) {
	args := m.Called(ctx, participantID)
	participant, _ := args.Get(0).(*model.ParticipantData)
	return participant, args.Error(1)
}

func (m *MockParticipantStore) ListByForm(ctx context.Context, formID int64) ([]*model.ParticipantData, error) {
	args := m.Called(ctx, formID)
	return participantsArg(args, 0), args.Error(1)
}

func (m *MockParticipantStore) ListByEvent(ctx context.Context, eventID int64) ([]*model.ParticipantData, error) {
	args := m.Called(ctx, eventID)
	return participantsArg(args, 0), args.Error(1)
}

func (m *MockParticipantStore) SetQrCode(ctx context.Context, participantID int64, qrCode string) (bool, error) {
	args := m.Called(ctx, participantID, qrCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipantStore) SetAttendance(ctx context.Context, formID, participantID int64, attended bool) (bool, error) {
	args := m.Called(ctx, formID, participantID, attended)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipantStore) MarkInvited(ctx context.Context, participantID int64) error {
	args := m.Called(ctx, participantID)
	return args.Error(0)
}

func (m *MockParticipantStore) UpdateData(ctx context.Context, participantID int64, patch map[string]string) (*model.ParticipantData, []schema.FieldError, error) {
	args := m.Called(ctx, participantID, patch)
	participant, _ := args.Get(0).(*model.ParticipantData)
	fieldErrs, _ := args.Get(1).([]schema.FieldError)
	return participant, fieldErrs, args.Error(2)
}

func (m *MockParticipantStore) RemoveParticipant(ctx context.Context, participantID int64) error {
	args := m.Called(ctx, participantID)
	return args.Error(0)
}

func participantsArg(args mock.Arguments, i int) []*model.ParticipantData {
	participants, _ := args.Get(i).([]*model.ParticipantData)
	return participants
}

// MockStaffStore is a mock implementation of service.StaffStore
type MockStaffStore struct {
	mock.Mock
}

func (m *MockStaffStore) AssignStaff(ctx context.Context, eventID, userID int64) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockStaffStore) RemoveStaff(ctx context.Context, eventID, userID int64) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockStaffStore) IsStaff(ctx context.Context, eventID, userID int64) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStaffStore) ListStaff(ctx context.Context, eventID int64) ([]*model.User, error) {
	args := m.Called(ctx, eventID)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *MockStaffStore) FindCandidates(ctx context.Context, emailPart string, limit int) ([]*model.User, error) {
	args := m.Called(ctx, emailPart, limit)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *MockStaffStore) ToggleCanBeStaff(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockUserStore is a mock implementation of service.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) GetUserByConfirmationCode(ctx context.Context, code string) (*model.User, error) {
	args := m.Called(ctx, code)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) GetUserByResetToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) ConfirmEmail(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserStore) SetPasswordReset(ctx context.Context, userID int64, token string, requestedAt time.Time, attempts int) error {
	args := m.Called(ctx, userID, token, requestedAt, attempts)
	return args.Error(0)
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserStore) UpdateName(ctx context.Context, userID int64, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func userArg(args mock.Arguments, i int) *model.User {
	user, _ := args.Get(i).(*model.User)
	return user
}
