package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/eventdesk/audit"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	mocks "github.com/dev-mohitbeniwal/eventdesk/test/mock"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

const (
	organizerID int64 = 1
	staffID     int64 = 2
	strangerID  int64 = 3

	testEventID int64 = 10
	testFormID  int64 = 20
)

// fixture holds the mocked stores of one test. Every expectation set on them
// must be met by the end of the test.
type fixture struct {
	events       *mocks.MockEventStore
	forms        *mocks.MockFormStore
	participants *mocks.MockParticipantStore
	staff        *mocks.MockStaffStore
	users        *mocks.MockUserStore
	audit        *mocks.MockAuditService
	mailer       *mocks.MockMailer
	spreadsheet  *mocks.MockSpreadsheet
	codec        *mocks.MockImageCodec
	tokens       *mocks.MockTokenIssuer
	validation   *util.ValidationUtil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		events:       &mocks.MockEventStore{},
		forms:        &mocks.MockFormStore{},
		participants: &mocks.MockParticipantStore{},
		staff:        &mocks.MockStaffStore{},
		users:        &mocks.MockUserStore{},
		audit:        &mocks.MockAuditService{},
		mailer:       &mocks.MockMailer{},
		spreadsheet:  &mocks.MockSpreadsheet{},
		codec:        &mocks.MockImageCodec{},
		tokens:       &mocks.MockTokenIssuer{},
		validation:   util.NewValidationUtil(),
	}
	f.audit.On("LogAccess", mock.Anything, mock.Anything).Return(nil).Maybe()
	t.Cleanup(func() {
		f.events.AssertExpectations(t)
		f.forms.AssertExpectations(t)
		f.participants.AssertExpectations(t)
		f.staff.AssertExpectations(t)
		f.users.AssertExpectations(t)
		f.mailer.AssertExpectations(t)
		f.spreadsheet.AssertExpectations(t)
		f.codec.AssertExpectations(t)
		f.tokens.AssertExpectations(t)
	})
	return f
}

func (f *fixture) eventService() *EventService {
	return NewEventService(f.events, f.forms, f.staff, nil, f.audit, f.validation, nil)
}

func (f *fixture) formService() *FormService {
	return NewFormService(f.forms, f.events, f.staff, nil, f.audit, f.spreadsheet, nil)
}

func (f *fixture) participantService() *ParticipantService {
	return NewParticipantService(f.participants, f.forms, f.events, f.staff, nil, f.audit, f.spreadsheet, f.codec, nil)
}

func (f *fixture) invitationService() *InvitationService {
	return NewInvitationService(f.participants, f.forms, f.events, f.staff, nil, f.audit, f.mailer, nil)
}

func (f *fixture) staffService() *StaffService {
	return NewStaffService(f.staff, f.events, f.forms, nil, f.audit, f.validation, nil)
}

// deniedAudits returns the audit entries written for refused requests.
func (f *fixture) deniedAudits() []audit.AuditLog {
	var denied []audit.AuditLog
	for _, call := range f.audit.Calls {
		if entry, ok := call.Arguments.Get(1).(audit.AuditLog); ok && !entry.AccessGranted {
			denied = append(denied, entry)
		}
	}
	return denied
}

func testEvent() *model.Event {
	return &model.Event{
		ID:                   testEventID,
		Name:                 "Go Meetup",
		Description:          "Talks and pizza",
		CreatedBy:            organizerID,
		DateTime:             time.Date(2026, 11, 5, 18, 30, 0, 0, time.UTC),
		Location:             "Main Hall",
		Status:               model.EventUpcoming,
		InvitationTemplateID: testFormID,
	}
}

func testForm() *model.Form {
	return &model.Form{
		ID:      testFormID,
		EventID: testEventID,
		Fields: []model.FormField{
			{Name: model.EmailFieldName, Type: model.FieldEmail},
			{Name: "Name", Type: model.FieldText},
			{Name: "Age", Type: model.FieldNumber},
		},
	}
}

var ctx = context.Background()
