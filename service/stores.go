// service/stores.go
package service

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/eventdesk/dao"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/schema"
)

// The store interfaces below are satisfied by the DAOs in package dao.

type EventStore interface {
	CreateEvent(ctx context.Context, event model.Event, userID int64) (*model.Event, error)
	GetEvent(ctx context.Context, eventID int64) (*model.Event, error)
	GetEventByForm(ctx context.Context, formID int64) (*model.Event, error)
	ListEventsByUser(ctx context.Context, userID int64) ([]*model.Event, error)
	ListStaffEvents(ctx context.Context, userID int64) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, patch model.EventPatch) (*model.Event, error)
	UpdateStatus(ctx context.Context, eventID int64, status model.EventStatus) error
	DeleteEvent(ctx context.Context, eventID int64) (*model.EventDeletion, error)
}

type FormStore interface {
	CreateForm(ctx context.Context, eventID int64) (*model.Form, error)
	UpdateForm(ctx context.Context, formID int64, fields []model.FormField) (*model.Form, error)
	DeleteForm(ctx context.Context, formID, eventID int64) error
	FormHasParticipants(ctx context.Context, formID int64) (bool, error)
	GetForm(ctx context.Context, formID int64) (*model.Form, error)
	GetFormByEvent(ctx context.Context, eventID int64) (*model.Form, error)
}

type ParticipantStore interface {
	InsertParticipants(ctx context.Context, form *model.Form, records []map[string]string) ([]*model.ParticipantData, error)
	GetParticipant(ctx context.Context, participantID int64) (*model.ParticipantData, error)
	ListByForm(ctx context.Context, formID int64) ([]*model.ParticipantData, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*model.ParticipantData, error)
	SetQrCode(ctx context.Context, participantID int64, qrCode string) (bool, error)
	SetAttendance(ctx context.Context, formID, participantID int64, attended bool) (bool, error)
	MarkInvited(ctx context.Context, participantID int64) error
	UpdateData(ctx context.Context, participantID int64, patch map[string]string) (*model.ParticipantData, []schema.FieldError, error)
	RemoveParticipant(ctx context.Context, participantID int64) error
}

type StaffStore interface {
	AssignStaff(ctx context.Context, eventID, userID int64) error
	RemoveStaff(ctx context.Context, eventID, userID int64) error
	IsStaff(ctx context.Context, eventID, userID int64) (bool, error)
	ListStaff(ctx context.Context, eventID int64) ([]*model.User, error)
	FindCandidates(ctx context.Context, emailPart string, limit int) ([]*model.User, error)
	ToggleCanBeStaff(ctx context.Context, userID int64) (bool, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByConfirmationCode(ctx context.Context, code string) (*model.User, error)
	GetUserByResetToken(ctx context.Context, token string) (*model.User, error)
	ConfirmEmail(ctx context.Context, userID int64) error
	SetPasswordReset(ctx context.Context, userID int64, token string, requestedAt time.Time, attempts int) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateName(ctx context.Context, userID int64, name string) error
}

var (
	_ EventStore       = &dao.EventDAO{}
	_ FormStore        = &dao.FormDAO{}
	_ ParticipantStore = &dao.ParticipantDAO{}
	_ StaffStore       = &dao.StaffDAO{}
	_ UserStore        = &dao.UserDAO{}
)

// Mailer sends one message; from overrides the default sender when set.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string, isHTML bool, from string) error
}

// Spreadsheet reads participant imports and writes form templates.
type Spreadsheet interface {
	ReadSheet(data []byte) ([]string, [][]string, error)
	FormTemplate(fieldNames []string) ([]byte, error)
}

// ImageCodec returns a resized PNG and its length.
type ImageCodec interface {
	Encode(data []byte) ([]byte, int, error)
}

type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
