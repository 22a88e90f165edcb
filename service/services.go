// service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/eventdesk/audit"
	"github.com/dev-mohitbeniwal/eventdesk/config"
	"github.com/dev-mohitbeniwal/eventdesk/dao"
	"github.com/dev-mohitbeniwal/eventdesk/db"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

type Services struct {
	Event       IEventService
	Form        IFormService
	Participant IParticipantService
	Invitation  IInvitationService
	Staff       IStaffService
	User        IUserService
}

// Collaborators groups the infrastructure the services are built on.
type Collaborators struct {
	Audit        audit.Service
	Cache        *util.CacheService
	Validation   *util.ValidationUtil
	Mailer       Mailer
	Spreadsheet  Spreadsheet
	ImageCodec   ImageCodec
	Tokens       TokenIssuer
	Hasher       PasswordHasher
	EventBus     *util.EventBus
	AuthSettings config.AuthConfiguration
}

func InitializeServices(graph db.Graph, c Collaborators) (*Services, error) {
	eventDAO := dao.NewEventDAO(graph)
	formDAO := dao.NewFormDAO(graph)
	participantDAO := dao.NewParticipantDAO(graph)
	staffDAO := dao.NewStaffDAO(graph)
	userDAO := dao.NewUserDAO(graph)

	services := &Services{
		Event:       NewEventService(eventDAO, formDAO, staffDAO, c.Cache, c.Audit, c.Validation, c.EventBus),
		Form:        NewFormService(formDAO, eventDAO, staffDAO, c.Cache, c.Audit, c.Spreadsheet, c.EventBus),
		Participant: NewParticipantService(participantDAO, formDAO, eventDAO, staffDAO, c.Cache, c.Audit, c.Spreadsheet, c.ImageCodec, c.EventBus),
		Invitation:  NewInvitationService(participantDAO, formDAO, eventDAO, staffDAO, c.Cache, c.Audit, c.Mailer, c.EventBus),
		Staff:       NewStaffService(staffDAO, eventDAO, formDAO, c.Cache, c.Audit, c.Validation, c.EventBus),
		User:        NewUserService(userDAO, c.Hasher, c.Tokens, c.Mailer, c.Audit, c.Validation, c.EventBus, c.AuthSettings),
	}

	return services, nil
}
