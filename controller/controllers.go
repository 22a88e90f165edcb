// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/eventdesk/service"

type Controllers struct {
	Event       *EventController
	Form        *FormController
	Participant *ParticipantController
	Invitation  *InvitationController
	Staff       *StaffController
	User        *UserController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Event:       NewEventController(services.Event),
		Form:        NewFormController(services.Form),
		Participant: NewParticipantController(services.Participant),
		Invitation:  NewInvitationController(services.Invitation),
		Staff:       NewStaffController(services.Staff),
		User:        NewUserController(services.User),
	}
}
