// controller/invitation_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

type InvitationController struct {
	invitationService service.IInvitationService
}

func NewInvitationController(invitationService service.IInvitationService) *InvitationController {
	return &InvitationController{
		invitationService: invitationService,
	}
}

// RegisterRoutes registers the API routes
func (ic *InvitationController) RegisterRoutes(r *gin.RouterGroup) {
	invitations := r.Group("/invitations")
	{
		invitations.POST("/forms/:formId/participants/:participantId", ic.SendInvitation)
		invitations.POST("/events/:eventId", ic.SendInvitations)
	}
}

// SendInvitation endpoint
func (ic *InvitationController) SendInvitation(c *gin.Context) {
	formID, err := helper_util.GetIDParam(c, "formId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	participantID, err := helper_util.GetIDParam(c, "participantId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := ic.invitationService.SendInvitation(c, participantID, formID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to send invitation", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": 1})
}

// SendInvitations endpoint. A failed run still reports how many invitations
// went out before it stopped.
func (ic *InvitationController) SendInvitations(c *gin.Context) {
	eventID, err := helper_util.GetIDParam(c, "eventId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	sent, err := ic.invitationService.SendInvitations(c, eventID, userID)
	if err != nil {
		code := util.StatusForError(err)
		message := "Failed to send invitations"
		if code < http.StatusInternalServerError {
			message = err.Error()
		}
		logger.Warn("Invitation run stopped",
			zap.Error(err),
			zap.Int64("eventID", eventID),
			zap.Int("sent", sent))
		c.JSON(code, gin.H{"error": message, "sent": sent})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
