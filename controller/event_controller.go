// controller/event_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

type EventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// RegisterRoutes registers the API routes
func (ec *EventController) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.POST("", ec.CreateEvent)
		events.GET("/:id", ec.GetEvent)
		events.PUT("/:id", ec.UpdateEvent)
		events.PATCH("/:id/status", ec.UpdateEventStatus)
		events.DELETE("/:id", ec.DeleteEvent)
		events.GET("/:id/audit", ec.GetEventAudit)
	}
	me := r.Group("/me")
	{
		me.GET("/events", ec.ListMyEvents)
		me.GET("/staff-events", ec.ListMyStaffEvents)
	}
}

// CreateEvent endpoint
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid event data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	event, err := ec.eventService.CreateEvent(c, req.Event(), userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to create event", err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent endpoint
func (ec *EventController) GetEvent(c *gin.Context) {
	eventID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}

	event, err := ec.eventService.GetEvent(c, eventID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to retrieve event", err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent endpoint
func (ec *EventController) UpdateEvent(c *gin.Context) {
	eventID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	var patch model.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid event data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	event, err := ec.eventService.UpdateEvent(c, eventID, patch, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update event", err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEventStatus endpoint
func (ec *EventController) UpdateEventStatus(c *gin.Context) {
	eventID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	event, err := ec.eventService.UpdateEventStatus(c, eventID, req.Status, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update event status", err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent endpoint
func (ec *EventController) DeleteEvent(c *gin.Context) {
	eventID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := ec.eventService.DeleteEvent(c, eventID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to delete event", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMyEvents endpoint
func (ec *EventController) ListMyEvents(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	events, err := ec.eventService.ListUserEvents(c, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list events", err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// ListMyStaffEvents endpoint
func (ec *EventController) ListMyStaffEvents(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	events, err := ec.eventService.ListStaffEvents(c, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list staff events", err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// defaultAuditWindow is the range read when the caller gives no ?from=.
const defaultAuditWindow = 30 * 24 * time.Hour

// GetEventAudit endpoint. ?from= and ?to= are RFC 3339 timestamps; to
// defaults to now and from to thirty days before to.
func (ec *EventController) GetEventAudit(c *gin.Context) {
	eventID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	to := time.Now().UTC()
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
			return
		}
	}
	from := to.Add(-defaultAuditWindow)
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
			return
		}
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	logs, err := ec.eventService.GetEventAudit(c, eventID, from, to, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to read event audit", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
