// controller/staff_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

const (
	defaultCandidateLimit = 10
	maxCandidateLimit     = 50
)

type StaffController struct {
	staffService service.IStaffService
}

func NewStaffController(staffService service.IStaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// RegisterRoutes registers the API routes
func (sc *StaffController) RegisterRoutes(r *gin.RouterGroup) {
	staff := r.Group("/staff")
	{
		staff.GET("/candidates", sc.FindCandidates)
		staff.POST("/assign", sc.AssignStaff)
		staff.POST("/remove", sc.RemoveStaff)
		staff.POST("/leave", sc.LeaveEvent)
		staff.POST("/availability", sc.ToggleAvailability)
	}
	r.GET("/events/:id/staff", sc.ListStaff)
}

// FindCandidates endpoint: ?email=<part>&limit=<n>
func (sc *StaffController) FindCandidates(c *gin.Context) {
	limit, err := helper_util.GetLimitParam(c, defaultCandidateLimit, maxCandidateLimit)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}

	candidates, err := sc.staffService.FindCandidates(c, c.Query("email"), limit)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to search staff candidates", err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// AssignStaff endpoint
func (sc *StaffController) AssignStaff(c *gin.Context) {
	var req model.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid staff request", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := sc.staffService.AssignStaff(c, req.EventID, req.UserID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to assign staff", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveStaff endpoint
func (sc *StaffController) RemoveStaff(c *gin.Context) {
	var req model.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid staff request", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := sc.staffService.RemoveStaff(c, req.EventID, req.UserID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to remove staff", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LeaveEvent endpoint
func (sc *StaffController) LeaveEvent(c *gin.Context) {
	var req model.LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid leave request", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := sc.staffService.LeaveEvent(c, req.EventID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to leave event", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleAvailability endpoint
func (sc *StaffController) ToggleAvailability(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	canBeStaff, err := sc.staffService.ToggleCanBeStaff(c, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update staff availability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"canBeStaff": canBeStaff})
}

// ListStaff endpoint
func (sc *StaffController) ListStaff(c *gin.Context) {
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

	staff, err := sc.staffService.ListStaff(c, eventID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list staff", err)
		return
	}

	c.JSON(http.StatusOK, staff)
}
