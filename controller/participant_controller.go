// controller/participant_controller.go
package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/schema"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

// maxUploadSize bounds workbook and QR image uploads.
const maxUploadSize = 10 << 20

type ParticipantController struct {
	participantService service.IParticipantService
}

// batchResponse carries the stored participants next to the field errors of
// the rejected records.
type batchResponse struct {
	Participants []*model.ParticipantData `json:"participants"`
	Errors       []schema.FieldError      `json:"errors,omitempty"`
}

type fieldErrorResponse struct {
	Error  string              `json:"error"`
	Errors []schema.FieldError `json:"errors"`
}

func NewParticipantController(participantService service.IParticipantService) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

// RegisterRoutes registers the API routes
func (pc *ParticipantController) RegisterRoutes(r *gin.RouterGroup) {
	forms := r.Group("/forms/:formId/participants")
	{
		forms.POST("", pc.AddParticipants)
		forms.GET("", pc.ListFormParticipants)
		forms.POST("/upload", pc.ImportSpreadsheet)
		forms.PUT("/:participantId/attendance", pc.SetAttendance)
	}
	participants := r.Group("/participants")
	{
		participants.PATCH("/:id", pc.UpdateParticipant)
		participants.DELETE("/:id", pc.RemoveParticipant)
		participants.POST("/:id/qr", pc.AttachQrCode)
	}
	r.GET("/events/:id/participants", pc.ListEventParticipants)
}

// AddParticipants endpoint
func (pc *ParticipantController) AddParticipants(c *gin.Context) {
	formID, err := helper_util.GetIDParam(c, "formId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	var req model.AddParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid participant data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	created, fieldErrs, err := pc.participantService.AddParticipants(c, formID, req.Records, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to add participants", err)
		return
	}

	respondWithBatch(c, created, fieldErrs)
}

// ImportSpreadsheet endpoint. The workbook is sent as the multipart field
// "file".
func (pc *ParticipantController) ImportSpreadsheet(c *gin.Context) {
	formID, err := helper_util.GetIDParam(c, "formId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	data, err := readUpload(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	created, fieldErrs, err := pc.participantService.ImportSpreadsheet(c, formID, data, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to import participants", err)
		return
	}

	respondWithBatch(c, created, fieldErrs)
}

// respondWithBatch answers 201 when any record was stored and 400 when every
// record was rejected.
func respondWithBatch(c *gin.Context, created []*model.ParticipantData, fieldErrs []schema.FieldError) {
	if len(created) == 0 && len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrorResponse{
			Error:  ed_errors.ErrParticipantData.Error(),
			Errors: fieldErrs,
		})
		return
	}
	if created == nil {
		created = []*model.ParticipantData{}
	}
	c.JSON(http.StatusCreated, batchResponse{Participants: created, Errors: fieldErrs})
}

func readUpload(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing file", ed_errors.ErrInvalidInput)
	}
	if header.Size > maxUploadSize {
		return nil, fmt.Errorf("%w: file larger than %d bytes", ed_errors.ErrInvalidInput, maxUploadSize)
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable file", ed_errors.ErrInvalidInput)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable file", ed_errors.ErrInvalidInput)
	}
	return data, nil
}

// SetAttendance endpoint
func (pc *ParticipantController) SetAttendance(c *gin.Context) {
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
	var req model.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attendance data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := pc.participantService.SetAttendance(c, formID, participantID, *req.Attended, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to set attendance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attended": *req.Attended})
}

// UpdateParticipant endpoint
func (pc *ParticipantController) UpdateParticipant(c *gin.Context) {
	participantID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	var req model.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid participant data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updated, fieldErrs, err := pc.participantService.UpdateData(c, participantID, req.Data, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update participant", err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrorResponse{
			Error:  ed_errors.ErrParticipantData.Error(),
			Errors: fieldErrs,
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RemoveParticipant endpoint
func (pc *ParticipantController) RemoveParticipant(c *gin.Context) {
	participantID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := pc.participantService.RemoveParticipant(c, participantID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to remove participant", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachQrCode endpoint. The image is sent as the multipart field "file".
func (pc *ParticipantController) AttachQrCode(c *gin.Context) {
	participantID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	data, err := readUpload(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := pc.participantService.AttachQrCode(c, participantID, data, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to attach QR code", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFormParticipants endpoint
func (pc *ParticipantController) ListFormParticipants(c *gin.Context) {
	formID, err := helper_util.GetIDParam(c, "formId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	participants, err := pc.participantService.ListByForm(c, formID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list participants", err)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// ListEventParticipants endpoint
func (pc *ParticipantController) ListEventParticipants(c *gin.Context) {
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

	participants, err := pc.participantService.ListByEvent(c, eventID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to list participants", err)
		return
	}

	c.JSON(http.StatusOK, participants)
}
