// controller/form_controller.go
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type FormController struct {
	formService service.IFormService
}

func NewFormController(formService service.IFormService) *FormController {
	return &FormController{
		formService: formService,
	}
}

// RegisterRoutes registers the API routes
func (fc *FormController) RegisterRoutes(r *gin.RouterGroup) {
	forms := r.Group("/forms")
	{
		forms.POST("", fc.CreateForm)
		forms.GET("/:formId", fc.GetForm)
		forms.PUT("/:formId", fc.UpdateForm)
		forms.DELETE("/:formId", fc.DeleteForm)
		forms.GET("/:formId/template", fc.DownloadTemplate)
	}
	r.GET("/events/:id/form", fc.GetEventForm)
}

// CreateForm endpoint
func (fc *FormController) CreateForm(c *gin.Context) {
	var req model.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	form, err := fc.formService.CreateForm(c, req.EventID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to create form", err)
		return
	}

	c.JSON(http.StatusCreated, form)
}

// GetForm endpoint
func (fc *FormController) GetForm(c *gin.Context) {
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

	form, err := fc.formService.GetForm(c, formID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to retrieve form", err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// GetEventForm endpoint
func (fc *FormController) GetEventForm(c *gin.Context) {
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

	form, err := fc.formService.GetFormByEvent(c, eventID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to retrieve form", err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm endpoint
func (fc *FormController) UpdateForm(c *gin.Context) {
	formID, err := helper_util.GetIDParam(c, "formId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), ed_errors.ErrInvalidInput)
		return
	}
	var req model.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	form, err := fc.formService.UpdateForm(c, formID, req.Fields, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to update form", err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// DeleteForm endpoint
func (fc *FormController) DeleteForm(c *gin.Context) {
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

	if err := fc.formService.DeleteForm(c, formID, userID); err != nil {
		util.RespondWithDomainError(c, "Failed to delete form", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadTemplate returns an empty participant workbook for the form.
func (fc *FormController) DownloadTemplate(c *gin.Context) {
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

	data, err := fc.formService.FormTemplate(c, formID, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to build form template", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="form-%d.xlsx"`, formID))
	c.Data(http.StatusOK, xlsxContentType, data)
}
