// controller/staff_controller_test.go
package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/eventdesk/controller"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	mock_service "github.com/dev-mohitbeniwal/eventdesk/test/service_mock"
)

func TestStaffController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStaffService := mock_service.NewMockIStaffService(ctrl)
	router, api := setupRouter()
	controller.NewStaffController(mockStaffService).RegisterRoutes(api)

	t.Run("FindCandidates_DefaultLimit", func(t *testing.T) {
		mockStaffService.EXPECT().
			FindCandidates(gomock.Any(), "bob", 10).
			Return([]model.StaffCandidate{{ID: 2, Name: "Bob", Email: "bob@example.com"}}, nil)

		w := serve(router, "GET", "/staff/candidates?email=bob", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("FindCandidates_LimitCapped", func(t *testing.T) {
		mockStaffService.EXPECT().
			FindCandidates(gomock.Any(), "bob", 50).
			Return([]model.StaffCandidate{}, nil)

		w := serve(router, "GET", "/staff/candidates?email=bob&limit=500", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("FindCandidates_Failure_BadLimit", func(t *testing.T) {
		w := serve(router, "GET", "/staff/candidates?email=bob&limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AssignStaff_Success", func(t *testing.T) {
		mockStaffService.EXPECT().
			AssignStaff(gomock.Any(), int64(10), int64(2), callerID).
			Return(nil)

		w := serve(router, "POST", "/staff/assign", `{"eventId":10,"userId":2}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("AssignStaff_Failure_Unavailable", func(t *testing.T) {
		mockStaffService.EXPECT().
			AssignStaff(gomock.Any(), int64(10), int64(3), callerID).
			Return(ed_errors.ErrUserCannotBeStaff)

		w := serve(router, "POST", "/staff/assign", `{"eventId":10,"userId":3}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("AssignStaff_Failure_MissingUser", func(t *testing.T) {
		w := serve(router, "POST", "/staff/assign", `{"eventId":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("RemoveStaff_Success", func(t *testing.T) {
		mockStaffService.EXPECT().
			RemoveStaff(gomock.Any(), int64(10), int64(2), callerID).
			Return(nil)

		w := serve(router, "POST", "/staff/remove", `{"eventId":10,"userId":2}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("LeaveEvent_Success", func(t *testing.T) {
		mockStaffService.EXPECT().
			LeaveEvent(gomock.Any(), int64(10), callerID).
			Return(nil)

		w := serve(router, "POST", "/staff/leave", `{"eventId":10}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("ToggleAvailability_Success", func(t *testing.T) {
		mockStaffService.EXPECT().
			ToggleCanBeStaff(gomock.Any(), callerID).
			Return(false, nil)

		w := serve(router, "POST", "/staff/availability", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decode(t, w)["canBeStaff"])
	})

	t.Run("ListStaff_Failure_NotMember", func(t *testing.T) {
		mockStaffService.EXPECT().
			ListStaff(gomock.Any(), int64(10), callerID).
			Return(nil, ed_errors.ErrNotEventMember)

		w := serve(router, "GET", "/events/10/staff", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
