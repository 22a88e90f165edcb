// controller/invitation_controller_test.go
package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/eventdesk/controller"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	mock_service "github.com/dev-mohitbeniwal/eventdesk/test/service_mock"
)

func TestInvitationController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvitationService := mock_service.NewMockIInvitationService(ctrl)
	router, api := setupRouter()
	controller.NewInvitationController(mockInvitationService).RegisterRoutes(api)

	t.Run("SendInvitation_Success", func(t *testing.T) {
		mockInvitationService.EXPECT().
			SendInvitation(gomock.Any(), int64(30), int64(20), callerID).
			Return(nil)

		w := serve(router, "POST", "/invitations/forms/20/participants/30", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decode(t, w)["sent"])
	})

	t.Run("SendInvitation_Failure_MissingQrCode", func(t *testing.T) {
		mockInvitationService.EXPECT().
			SendInvitation(gomock.Any(), int64(30), int64(20), callerID).
			Return(ed_errors.ErrMissingQrCode)

		w := serve(router, "POST", "/invitations/forms/20/participants/30", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("SendInvitations_Success", func(t *testing.T) {
		mockInvitationService.EXPECT().
			SendInvitations(gomock.Any(), int64(10), callerID).
			Return(3, nil)

		w := serve(router, "POST", "/invitations/events/10", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(3), decode(t, w)["sent"])
	})

	t.Run("SendInvitations_StoppedByDelivery", func(t *testing.T) {
		mockInvitationService.EXPECT().
			SendInvitations(gomock.Any(), int64(10), callerID).
			Return(2, ed_errors.ErrEmailDelivery)

		w := serve(router, "POST", "/invitations/events/10", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, float64(2), body["sent"])
		assert.Equal(t, "Failed to send invitations", body["error"])
	})

	t.Run("SendInvitations_Failure_NotOrganizer", func(t *testing.T) {
		mockInvitationService.EXPECT().
			SendInvitations(gomock.Any(), int64(10), callerID).
			Return(0, ed_errors.ErrNotEventOrganizer)

		w := serve(router, "POST", "/invitations/events/10", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, ed_errors.ErrNotEventOrganizer.Error(), decode(t, w)["error"])
	})
}
