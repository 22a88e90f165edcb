// controller/participant_controller_test.go
package controller_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/eventdesk/controller"
	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/schema"
	mock_service "github.com/dev-mohitbeniwal/eventdesk/test/service_mock"
)

func upload(t *testing.T, path string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "upload.bin")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParticipantController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParticipantService := mock_service.NewMockIParticipantService(ctrl)
	router, api := setupRouter()
	controller.NewParticipantController(mockParticipantService).RegisterRoutes(api)

	ann := &model.ParticipantData{ID: 30, FormID: 20, Data: map[string]string{"Email": "ann@example.com"}}

	t.Run("AddParticipants_Success", func(t *testing.T) {
		records := []map[string]string{{"Email": "ann@example.com"}}
		mockParticipantService.EXPECT().
			AddParticipants(gomock.Any(), int64(20), records, callerID).
			Return([]*model.ParticipantData{ann}, nil, nil)

		w := serve(router, "POST", "/forms/20/participants", `{"records":[{"Email":"ann@example.com"}]}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, decode(t, w)["participants"], 1)
	})

	t.Run("AddParticipants_PartialBatch", func(t *testing.T) {
		mockParticipantService.EXPECT().
			AddParticipants(gomock.Any(), int64(20), gomock.Any(), callerID).
			Return([]*model.ParticipantData{ann}, []schema.FieldError{{Row: 2, Field: "Email", Message: "invalid email address"}}, nil)

		w := serve(router, "POST", "/forms/20/participants", `{"records":[{"Email":"ann@example.com"},{"Email":"nope"}]}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, decode(t, w)["errors"], 1)
	})

	t.Run("AddParticipants_AllRejected", func(t *testing.T) {
		mockParticipantService.EXPECT().
			AddParticipants(gomock.Any(), int64(20), gomock.Any(), callerID).
			Return(nil, []schema.FieldError{{Row: 1, Field: "Email", Message: "invalid email address"}}, nil)

		w := serve(router, "POST", "/forms/20/participants", `{"records":[{"Email":"nope"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, ed_errors.ErrParticipantData.Error(), body["error"])
		assert.Len(t, body["errors"], 1)
	})

	t.Run("ImportSpreadsheet_Success", func(t *testing.T) {
		mockParticipantService.EXPECT().
			ImportSpreadsheet(gomock.Any(), int64(20), []byte("xlsx-bytes"), callerID).
			Return([]*model.ParticipantData{ann}, nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, upload(t, "/forms/20/participants/upload", []byte("xlsx-bytes")))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ImportSpreadsheet_Failure_MissingFile", func(t *testing.T) {
		w := serve(router, "POST", "/forms/20/participants/upload", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ImportSpreadsheet_Failure_EmptySheet", func(t *testing.T) {
		mockParticipantService.EXPECT().
			ImportSpreadsheet(gomock.Any(), int64(20), gomock.Any(), callerID).
			Return(nil, nil, ed_errors.ErrEmptySheet)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, upload(t, "/forms/20/participants/upload", []byte("empty")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SetAttendance_Success", func(t *testing.T) {
		mockParticipantService.EXPECT().
			SetAttendance(gomock.Any(), int64(20), int64(30), true, callerID).
			Return(nil)

		w := serve(router, "PUT", "/forms/20/participants/30/attendance", `{"attended":true}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(t, w)["attended"])
	})

	t.Run("SetAttendance_Failure_MissingFlag", func(t *testing.T) {
		w := serve(router, "PUT", "/forms/20/participants/30/attendance", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateParticipant_FieldErrors", func(t *testing.T) {
		mockParticipantService.EXPECT().
			UpdateData(gomock.Any(), int64(30), map[string]string{"Age": "ten"}, callerID).
			Return(nil, []schema.FieldError{{Field: "Age", Message: "must be an integer"}}, nil)

		w := serve(router, "PATCH", "/participants/30", `{"data":{"Age":"ten"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, decode(t, w)["errors"], 1)
	})

	t.Run("UpdateParticipant_Success", func(t *testing.T) {
		mockParticipantService.EXPECT().
			UpdateData(gomock.Any(), int64(30), map[string]string{"Age": "10"}, callerID).
			Return(ann, nil, nil)

		w := serve(router, "PATCH", "/participants/30", `{"data":{"Age":"10"}}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RemoveParticipant_Failure_NotFound", func(t *testing.T) {
		mockParticipantService.EXPECT().
			RemoveParticipant(gomock.Any(), int64(31), callerID).
			Return(ed_errors.ErrParticipantNotFound)

		w := serve(router, "DELETE", "/participants/31", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("AttachQrCode_Success", func(t *testing.T) {
		mockParticipantService.EXPECT().
			AttachQrCode(gomock.Any(), int64(30), []byte("png"), callerID).
			Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, upload(t, "/participants/30/qr", []byte("png")))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("AttachQrCode_Failure_InvalidImage", func(t *testing.T) {
		mockParticipantService.EXPECT().
			AttachQrCode(gomock.Any(), int64(30), gomock.Any(), callerID).
			Return(ed_errors.ErrInvalidImage)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, upload(t, "/participants/30/qr", []byte("not an image")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListFormParticipants_Success", func(t *testing.T) {
		mockParticipantService.EXPECT().
			ListByForm(gomock.Any(), int64(20), callerID).
			Return([]*model.ParticipantData{ann}, nil)

		w := serve(router, "GET", "/forms/20/participants", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListEventParticipants_Failure_NotMember", func(t *testing.T) {
		mockParticipantService.EXPECT().
			ListByEvent(gomock.Any(), int64(10), callerID).
			Return(nil, ed_errors.ErrNotEventMember)

		w := serve(router, "GET", "/events/10/participants", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
