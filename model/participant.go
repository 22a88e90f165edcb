package model

type ParticipantData struct {
	ID       int64             `json:"id"`
	FormID   int64             `json:"formId"`
	Data     map[string]string `json:"data"`
	Invited  bool              `json:"invited"`
	Attended bool              `json:"attended"`
	QrCode   string            `json:"qrCode"`
}

// Email returns the value of the mandatory Email field.
func (p *ParticipantData) Email() string {
	return p.Data[EmailFieldName]
}

type AttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

type StaffRequest struct {
	EventID int64 `json:"eventId" binding:"required"`
	UserID  int64 `json:"userId" binding:"required"`
}

type LeaveRequest struct {
	EventID int64 `json:"eventId" binding:"required"`
}

type AddParticipantsRequest struct {
	Records []map[string]string `json:"records" binding:"required"`
}

type UpdateParticipantRequest struct {
	Data map[string]string `json:"data" binding:"required"`
}
