// model/neo4j/attributes.go
package ed_neo4j

// Attribute Keys
const (
	AttrID          = "id"
	AttrName        = "name"
	AttrDescription = "description"
	AttrEmail       = "email"
	AttrStatus      = "status"

	// User
	AttrPasswordHash             = "passwordHash"
	AttrCanBeStaff               = "canBeStaff"
	AttrIsEmailConfirmed         = "isEmailConfirmed"
	AttrEmailConfirmationCode    = "emailConfirmationCode"
	AttrPasswordResetToken       = "passwordResetToken"
	AttrPasswordResetRequestedAt = "passwordResetRequestedAt"
	AttrPasswordResetAttempts    = "passwordResetAttempts"

	// Event
	AttrImageBase64          = "imageBase64"
	AttrDateTime             = "dateTime"
	AttrCategory             = "category"
	AttrLocation             = "location"
	AttrInvitationTemplateID = "invitationTemplateId"

	// Form. fields is a JSON encoded [{name,type}] list
	AttrEventID = "eventId"
	AttrFields  = "fields"

	// ParticipantData. data is a JSON encoded object of field name to value
	AttrFormID   = "formId"
	AttrData     = "data"
	AttrInvited  = "invited"
	AttrAttended = "attended"
	AttrQrCode   = "qrCode"

	// Sequence
	AttrValue = "value"
)
