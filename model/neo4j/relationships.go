// model/neo4j/relationships.go
package ed_neo4j

// Relationship Types
const (
	// RelCreated links a user to the events they organize
	RelCreated = "CREATED"

	// RelHasForm links an event to its single registration form
	RelHasForm = "HAS_FORM"

	// RelHasParticipantData links a form to the records submitted against it
	RelHasParticipantData = "HAS_PARTICIPANT_DATA"

	// RelStaffFor links a staff member to an event they help run
	RelStaffFor = "STAFF_FOR"
)
