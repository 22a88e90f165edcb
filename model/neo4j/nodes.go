// model/neo4j/nodes.go
package ed_neo4j

// Node Labels
const (
	// LabelUser represents an account: organizer, staff member or both
	LabelUser = "User"

	// LabelEvent represents an event owned by the user that created it
	LabelEvent = "Event"

	// LabelForm represents the registration schema of an event
	LabelForm = "Form"

	// LabelParticipantData represents one registrant's record under a form
	LabelParticipantData = "ParticipantData"

	// LabelSequence holds the last id handed out for a label
	LabelSequence = "Sequence"
)

// FirstID is the first id allocated by every sequence.
const FirstID int64 = 10000
