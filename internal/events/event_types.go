package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintSubmitted EventType = "complaint_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ComplaintSubmittedPayload describes a successfully relayed complaint.
type ComplaintSubmittedPayload struct {
	Floor          string `json:"floor"`
	Room           string `json:"room"`
	SubmitterEmail string `json:"submitter_email"`
	HasAttachment  bool   `json:"has_attachment"`
	EmailID        string `json:"email_id,omitempty"`
}
