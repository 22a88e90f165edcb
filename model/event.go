package model

import (
	"strings"
	"time"
)

type EventStatus string

const (
	EventUpcoming   EventStatus = "upcoming"
	EventInProgress EventStatus = "in_progress"
	EventFinished   EventStatus = "finished"
)

// ParseEventStatus accepts the three known statuses, ignoring case and
// surrounding whitespace.
func ParseEventStatus(s string) (EventStatus, bool) {
	switch st := EventStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case EventUpcoming, EventInProgress, EventFinished:
		return st, true
	}
	return "", false
}

type Event struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageBase64 string      `json:"imageBase64"`
	CreatedBy   int64       `json:"createdBy"`
	DateTime    time.Time   `json:"dateTime"`
	Category    string      `json:"category"`
	Location    string      `json:"location"`
	Status      EventStatus `json:"status"`
	// InvitationTemplateID is the id of the event's form, 0 when it has none.
	InvitationTemplateID int64 `json:"invitationTemplateId"`
}

// EventPatch replaces every descriptive field of an event. Fields left empty
// are stored empty.
type EventPatch struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageBase64 string    `json:"imageBase64"`
	DateTime    time.Time `json:"dateTime"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
}

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	ImageBase64 string    `json:"imageBase64"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
}

func (r CreateEventRequest) Event() Event {
	return Event{
		Name:        r.Name,
		Description: r.Description,
		ImageBase64: r.ImageBase64,
		DateTime:    r.DateTime,
		Category:    r.Category,
		Location:    r.Location,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EventDeletion describes what deleting an event removed with it.
type EventDeletion struct {
	FormID       int64
	Participants int64
}
