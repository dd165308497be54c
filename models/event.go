package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType categorizes a calendar event
type EventType string

const (
	EventHearing     EventType = "hearing"
	EventDeadline    EventType = "deadline"
	EventAppointment EventType = "appointment"
	EventReminder    EventType = "reminder"
)

// EventPriority ranks how urgent an event is
type EventPriority string

const (
	PriorityHigh   EventPriority = "high"
	PriorityMedium EventPriority = "medium"
	PriorityLow    EventPriority = "low"
)

// CalendarEvent represents a scheduled event on a user's legal calendar
type CalendarEvent struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	CaseID      *uuid.UUID    `json:"case_id,omitempty"`
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Time        *string       `json:"time,omitempty"`
	Type        EventType     `json:"type"`
	Priority    EventPriority `json:"priority"`
	Description *string       `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// DefaultPriority maps an event type to its default priority. Hearings
// and deadlines are treated as high urgency.
func DefaultPriority(t EventType) EventPriority {
	switch t {
	case EventHearing, EventDeadline:
		return PriorityHigh
	case EventAppointment:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
