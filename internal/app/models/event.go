package models

import "time"

// Event defines a campus event users can RSVP to. Category is free-form;
// the UI suggests a fixed palette (workshop, seminar, study-group, career,
// social) but any value is stored as-is.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" example:"React.js Workshop: Building Modern Web Apps"`
	Description  string    `json:"description"`
	Date         string    `json:"date" example:"2024-02-15"`
	Time         string    `json:"time" example:"14:00"`
	Location     string    `json:"location" example:"Computer Science Building, Room 301"`
	Category     string    `json:"category" example:"workshop"`
	MaxAttendees *int      `json:"maxAttendees,omitempty"` // Optional capacity
	Author       Author    `json:"author"`                 // Immutable after creation
	Attendees    []string  `json:"attendees"`              // Set of attendee user ids
	Comments     []Comment `json:"comments"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EntityID implements store.Entity.
func (e Event) EntityID() string { return e.ID }

// Clone returns a deep copy so store snapshots never alias caller memory.
func (e Event) Clone() Event {
	cp := e
	if e.MaxAttendees != nil {
		capacity := *e.MaxAttendees
		cp.MaxAttendees = &capacity
	}
	cp.Attendees = append([]string(nil), e.Attendees...)
	cp.Comments = cloneComments(e.Comments)
	return cp
}

// Touch returns a copy with UpdatedAt refreshed.
func (e Event) Touch(t time.Time) Event {
	e.UpdatedAt = t
	return e
}

// AtCapacity reports whether the event declares a capacity that the current
// attendee count has reached.
func (e Event) AtCapacity() bool {
	return e.MaxAttendees != nil && len(e.Attendees) >= *e.MaxAttendees
}
