package entities

import "time"

// Attendee represents a person registered for an event. Email is globally
// unique; CheckInStatus only ever transitions false -> true.
type Attendee struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	CheckInStatus bool
	EventID       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
