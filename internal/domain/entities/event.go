package entities

import "time"

type Event struct {
	ID           int64
	Name         string
	Description  string
	StartTime    time.Time // zero = not set
	EndTime      time.Time // zero = not set
	Location     string
	MaxAttendees int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventPatch lists the optional fields a caller may override on an event.
// Nil fields are left untouched.
type EventPatch struct {
	Name         *string
	Description  *string
	StartTime    *time.Time
	EndTime      *time.Time
	Location     *string
	MaxAttendees *int
	Status       *string
}

// EventFilter narrows event listings. Zero values mean "no filter".
type EventFilter struct {
	Status    string
	Location  string
	StartDate time.Time
	EndDate   time.Time
	Offset    int
	Limit     int
}
