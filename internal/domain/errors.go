package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrNoEventsFound      = errors.New("no events found")
	ErrEventNotAvailable  = errors.New("event not available for registration")
	ErrEventFull          = errors.New("event is fully booked")
	ErrDuplicateEmail     = errors.New("attendee already registered with this email")
	ErrAttendeeNotFound   = errors.New("attendee not found")
	ErrNoAttendeesFound   = errors.New("no attendees found")
	ErrUnsupportedFormat  = errors.New("only CSV files are supported")
	ErrEmptyFile          = errors.New("invalid or empty CSV file")
	ErrNoValidAttendees   = errors.New("no valid attendees found for check-in")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
