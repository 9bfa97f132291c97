package input

import (
	"context"

	"eventdesk/internal/domain/entities"
)

// RegisterAttendee carries the fields needed to register an attendee for an
// event.
type RegisterAttendee struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	EventID     int64
}

type RegistrationUseCase interface {
	Register(ctx context.Context, in RegisterAttendee) (*entities.Attendee, error)
	ListByEvent(ctx context.Context, eventID int64, checkedIn *bool) ([]entities.Attendee, error)
}

type CheckInUseCase interface {
	CheckIn(ctx context.Context, attendeeID int64) (*entities.Attendee, error)
	BulkCheckIn(ctx context.Context, attendeeIDs []int64) ([]entities.Attendee, error)
}
