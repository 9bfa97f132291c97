package output

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type AttendeeRepository interface {
	// Insert persists a new attendee. The insert is conditional: it only
	// succeeds while the owning event is scheduled and below capacity, so a
	// concurrent registration cannot overshoot max_attendees. Returns
	// domain.ErrEventFull when the condition rejects the row and
	// domain.ErrDuplicateEmail on an email uniqueness violation.
	Insert(ctx context.Context, attendee *entities.Attendee) error
	FindByID(ctx context.Context, id int64) (*entities.Attendee, error)
	FindByEventID(ctx context.Context, eventID int64) ([]entities.Attendee, error)
	UpdateCheckIn(ctx context.Context, attendee *entities.Attendee) error
	// CheckInAll marks the given attendees as checked in inside a single
	// transaction and returns the records that actually transitioned.
	CheckInAll(ctx context.Context, ids []int64) ([]entities.Attendee, error)
	CountByEventID(ctx context.Context, eventID int64) (int64, error)
}
