package application

import (
	"context"
	"errors"
	"fmt"

	"eventdesk/internal/domain"
	"eventdesk/internal/ports/output"
)

// CapacityGuard decides whether an event can accept another registration.
type CapacityGuard struct {
	eventRepo    output.EventRepository
	attendeeRepo output.AttendeeRepository
}

func NewCapacityGuard(
	eventRepo output.EventRepository,
	attendeeRepo output.AttendeeRepository,
) *CapacityGuard {
	return &CapacityGuard{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
	}
}

// CanRegister returns nil when the event accepts a new registration,
// domain.ErrEventNotAvailable when the event is missing or not scheduled,
// and domain.ErrEventFull when it is at capacity.
func (g *CapacityGuard) CanRegister(ctx context.Context, eventID int64) error {
	event, err := g.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return domain.ErrEventNotAvailable
		}
		return fmt.Errorf("find event: %w", err)
	}
	if event.Status != domain.EventStatusScheduled {
		return domain.ErrEventNotAvailable
	}
	count, err := g.attendeeRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("count attendees: %w", err)
	}
	if count >= int64(event.MaxAttendees) {
		return domain.ErrEventFull
	}
	return nil
}
