package application

import (
	"context"
	"errors"
	"fmt"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	attendeeRepo output.AttendeeRepository
	guard        *CapacityGuard
}

func NewRegistrationService(
	attendeeRepo output.AttendeeRepository,
	guard *CapacityGuard,
) *RegistrationService {
	return &RegistrationService{
		attendeeRepo: attendeeRepo,
		guard:        guard,
	}
}

// Register validates the target event through the capacity guard and persists
// a new attendee with check-in status false. Exactly one row is created on
// success and zero on any failure path.
func (s *RegistrationService) Register(ctx context.Context, in input.RegisterAttendee) (*entities.Attendee, error) {
	if err := s.guard.CanRegister(ctx, in.EventID); err != nil {
		return nil, err
	}

	attendee := &entities.Attendee{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		EventID:     in.EventID,
	}
	err := s.attendeeRepo.Insert(ctx, attendee)
	switch {
	case err == nil:
		return attendee, nil
	case errors.Is(err, domain.ErrDuplicateEmail):
		return nil, err
	case errors.Is(err, domain.ErrEventFull):
		// The conditional insert rejected the row after the guard accepted:
		// a concurrent registration took the last seat, or the event left
		// the scheduled state. Re-run the guard for the accurate reason.
		if gerr := s.guard.CanRegister(ctx, in.EventID); gerr != nil {
			return nil, gerr
		}
		return nil, domain.ErrEventFull
	default:
		return nil, fmt.Errorf("insert attendee: %w", err)
	}
}

// ListByEvent returns the attendees of an event, optionally filtered by
// check-in status.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID int64, checkedIn *bool) ([]entities.Attendee, error) {
	attendees, err := s.attendeeRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("find attendees: %w", err)
	}
	if checkedIn == nil {
		return attendees, nil
	}
	filtered := make([]entities.Attendee, 0, len(attendees))
	for _, a := range attendees {
		if a.CheckInStatus == *checkedIn {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
