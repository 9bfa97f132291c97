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

var _ input.CheckInUseCase = (*CheckInService)(nil)

type CheckInService struct {
	attendeeRepo output.AttendeeRepository
}

func NewCheckInService(attendeeRepo output.AttendeeRepository) *CheckInService {
	return &CheckInService{attendeeRepo: attendeeRepo}
}

// CheckIn marks an attendee as checked in. The transition is idempotent: an
// already checked-in attendee is persisted again with status true and
// returned as a success.
func (s *CheckInService) CheckIn(ctx context.Context, attendeeID int64) (*entities.Attendee, error) {
	attendee, err := s.attendeeRepo.FindByID(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrAttendeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find attendee: %w", err)
	}
	attendee.CheckInStatus = true
	if err := s.attendeeRepo.UpdateCheckIn(ctx, attendee); err != nil {
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	return attendee, nil
}

// BulkCheckIn checks in every attendee in attendeeIDs that exists and is not
// yet checked in. Unknown ids and already checked-in attendees are skipped
// silently; any other lookup failure aborts the batch.
// All selected rows are committed in a single transaction; a
// commit failure discards the whole batch. The returned slice contains
// exactly the records that newly transitioned to checked in, which may be
// empty.
func (s *CheckInService) BulkCheckIn(ctx context.Context, attendeeIDs []int64) ([]entities.Attendee, error) {
	var pending []int64
	for _, id := range attendeeIDs {
		attendee, err := s.attendeeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrAttendeeNotFound) {
				continue
			}
			return nil, fmt.Errorf("find attendee: %w", err)
		}
		if attendee.CheckInStatus {
			continue
		}
		pending = append(pending, attendee.ID)
	}
	if len(pending) == 0 {
		return nil, nil
	}
	updated, err := s.attendeeRepo.CheckInAll(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("bulk check-in: %w", err)
	}
	return updated, nil
}
