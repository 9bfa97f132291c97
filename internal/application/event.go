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

const defaultListLimit = 10

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEvent persists a new event. A missing status defaults to scheduled.
func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if event.Status == "" {
		event.Status = domain.EventStatusScheduled
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// UpdateEvent applies a partial update to an existing event, field by field.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, patch entities.EventPatch) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.StartTime != nil {
		event.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		event.EndTime = *patch.EndTime
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.MaxAttendees != nil {
		event.MaxAttendees = *patch.MaxAttendees
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id int64) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

// ListEvents returns events matching the filter, paginated. The limit
// defaults to 10 when unset.
func (s *EventService) ListEvents(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	events, err := s.eventRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	return events, nil
}
