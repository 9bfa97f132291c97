package input

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	UpdateEvent(ctx context.Context, id int64, patch entities.EventPatch) (*entities.Event, error)
	GetEventByID(ctx context.Context, id int64) (*entities.Event, error)
	ListEvents(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
}
