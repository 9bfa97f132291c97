package output

import (
	"context"
	"time"

	"eventdesk/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	Find(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	// MarkEndedCompleted flips ended events (end_time before now) that are
	// neither completed nor canceled to completed. Returns the number of
	// events updated.
	MarkEndedCompleted(ctx context.Context, now time.Time) (int64, error)
}
