package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository using pgx.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates an EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = "event_id, name, description, start_time, end_time, location, max_attendees, status, created_at, updated_at"

func scanEvent(row pgx.Row) (entities.Event, error) {
	var e entities.Event
	var startTime, endTime, createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &startTime, &endTime,
		&e.Location, &e.MaxAttendees, &e.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return entities.Event{}, err
	}
	e.StartTime = pgtypeTimestamptzToTime(startTime)
	e.EndTime = pgtypeTimestamptzToTime(endTime)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		INSERT INTO events (name, description, start_time, end_time, location, max_attendees, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id, created_at, updated_at`,
		event.Name, event.Description,
		timeToTimestamptz(event.StartTime), timeToTimestamptz(event.EndTime),
		event.Location, event.MaxAttendees, event.Status,
	).Scan(&event.ID, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+eventColumns+" FROM events WHERE event_id = $1", id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) Find(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, cond+"$"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		add("status = ", filter.Status)
	}
	if filter.Location != "" {
		add("location = ", filter.Location)
	}
	if !filter.StartDate.IsZero() {
		add("start_time >= ", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		add("end_time <= ", filter.EndDate)
	}

	query := "SELECT " + eventColumns + " FROM events"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Offset)
	query += " ORDER BY event_id OFFSET $" + strconv.Itoa(len(args))
	args = append(args, filter.Limit)
	query += " LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	var updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		UPDATE events
		SET name = $2, description = $3, start_time = $4, end_time = $5,
		    location = $6, max_attendees = $7, status = $8, updated_at = now()
		WHERE event_id = $1
		RETURNING updated_at`,
		event.ID, event.Name, event.Description,
		timeToTimestamptz(event.StartTime), timeToTimestamptz(event.EndTime),
		event.Location, event.MaxAttendees, event.Status,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) MarkEndedCompleted(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET status = $1, updated_at = now()
		WHERE end_time IS NOT NULL
		  AND end_time < $2
		  AND status NOT IN ($1, $3)`,
		domain.EventStatusCompleted, now, domain.EventStatusCanceled,
	)
	if err != nil {
		return 0, fmt.Errorf("mark ended events completed: %w", err)
	}
	return tag.RowsAffected(), nil
}
