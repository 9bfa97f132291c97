package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

const pgUniqueViolation = "23505"

var _ output.AttendeeRepository = (*AttendeeRepository)(nil)

// AttendeeRepository implements output.AttendeeRepository using pgx.
type AttendeeRepository struct {
	pool *pgxpool.Pool
}

// NewAttendeeRepository creates an AttendeeRepository.
func NewAttendeeRepository(pool *pgxpool.Pool) *AttendeeRepository {
	return &AttendeeRepository{pool: pool}
}

const attendeeColumns = "attendee_id, first_name, last_name, email, phone_number, check_in_status, event_id, created_at, updated_at"

func scanAttendee(row pgx.Row) (entities.Attendee, error) {
	var a entities.Attendee
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber,
		&a.CheckInStatus, &a.EventID, &createdAt, &updatedAt,
	)
	if err != nil {
		return entities.Attendee{}, err
	}
	a.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	a.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return a, nil
}

// Insert persists a new attendee. The row is only inserted while the owning
// event is scheduled and below max_attendees; the condition and the insert
// run in one statement so concurrent registrations cannot overshoot the
// capacity.
func (r *AttendeeRepository) Insert(ctx context.Context, attendee *entities.Attendee) error {
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		INSERT INTO attendees (first_name, last_name, email, phone_number, check_in_status, event_id)
		SELECT $1, $2, $3, $4, FALSE, e.event_id
		FROM events e
		WHERE e.event_id = $5
		  AND e.status = $6
		  AND (SELECT COUNT(*) FROM attendees a WHERE a.event_id = e.event_id) < e.max_attendees
		RETURNING attendee_id, created_at, updated_at`,
		attendee.FirstName, attendee.LastName, attendee.Email, attendee.PhoneNumber,
		attendee.EventID, domain.EventStatusScheduled,
	).Scan(&attendee.ID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventFull
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert attendee: %w", err)
	}
	attendee.CheckInStatus = false
	attendee.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	attendee.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *AttendeeRepository) FindByID(ctx context.Context, id int64) (*entities.Attendee, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+attendeeColumns+" FROM attendees WHERE attendee_id = $1", id)
	a, err := scanAttendee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("get attendee by id: %w", err)
	}
	return &a, nil
}

func (r *AttendeeRepository) FindByEventID(ctx context.Context, eventID int64) ([]entities.Attendee, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+attendeeColumns+" FROM attendees WHERE event_id = $1 ORDER BY attendee_id", eventID)
	if err != nil {
		return nil, fmt.Errorf("get attendees by event id: %w", err)
	}
	defer rows.Close()

	var out []entities.Attendee
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get attendees by event id: %w", err)
	}
	return out, nil
}

func (r *AttendeeRepository) UpdateCheckIn(ctx context.Context, attendee *entities.Attendee) error {
	var updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		UPDATE attendees
		SET check_in_status = $2, updated_at = now()
		WHERE attendee_id = $1
		RETURNING updated_at`,
		attendee.ID, attendee.CheckInStatus,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAttendeeNotFound
		}
		return fmt.Errorf("update attendee check-in: %w", err)
	}
	attendee.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

// CheckInAll flips the given attendees to checked in inside one transaction.
// Rows already checked in are left untouched and excluded from the result,
// so duplicate ids in the batch transition at most once.
func (r *AttendeeRepository) CheckInAll(ctx context.Context, ids []int64) ([]entities.Attendee, error) {
	var out []entities.Attendee
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			UPDATE attendees
			SET check_in_status = TRUE, updated_at = now()
			WHERE attendee_id = ANY($1)
			  AND check_in_status = FALSE
			RETURNING `+attendeeColumns,
			ids,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			a, err := scanAttendee(rows)
			if err != nil {
				return err
			}
			out = append(out, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("bulk check-in: %w", err)
	}
	return out, nil
}

func (r *AttendeeRepository) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM attendees WHERE event_id = $1", eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return count, nil
}
