package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, organizer_id, event_name, description, duration, available_slots, start_date, end_date, location_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OrganizerID, e.Name, e.Description, e.Duration,
		e.AvailableSlots, e.StartDate, e.EndDate, e.LocationID,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", mapEventFKError(err))
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, organizer_id, event_name, description, duration, available_slots, start_date, end_date, location_id, created_at, updated_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.OrganizerID, &e.Name, &e.Description, &e.Duration,
		&e.AvailableSlots, &e.StartDate, &e.EndDate, &e.LocationID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, organizer_id, event_name, description, duration, available_slots, start_date, end_date, location_id, created_at, updated_at
			  FROM events
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) ListByLocation(ctx context.Context, locationID string) ([]*domain.Event, error) {
	query := `SELECT id, organizer_id, event_name, description, duration, available_slots, start_date, end_date, location_id, created_at, updated_at
			  FROM events
			  WHERE location_id = $1
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list events by location: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET event_name = $2, description = $3, duration = $4, available_slots = $5,
			      start_date = $6, end_date = $7, location_id = $8, updated_at = $9
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.Duration, e.AvailableSlots,
		e.StartDate, e.EndDate, e.LocationID, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", mapEventFKError(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete refuses to remove an event that still has bookings; callers
// must cancel them first so reserved slots are properly released.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		var bookings int
		countQuery := `SELECT COUNT(*) FROM bookings WHERE event_id = $1`
		if err := tx.QueryRowContext(ctx, countQuery, id).Scan(&bookings); err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		if bookings > 0 {
			return domain.ErrEventHasBookings
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete event: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("event rows affected: %w", err)
		}
		if rows == 0 {
			return domain.ErrEventNotFound
		}

		return nil
	})
}

// mapEventFKError turns foreign key violations on event writes into the
// sentinel for the missing referent.
func mapEventFKError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return err
	}
	if strings.Contains(pgErr.Constraint, "organizer") {
		return domain.ErrUserNotFound
	}
	if strings.Contains(pgErr.Constraint, "location") {
		return domain.ErrLocationNotFound
	}
	return err
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.OrganizerID, &e.Name, &e.Description, &e.Duration,
			&e.AvailableSlots, &e.StartDate, &e.EndDate, &e.LocationID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
