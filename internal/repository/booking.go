package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create reserves the requested slots and inserts the booking in one
// transaction. A failed reservation rolls the insert back, so a booking
// never exists without its slot decrement.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return withTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		if err := reserveSlots(ctx, tx, b.EventID, b.SlotsReserved); err != nil {
			return err
		}

		query := `INSERT INTO bookings (id, user_id, event_id, booking_date, slots_reserved, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := tx.ExecContext(
			ctx, query, b.ID, b.UserID, b.EventID,
			b.BookingDate, b.SlotsReserved, b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, booking_date, slots_reserved, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.UserID, &b.EventID,
		&b.BookingDate, &b.SlotsReserved, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, booking_date, slots_reserved, created_at, updated_at
			  FROM bookings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, booking_date, slots_reserved, created_at, updated_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update rewrites the booking row and settles the slot difference with
// the previous state. Moving the booking to another event releases the
// old reservation and takes a fresh one; both must succeed or the whole
// transaction rolls back.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking, prevEventID string, prevSlots int) error {
	return withTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		if b.EventID != prevEventID {
			if err := releaseSlots(ctx, tx, prevEventID, prevSlots); err != nil {
				return err
			}
			if err := reserveSlots(ctx, tx, b.EventID, b.SlotsReserved); err != nil {
				return err
			}
		} else if delta := b.SlotsReserved - prevSlots; delta > 0 {
			if err := reserveSlots(ctx, tx, b.EventID, delta); err != nil {
				return err
			}
		} else if delta < 0 {
			if err := releaseSlots(ctx, tx, b.EventID, -delta); err != nil {
				return err
			}
		}

		query := `UPDATE bookings
				  SET user_id = $2, event_id = $3, booking_date = $4, slots_reserved = $5, updated_at = $6
				  WHERE id = $1`
		res, err := tx.ExecContext(
			ctx, query, b.ID, b.UserID, b.EventID,
			b.BookingDate, b.SlotsReserved, b.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("update booking: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("booking rows affected: %w", err)
		}
		if rows == 0 {
			return domain.ErrBookingNotFound
		}

		return nil
	})
}

// Delete removes the booking and hands its slots back to the owning
// event inside one transaction.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		var eventID string
		var slots int
		query := `SELECT event_id, slots_reserved FROM bookings WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, query, id).Scan(&eventID, &slots); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("get booking: %w", err)
		}

		if err := releaseSlots(ctx, tx, eventID, slots); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}

		return nil
	})
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.EventID,
			&b.BookingDate, &b.SlotsReserved, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
