package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

const maxTxAttempts = 5

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// withTx runs fn inside a transaction, retrying it when Postgres aborts
// the transaction under concurrent interference. Exhausting all
// attempts surfaces ErrContention.
func withTx(ctx context.Context, db *dbpg.DB, s retry.Strategy, fn func(tx *sql.Tx) error) error {
	delay := s.Delay
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err := runTx(ctx, db, fn)
		if err == nil || !retryableTxError(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * float64(s.Backoff))
	}

	return domain.ErrContention
}

func runTx(ctx context.Context, db *dbpg.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// Postgres resolves lock conflicts by aborting one of the competing
// transactions with a serialization or deadlock failure.
func retryableTxError(err error) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// reserveSlots takes slots from an event's available pool. The
// sufficiency check happens at write time: a concurrent booking that
// depleted the pool between our read and this write makes the guard
// fail instead of driving available_slots negative.
func reserveSlots(ctx context.Context, tx *sql.Tx, eventID string, slots int) error {
	query := `UPDATE events
			  SET available_slots = available_slots - $2, updated_at = now()
			  WHERE id = $1 AND available_slots >= $2`
	res, err := tx.ExecContext(ctx, query, eventID, slots)
	if err != nil {
		return fmt.Errorf("reserve slots: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve slots rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, checkQuery, eventID).Scan(&exists); err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if !exists {
			return domain.ErrEventNotFound
		}
		return domain.ErrInsufficientSlots
	}

	return nil
}

// releaseSlots returns slots to an event's available pool, clamped to
// the hosting location's capacity so an already inconsistent row cannot
// be over-restored.
func releaseSlots(ctx context.Context, tx *sql.Tx, eventID string, slots int) error {
	query := `UPDATE events e
			  SET available_slots = LEAST(e.available_slots + $2, l.capacity), updated_at = now()
			  FROM locations l
			  WHERE e.id = $1 AND l.id = e.location_id`
	res, err := tx.ExecContext(ctx, query, eventID, slots)
	if err != nil {
		return fmt.Errorf("release slots: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release slots rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
