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

type LocationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLocationRepo(db *dbpg.DB) *LocationRepository {
	return &LocationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (id, location_name, address, capacity)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, l.ID, l.Name, l.Address, l.Capacity)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}

	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `SELECT id, location_name, address, capacity
			  FROM locations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}

	var l domain.Location
	if err = row.Scan(&l.ID, &l.Name, &l.Address, &l.Capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("scan location: %w", err)
	}

	return &l, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	query := `SELECT id, location_name, address, capacity
			  FROM locations
			  ORDER BY location_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Location
	for rows.Next() {
		var l domain.Location
		if err = rows.Scan(&l.ID, &l.Name, &l.Address, &l.Capacity); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

func (r *LocationRepository) Update(ctx context.Context, l *domain.Location) error {
	query := `UPDATE locations
			  SET location_name = $2, address = $3, capacity = $4
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, l.ID, l.Name, l.Address, l.Capacity)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("location rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrLocationNotFound
	}

	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrLocationHasEvents
		}
		return fmt.Errorf("delete location: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("location rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrLocationNotFound
	}

	return nil
}
