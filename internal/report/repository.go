package report

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Occupancy(ctx context.Context) (*Occupancy, error)
	Revenue(ctx context.Context) (*Revenue, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Occupancy(ctx context.Context) (*Occupancy, error) {
	var o Occupancy
	if err := r.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'occupied'),
			(SELECT count(*) FROM public.reservations WHERE status IN ('confirmed', 'checked_in'))
		FROM public.rooms
	`).Scan(&o.TotalRooms, &o.OccupiedRooms, &o.ActiveReservations); err != nil {
		return nil, fmt.Errorf("occupancy report failed: %w", err)
	}

	if o.TotalRooms > 0 {
		o.OccupancyRate = float64(o.OccupiedRooms) / float64(o.TotalRooms)
	}
	return &o, nil
}

func (r *pgxRepository) Revenue(ctx context.Context) (*Revenue, error) {
	var rev Revenue
	if err := r.pool.QueryRow(ctx, `
		SELECT
			coalesce(sum(amount) FILTER (WHERE status = 'completed'), 0),
			count(*) FILTER (WHERE status = 'completed'),
			count(*) FILTER (WHERE status = 'pending')
		FROM public.billings
	`).Scan(&rev.TotalRevenue, &rev.CompletedBills, &rev.PendingBills); err != nil {
		return nil, fmt.Errorf("revenue report failed: %w", err)
	}
	return &rev, nil
}
