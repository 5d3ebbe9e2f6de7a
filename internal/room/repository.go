package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, rm *Room) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// ListAvailable returns rooms without an active (confirmed or
	// checked_in) reservation overlapping [start, end).
	ListAvailable(ctx context.Context, start, end time.Time, hotelID string) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("hotel_id", "room_type", "location", "capacity", "amenities", "price", "status").
		Values(rm.HotelID, rm.RoomType, rm.Location, rm.Capacity, rm.Amenities, rm.Price, rm.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.hotel_id", "h.name", "r.room_type", "r.location",
		"r.capacity", "r.amenities", "r.price", "r.status", "r.created_at", "r.updated_at",
	).
		From("public.rooms r").
		Join("public.hotels h ON r.hotel_id = h.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var rm Room
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&rm.ID, &rm.HotelID, &rm.HotelName, &rm.RoomType, &rm.Location,
		&rm.Capacity, &rm.Amenities, &rm.Price, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.hotel_id", "h.name", "r.room_type", "r.location",
		"r.capacity", "r.amenities", "r.price", "r.status", "r.created_at", "r.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.rooms r").
		Join("public.hotels h ON r.hotel_id = h.id")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"r.hotel_id": filter.HotelID})
	}
	if filter.RoomType != "" {
		query = query.Where(squirrel.Eq{"r.room_type": filter.RoomType})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}

	query = query.OrderBy("r.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.HotelName, &rm.RoomType, &rm.Location,
			&rm.Capacity, &rm.Amenities, &rm.Price, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &rm)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("room_type", rm.RoomType).
		Set("location", rm.Location).
		Set("capacity", rm.Capacity).
		Set("amenities", rm.Amenities).
		Set("price", rm.Price).
		Set("status", rm.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListAvailable(ctx context.Context, start, end time.Time, hotelID string) ([]*Room, error) {
	// A room is available for [start, end) when no confirmed or
	// checked_in reservation satisfies start_date < end AND end_date > start.
	// Half-open ranges: back-to-back stays do not conflict.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.hotel_id", "h.name", "r.room_type", "r.location",
		"r.capacity", "r.amenities", "r.price", "r.status", "r.created_at", "r.updated_at",
	).
		From("public.rooms r").
		Join("public.hotels h ON r.hotel_id = h.id").
		Where(squirrel.Expr(
			`NOT EXISTS (
				SELECT 1 FROM public.reservations res
				WHERE res.room_id = r.id
				  AND res.status IN ('confirmed', 'checked_in')
				  AND res.start_date < ?
				  AND res.end_date > ?
			)`, end, start,
		))

	if hotelID != "" {
		query = query.Where(squirrel.Eq{"r.hotel_id": hotelID})
	}

	query = query.OrderBy("r.created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list available rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list available rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.HotelName, &rm.RoomType, &rm.Location,
			&rm.Capacity, &rm.Amenities, &rm.Price, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan available room failed: %w", err)
		}
		rooms = append(rooms, &rm)
	}

	return rooms, nil
}
