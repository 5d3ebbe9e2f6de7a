package reservation

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
	// CreateIfAvailable inserts the reservation only if no active
	// reservation overlaps its range. Check and insert share a single
	// serializable transaction.
	CreateIfAvailable(ctx context.Context, res *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateDates(ctx context.Context, id string, start, end time.Time, totalPrice float64) error

	// HasOverlap checks for a conflicting active reservation on the room.
	// excludeID ignores the reservation itself during updates.
	HasOverlap(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// overlapSQL builds the EXISTS query for active reservations on the room
// intersecting [start, end). Half-open: start_date < end AND end_date > start.
func overlapSQL(roomID string, start, end time.Time, excludeID string) (string, []interface{}, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": []string{string(StatusConfirmed), string(StatusCheckedIn)}}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start})

	if excludeID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build check overlap query failed: %w", err)
	}
	return "SELECT EXISTS (" + sql + ")", args, nil
}

func (r *pgxRepository) CreateIfAvailable(ctx context.Context, res *Reservation) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin create reservation tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	checkSQL, checkArgs, err := overlapSQL(res.RoomID, res.StartDate, res.EndDate, "")
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow(ctx, checkSQL, checkArgs...).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrRoomUnavailable
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("guest_id", "room_id", "start_date", "end_date", "total_price", "status").
		Values(res.GuestID, res.RoomID, res.StartDate, res.EndDate, res.TotalPrice, res.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return fmt.Errorf("create reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservation tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"res.id", "res.guest_id", "g.first_name || ' ' || g.last_name",
		"res.room_id", "r.room_type",
		"res.start_date", "res.end_date", "res.total_price", "res.status",
		"res.created_at", "res.updated_at",
	).
		From("public.reservations res").
		Join("public.guests g ON res.guest_id = g.id").
		Join("public.rooms r ON res.room_id = r.id").
		Where(squirrel.Eq{"res.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	var res Reservation
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&res.ID, &res.GuestID, &res.GuestName,
		&res.RoomID, &res.RoomType,
		&res.StartDate, &res.EndDate, &res.TotalPrice, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"res.id", "res.guest_id", "g.first_name || ' ' || g.last_name",
		"res.room_id", "r.room_type",
		"res.start_date", "res.end_date", "res.total_price", "res.status",
		"res.created_at", "res.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations res").
		Join("public.guests g ON res.guest_id = g.id").
		Join("public.rooms r ON res.room_id = r.id")

	if filter.GuestID != "" {
		query = query.Where(squirrel.Eq{"res.guest_id": filter.GuestID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"res.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"res.status": filter.Status})
	}

	query = query.OrderBy("res.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.GuestID, &res.GuestName,
			&res.RoomID, &res.RoomType,
			&res.StartDate, &res.EndDate, &res.TotalPrice, &res.Status,
			&res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
	}

	return reservations, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateDates(ctx context.Context, id string, start, end time.Time, totalPrice float64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("start_date", start).
		Set("end_date", end).
		Set("total_price", totalPrice).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation dates query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation dates failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error) {
	sql, args, err := overlapSQL(roomID, start, end, excludeID)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}
