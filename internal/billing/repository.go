package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Billing) error
	GetByID(ctx context.Context, id string) (*Billing, error)
	GetByReservation(ctx context.Context, reservationID string) (*Billing, error)
	List(ctx context.Context, filter Filter) ([]*Billing, int, error)
	Update(ctx context.Context, b *Billing) error
	MarkCompleted(ctx context.Context, id string, method, transactionID *string) error

	// ConfirmPendingReservation flips a pending reservation to confirmed.
	// A reservation in any other state is left alone.
	ConfirmPendingReservation(ctx context.Context, reservationID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Billing) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.billings").
		Columns("guest_id", "reservation_id", "amount", "payment_method", "status", "transaction_id").
		Values(b.GuestID, b.ReservationID, b.Amount, b.PaymentMethod, b.Status, b.TransactionID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create billing query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrReservationBilled
			case pgerrcode.ForeignKeyViolation:
				return ErrInvalidReservation
			}
		}
		return fmt.Errorf("create billing failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Billing, error) {
	return r.getBy(ctx, squirrel.Eq{"b.id": id})
}

func (r *pgxRepository) GetByReservation(ctx context.Context, reservationID string) (*Billing, error) {
	return r.getBy(ctx, squirrel.Eq{"b.reservation_id": reservationID})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*Billing, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.guest_id", "g.first_name || ' ' || g.last_name",
		"b.reservation_id", "b.amount", "b.payment_method", "b.status",
		"b.transaction_id", "b.created_at", "b.updated_at",
	).
		From("public.billings b").
		Join("public.guests g ON b.guest_id = g.id").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get billing query failed: %w", err)
	}

	var b Billing
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.GuestID, &b.GuestName,
		&b.ReservationID, &b.Amount, &b.PaymentMethod, &b.Status,
		&b.TransactionID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get billing failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Billing, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.guest_id", "g.first_name || ' ' || g.last_name",
		"b.reservation_id", "b.amount", "b.payment_method", "b.status",
		"b.transaction_id", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.billings b").
		Join("public.guests g ON b.guest_id = g.id")

	if filter.GuestID != "" {
		query = query.Where(squirrel.Eq{"b.guest_id": filter.GuestID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	query = query.OrderBy("b.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list billings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list billings failed: %w", err)
	}
	defer rows.Close()

	var billings []*Billing
	var total int

	for rows.Next() {
		var b Billing
		if err := rows.Scan(
			&b.ID, &b.GuestID, &b.GuestName,
			&b.ReservationID, &b.Amount, &b.PaymentMethod, &b.Status,
			&b.TransactionID, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan billing failed: %w", err)
		}
		billings = append(billings, &b)
	}

	return billings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Billing) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.billings").
		Set("amount", b.Amount).
		Set("payment_method", b.PaymentMethod).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update billing query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update billing failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) MarkCompleted(ctx context.Context, id string, method, transactionID *string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	update := psql.Update("public.billings").
		Set("status", StatusCompleted).
		Set("transaction_id", transactionID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	if method != nil {
		update = update.Set("payment_method", *method)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build complete billing query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("complete billing failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ConfirmPendingReservation(ctx context.Context, reservationID string) error {
	if _, err := r.pool.Exec(ctx,
		"UPDATE public.reservations SET status = 'confirmed', updated_at = now() WHERE id = $1 AND status = 'pending'",
		reservationID,
	); err != nil {
		return fmt.Errorf("confirm reservation failed: %w", err)
	}
	return nil
}
