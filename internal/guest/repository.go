package guest

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
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	GetByEmail(ctx context.Context, email string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, g *Guest) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const guestColumns = "id, email, password_hash, first_name, last_name, contact, address, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, g *Guest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.guests").
		Columns("email", "password_hash", "first_name", "last_name", "contact", "address").
		Values(g.Email, g.PasswordHash, g.FirstName, g.LastName, g.Contact, g.Address).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create guest query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("create guest failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Guest, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*Guest, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*Guest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(guestColumns).
		From("public.guests").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get guest query failed: %w", err)
	}

	var g Guest
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&g.ID, &g.Email, &g.PasswordHash, &g.FirstName, &g.LastName,
		&g.Contact, &g.Address, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get guest failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "email", "password_hash", "first_name", "last_name",
		"contact", "address", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.guests").
		OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list guests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list guests failed: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	var total int

	for rows.Next() {
		var g Guest
		if err := rows.Scan(
			&g.ID, &g.Email, &g.PasswordHash, &g.FirstName, &g.LastName,
			&g.Contact, &g.Address, &g.CreatedAt, &g.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan guest failed: %w", err)
		}
		guests = append(guests, &g)
	}

	return guests, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, g *Guest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.guests").
		Set("first_name", g.FirstName).
		Set("last_name", g.LastName).
		Set("contact", g.Contact).
		Set("address", g.Address).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update guest query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update guest failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
