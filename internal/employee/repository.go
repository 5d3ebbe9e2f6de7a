package employee

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
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, int, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Employee) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.employees").
		Columns("hotel_id", "first_name", "last_name", "email", "password_hash", "role", "status").
		Values(e.HotelID, e.FirstName, e.LastName, e.Email, e.PasswordHash, e.Role, e.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create employee query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("create employee failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Employee, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*Employee, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "hotel_id", "first_name", "last_name", "email",
		"password_hash", "role", "status", "created_at", "updated_at",
	).
		From("public.employees").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get employee query failed: %w", err)
	}

	var e Employee
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.HotelID, &e.FirstName, &e.LastName, &e.Email,
		&e.PasswordHash, &e.Role, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get employee failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Employee, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "hotel_id", "first_name", "last_name", "email",
		"password_hash", "role", "status", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.employees")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"hotel_id": filter.HotelID})
	}
	if filter.Role != "" {
		query = query.Where(squirrel.Eq{"role": filter.Role})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	query = query.OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list employees query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees failed: %w", err)
	}
	defer rows.Close()

	var employees []*Employee
	var total int

	for rows.Next() {
		var e Employee
		if err := rows.Scan(
			&e.ID, &e.HotelID, &e.FirstName, &e.LastName, &e.Email,
			&e.PasswordHash, &e.Role, &e.Status, &e.CreatedAt, &e.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan employee failed: %w", err)
		}
		employees = append(employees, &e)
	}

	return employees, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, e *Employee) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.employees").
		Set("hotel_id", e.HotelID).
		Set("first_name", e.FirstName).
		Set("last_name", e.LastName).
		Set("role", e.Role).
		Set("status", e.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update employee query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update employee failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete employee query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete employee failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
