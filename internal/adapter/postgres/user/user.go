package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, u domainuser.User) (domainuser.User, error) {
	query := `
		INSERT INTO users (id, username, email, role, active, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, username, email, role, active, created_at`

	var created domainuser.User
	err := r.pool.QueryRow(ctx, query,
		u.ID, u.Username, u.Email, u.Role, u.Active, u.CreatedAt,
	).Scan(&created.ID, &created.Username, &created.Email, &created.Role, &created.Active, &created.CreatedAt)
	if err != nil {
		return domainuser.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainuser.User, error) {
	query := `SELECT id, username, email, role, active, created_at FROM users WHERE id = $1`

	var u domainuser.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.User{}, fmt.Errorf("user %s: %w", id, domainuser.ErrNotFound)
		}
		return domainuser.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

func (r *Repository) List(ctx context.Context, role *domainuser.Role) ([]domainuser.User, error) {
	query := `SELECT id, username, email, role, active, created_at FROM users`
	args := []interface{}{}
	if role != nil {
		query += ` WHERE role = $1`
		args = append(args, string(*role))
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []domainuser.User
	for rows.Next() {
		var u domainuser.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.Active, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}
	return users, nil
}

func (r *Repository) IDsByRoles(ctx context.Context, roles ...domainuser.Role) ([]uuid.UUID, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM users WHERE role = ANY($1) AND active`, names)
	if err != nil {
		return nil, fmt.Errorf("querying users by role: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	// Fails with a foreign-key violation while the user still reports tasks
	// or owns projects; assignee/reviewer/tester references are SET NULL.
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domainuser.ErrNotFound)
	}
	return nil
}
