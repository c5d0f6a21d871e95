package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	query := `
		INSERT INTO projects (id, key, name, description, status, progress, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, key, name, description, status, progress, created_by, created_at, updated_at`

	var created domainproject.Project
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Key, p.Name, p.Description, p.Status, p.Progress, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	).Scan(
		&created.ID, &created.Key, &created.Name, &created.Description,
		&created.Status, &created.Progress, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("inserting project: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error) {
	query := `
		SELECT id, key, name, description, status, progress, created_by, created_at, updated_at
		FROM projects WHERE id = $1`

	var p domainproject.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Key, &p.Name, &p.Description, &p.Status, &p.Progress,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, fmt.Errorf("project %s: %w", id, domainproject.ErrNotFound)
		}
		return domainproject.Project{}, fmt.Errorf("querying project: %w", err)
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context) ([]domainproject.Project, error) {
	query := `
		SELECT id, key, name, description, status, progress, created_by, created_at, updated_at
		FROM projects ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domainproject.Project
	for rows.Next() {
		var p domainproject.Project
		if err := rows.Scan(
			&p.ID, &p.Key, &p.Name, &p.Description, &p.Status, &p.Progress,
			&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *Repository) SetProgress(ctx context.Context, id uuid.UUID, progress int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE projects SET progress = $1, updated_at = NOW() WHERE id = $2`, progress, id)
	if err != nil {
		return fmt.Errorf("setting project progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domainproject.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domainproject.ErrNotFound)
	}
	return nil
}
