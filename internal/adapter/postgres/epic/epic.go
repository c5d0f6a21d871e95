package epic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainepic "github.com/alanyang/sprintboard/internal/domain/epic"
)

const epicColumns = `id, project_id, name, description, status, created_by, created_at, updated_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, e domainepic.Epic) (domainepic.Epic, error) {
	query := `
		INSERT INTO epics (id, project_id, name, description, status, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING ` + epicColumns

	var created domainepic.Epic
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.ProjectID, e.Name, e.Description, e.Status, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	).Scan(scanTargets(&created)...)
	if err != nil {
		return domainepic.Epic{}, fmt.Errorf("inserting epic: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainepic.Epic, error) {
	query := `SELECT ` + epicColumns + ` FROM epics WHERE id = $1`

	var e domainepic.Epic
	err := r.pool.QueryRow(ctx, query, id).Scan(scanTargets(&e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainepic.Epic{}, fmt.Errorf("epic %s: %w", id, domainepic.ErrNotFound)
		}
		return domainepic.Epic{}, fmt.Errorf("querying epic: %w", err)
	}
	return e, nil
}

func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domainepic.Epic, error) {
	query := `SELECT ` + epicColumns + ` FROM epics WHERE project_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing epics: %w", err)
	}
	defer rows.Close()

	var epics []domainepic.Epic
	for rows.Next() {
		var e domainepic.Epic
		if err := rows.Scan(scanTargets(&e)...); err != nil {
			return nil, fmt.Errorf("scanning epic row: %w", err)
		}
		epics = append(epics, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating epic rows: %w", err)
	}
	return epics, nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domainepic.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE epics SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("setting epic status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("epic %s: %w", id, domainepic.ErrNotFound)
	}
	return nil
}

func scanTargets(e *domainepic.Epic) []interface{} {
	return []interface{}{
		&e.ID, &e.ProjectID, &e.Name, &e.Description, &e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	}
}
