package sprint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainsprint "github.com/alanyang/sprintboard/internal/domain/sprint"
)

const sprintColumns = `id, project_id, name, goal, team_lead_id, assignee_id, status,
	velocity, capacity, start_date, end_date, created_by, created_at, updated_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, s domainsprint.Sprint) (domainsprint.Sprint, error) {
	query := `
		INSERT INTO sprints (id, project_id, name, goal, team_lead_id, assignee_id, status,
			velocity, capacity, start_date, end_date, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING ` + sprintColumns

	var created domainsprint.Sprint
	err := r.pool.QueryRow(ctx, query,
		s.ID, s.ProjectID, s.Name, s.Goal, s.TeamLeadID, s.AssigneeID, s.Status,
		s.Velocity, s.Capacity, s.StartDate, s.EndDate, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	).Scan(scanTargets(&created)...)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("inserting sprint: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainsprint.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = $1`

	var s domainsprint.Sprint
	err := r.pool.QueryRow(ctx, query, id).Scan(scanTargets(&s)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainsprint.Sprint{}, fmt.Errorf("sprint %s: %w", id, domainsprint.ErrNotFound)
		}
		return domainsprint.Sprint{}, fmt.Errorf("querying sprint: %w", err)
	}
	return s, nil
}

func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domainsprint.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE project_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []domainsprint.Sprint
	for rows.Next() {
		var s domainsprint.Sprint
		if err := rows.Scan(scanTargets(&s)...); err != nil {
			return nil, fmt.Errorf("scanning sprint row: %w", err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprint rows: %w", err)
	}
	return sprints, nil
}

func (r *Repository) Start(ctx context.Context, id uuid.UUID, startDate time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sprints SET status = 'active', start_date = $1, updated_at = $1
		WHERE id = $2 AND status = 'planning'`, startDate, id)
	if err != nil {
		return fmt.Errorf("starting sprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sprint %s: expected status planning: %w", id, domainsprint.ErrInvalidTransition)
	}
	return nil
}

func (r *Repository) Complete(ctx context.Context, id uuid.UUID, endDate time.Time, velocity int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sprints SET status = 'completed', end_date = $1, velocity = $2, updated_at = $1
		WHERE id = $3 AND status = 'active'`, endDate, velocity, id)
	if err != nil {
		return fmt.Errorf("completing sprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sprint %s: expected status active: %w", id, domainsprint.ErrInvalidTransition)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	// tasks.sprint_id is ON DELETE SET NULL, so tasks survive their sprint.
	tag, err := r.pool.Exec(ctx, `DELETE FROM sprints WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sprint %s: %w", id, domainsprint.ErrNotFound)
	}
	return nil
}

func scanTargets(s *domainsprint.Sprint) []interface{} {
	return []interface{}{
		&s.ID, &s.ProjectID, &s.Name, &s.Goal, &s.TeamLeadID, &s.AssigneeID, &s.Status,
		&s.Velocity, &s.Capacity, &s.StartDate, &s.EndDate, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	}
}
