package timelog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domaintimelog "github.com/alanyang/sprintboard/internal/domain/timelog"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, e domaintimelog.Entry) (domaintimelog.Entry, error) {
	query := `
		INSERT INTO time_entries (id, task_id, user_id, hours, description, date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, task_id, user_id, hours, description, date, created_at`

	var created domaintimelog.Entry
	var description *string
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.TaskID, e.UserID, e.Hours, nilIfEmpty(e.Description), e.Date, e.CreatedAt,
	).Scan(
		&created.ID, &created.TaskID, &created.UserID, &created.Hours,
		&description, &created.Date, &created.CreatedAt,
	)
	if err != nil {
		return domaintimelog.Entry{}, fmt.Errorf("inserting time entry: %w", err)
	}
	if description != nil {
		created.Description = *description
	}
	return created, nil
}

func (r *Repository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domaintimelog.Entry, error) {
	query := `
		SELECT id, task_id, user_id, hours, description, date, created_at
		FROM time_entries WHERE task_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []domaintimelog.Entry
	for rows.Next() {
		var e domaintimelog.Entry
		var description *string
		if err := rows.Scan(
			&e.ID, &e.TaskID, &e.UserID, &e.Hours,
			&description, &e.Date, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}
		if description != nil {
			e.Description = *description
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entry rows: %w", err)
	}
	return entries, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
