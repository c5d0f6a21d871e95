package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domainactivity "github.com/alanyang/sprintboard/internal/domain/activity"
)

// Repository is append-only: no UPDATE or DELETE statements exist here.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Append(ctx context.Context, e domainactivity.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO task_activity (id, task_id, actor_id, action, field, old_value, new_value, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.TaskID, e.ActorID, e.Action, nilIfEmpty(e.Field), nilIfEmpty(e.OldValue), nilIfEmpty(e.NewValue), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending activity entry: %w", err)
	}
	return nil
}

func (r *Repository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domainactivity.Entry, error) {
	query := `
		SELECT id, task_id, actor_id, action, field, old_value, new_value, created_at
		FROM task_activity WHERE task_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var entries []domainactivity.Entry
	for rows.Next() {
		var e domainactivity.Entry
		var field, oldValue, newValue *string
		if err := rows.Scan(
			&e.ID, &e.TaskID, &e.ActorID, &e.Action,
			&field, &oldValue, &newValue, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		if field != nil {
			e.Field = *field
		}
		if oldValue != nil {
			e.OldValue = *oldValue
		}
		if newValue != nil {
			e.NewValue = *newValue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w", err)
	}
	return entries, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
