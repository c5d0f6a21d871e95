package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domaincomment "github.com/alanyang/sprintboard/internal/domain/comment"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, c domaincomment.Comment) (domaincomment.Comment, error) {
	query := `
		INSERT INTO comments (id, task_id, user_id, content, parent_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, task_id, user_id, content, parent_id, created_at, updated_at`

	var created domaincomment.Comment
	err := r.pool.QueryRow(ctx, query,
		c.ID, c.TaskID, c.UserID, c.Content, c.ParentID, c.CreatedAt, c.UpdatedAt,
	).Scan(
		&created.ID, &created.TaskID, &created.UserID, &created.Content,
		&created.ParentID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return domaincomment.Comment{}, fmt.Errorf("inserting comment: %w", err)
	}
	return created, nil
}

func (r *Repository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domaincomment.Comment, error) {
	query := `
		SELECT id, task_id, user_id, content, parent_id, created_at, updated_at
		FROM comments WHERE task_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	var comments []domaincomment.Comment
	for rows.Next() {
		var c domaincomment.Comment
		if err := rows.Scan(
			&c.ID, &c.TaskID, &c.UserID, &c.Content,
			&c.ParentID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comment rows: %w", err)
	}
	return comments, nil
}
