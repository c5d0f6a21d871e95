package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domainreview "github.com/alanyang/sprintboard/internal/domain/review"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, rev domainreview.Review) (domainreview.Review, error) {
	query := `
		INSERT INTO reviews (id, task_id, submitted_by, reviewer_id, status, notes, rating, submitted_at, reviewed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, task_id, submitted_by, reviewer_id, status, notes, rating, submitted_at, reviewed_at`

	var created domainreview.Review
	var notes *string
	err := r.pool.QueryRow(ctx, query,
		rev.ID, rev.TaskID, rev.SubmittedBy, rev.ReviewerID, rev.Status,
		nilIfEmpty(rev.Notes), rev.Rating, rev.SubmittedAt, rev.ReviewedAt,
	).Scan(
		&created.ID, &created.TaskID, &created.SubmittedBy, &created.ReviewerID,
		&created.Status, &notes, &created.Rating, &created.SubmittedAt, &created.ReviewedAt,
	)
	if err != nil {
		return domainreview.Review{}, fmt.Errorf("inserting review: %w", err)
	}
	if notes != nil {
		created.Notes = *notes
	}
	return created, nil
}

func (r *Repository) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]domainreview.Review, error) {
	query := `
		SELECT id, task_id, submitted_by, reviewer_id, status, notes, rating, submitted_at, reviewed_at
		FROM reviews WHERE task_id = $1 ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domainreview.Review
	for rows.Next() {
		var rev domainreview.Review
		var notes *string
		if err := rows.Scan(
			&rev.ID, &rev.TaskID, &rev.SubmittedBy, &rev.ReviewerID,
			&rev.Status, &notes, &rev.Rating, &rev.SubmittedAt, &rev.ReviewedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		if notes != nil {
			rev.Notes = *notes
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review rows: %w", err)
	}
	return reviews, nil
}

// CompleteLatest closes the most recent open review record for the task.
func (r *Repository) CompleteLatest(ctx context.Context, taskID uuid.UUID, status domainreview.Status, notes string, reviewedAt time.Time) error {
	query := `
		UPDATE reviews SET status = $1, notes = $2, reviewed_at = $3
		WHERE id = (
			SELECT id FROM reviews
			WHERE task_id = $4 AND status = 'in_review'
			ORDER BY submitted_at DESC LIMIT 1
		)`

	tag, err := r.pool.Exec(ctx, query, string(status), nilIfEmpty(notes), reviewedAt, taskID)
	if err != nil {
		return fmt.Errorf("completing review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("open review for task %s: %w", taskID, domainreview.ErrNotFound)
	}
	return nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
