package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, n domainnotification.Notification) (domainnotification.Notification, error) {
	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, type, task_id, sprint_id, message, is_read, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, recipient_id, sender_id, type, task_id, sprint_id, message, is_read, created_at`

	var created domainnotification.Notification
	err := r.pool.QueryRow(ctx, query,
		n.ID, n.RecipientID, n.SenderID, n.Type, n.TaskID, n.SprintID, n.Message, n.IsRead, n.CreatedAt,
	).Scan(
		&created.ID, &created.RecipientID, &created.SenderID, &created.Type,
		&created.TaskID, &created.SprintID, &created.Message, &created.IsRead, &created.CreatedAt,
	)
	if err != nil {
		return domainnotification.Notification{}, fmt.Errorf("inserting notification: %w", err)
	}
	return created, nil
}

func (r *Repository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]domainnotification.Notification, error) {
	query := `
		SELECT id, recipient_id, sender_id, type, task_id, sprint_id, message, is_read, created_at
		FROM notifications WHERE recipient_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domainnotification.Notification
	for rows.Next() {
		var n domainnotification.Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.Type,
			&n.TaskID, &n.SprintID, &n.Message, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *Repository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domainnotification.ErrNotFound)
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE recipient_id = $1 AND NOT is_read`, recipientID)
	if err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}
