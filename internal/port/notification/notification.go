package notification

import (
	"context"

	"github.com/google/uuid"

	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
)

type Repository interface {
	Create(ctx context.Context, n domainnotification.Notification) (domainnotification.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]domainnotification.Notification, error)
	// MarkRead flips is_read for a single notification owned by recipientID.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}
