package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	portnotification "github.com/alanyang/sprintboard/internal/port/notification"
)

type Service struct {
	repo portnotification.Repository
}

func NewService(repo portnotification.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]domainnotification.Notification, error) {
	notifications, err := s.repo.ListByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips a single notification; the recipient scoping keeps users
// from acknowledging each other's notifications.
func (s *Service) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id, recipientID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := s.repo.MarkAllRead(ctx, recipientID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
