// Package notifier implements the notification fan-out: one stored
// notification per recipient, decoupled from the workflow write that
// triggered it.
package notifier

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	portbus "github.com/alanyang/sprintboard/internal/port/eventbus"
	portnotification "github.com/alanyang/sprintboard/internal/port/notification"
)

type Service struct {
	repo portnotification.Repository
	bus  portbus.EventBus
}

func NewService(repo portnotification.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Notify creates one notification row per recipient. The actor is excluded
// and duplicates are collapsed. A failed insert for one recipient is logged
// and the rest still go out; the returned error is advisory only — callers
// never fail their primary write on it.
func (s *Service) Notify(ctx context.Context, recipients []uuid.UUID, actorID uuid.UUID, typ domainnotification.Type, message string, ref domainnotification.Ref) error {
	seen := make(map[uuid.UUID]bool, len(recipients))
	var firstErr error

	for _, recipient := range recipients {
		if recipient == actorID || seen[recipient] {
			continue
		}
		seen[recipient] = true

		n := domainnotification.New(recipient, &actorID, typ, message, ref)
		created, err := s.repo.Create(ctx, n)
		if err != nil {
			slog.ErrorContext(ctx, "failed to store notification",
				"recipient_id", recipient, "type", typ, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.bus.Publish(ctx, event.New(event.TypeNotificationSent, created.ID)) //nolint:errcheck
	}
	return firstErr
}
