package notifier

import (
	"context"

	"github.com/google/uuid"

	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
)

// Notifier fans a workflow event out to interested users. Implementations
// must be best-effort: a failure for one recipient must not block the others,
// and callers never let a notify error fail the primary write.
// The actor is always excluded — no self-notification.
type Notifier interface {
	Notify(ctx context.Context, recipients []uuid.UUID, actorID uuid.UUID, typ domainnotification.Type, message string, ref domainnotification.Ref) error
}
