package activity

import (
	"context"

	"github.com/google/uuid"

	domainactivity "github.com/alanyang/sprintboard/internal/domain/activity"
)

// Repository is append-only: entries are never updated or deleted by
// application code.
type Repository interface {
	Append(ctx context.Context, e domainactivity.Entry) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domainactivity.Entry, error)
}
