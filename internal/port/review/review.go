package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainreview "github.com/alanyang/sprintboard/internal/domain/review"
)

type Repository interface {
	Create(ctx context.Context, r domainreview.Review) (domainreview.Review, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]domainreview.Review, error)
	// CompleteLatest closes the most recent in_review record for the task.
	CompleteLatest(ctx context.Context, taskID uuid.UUID, status domainreview.Status, notes string, reviewedAt time.Time) error
}
