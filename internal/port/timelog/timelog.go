package timelog

import (
	"context"

	"github.com/google/uuid"

	domaintimelog "github.com/alanyang/sprintboard/internal/domain/timelog"
)

type Repository interface {
	Create(ctx context.Context, e domaintimelog.Entry) (domaintimelog.Entry, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domaintimelog.Entry, error)
}
