package comment

import (
	"context"

	"github.com/google/uuid"

	domaincomment "github.com/alanyang/sprintboard/internal/domain/comment"
)

type Repository interface {
	Create(ctx context.Context, c domaincomment.Comment) (domaincomment.Comment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domaincomment.Comment, error)
}
