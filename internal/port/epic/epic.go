package epic

import (
	"context"

	"github.com/google/uuid"

	domainepic "github.com/alanyang/sprintboard/internal/domain/epic"
)

type Repository interface {
	Create(ctx context.Context, e domainepic.Epic) (domainepic.Epic, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainepic.Epic, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domainepic.Epic, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domainepic.Status) error
}
