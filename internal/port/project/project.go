package project

import (
	"context"

	"github.com/google/uuid"

	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
)

type Repository interface {
	Create(ctx context.Context, p domainproject.Project) (domainproject.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error)
	List(ctx context.Context) ([]domainproject.Project, error)
	SetProgress(ctx context.Context, id uuid.UUID, progress int) error
	// Delete cascades to sprints, tasks, dependencies, reviews, comments,
	// time logs and activity via foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error
}
