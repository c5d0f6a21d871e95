package sprint

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainsprint "github.com/alanyang/sprintboard/internal/domain/sprint"
)

type Repository interface {
	Create(ctx context.Context, s domainsprint.Sprint) (domainsprint.Sprint, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainsprint.Sprint, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domainsprint.Sprint, error)

	// Start performs a CAS planning→active update and stamps the start date.
	Start(ctx context.Context, id uuid.UUID, startDate time.Time) error
	// Complete performs a CAS active→completed update, stamping the end date
	// and the final velocity.
	Complete(ctx context.Context, id uuid.UUID, endDate time.Time, velocity int) error

	// Delete leaves the sprint's tasks in place with sprint_id set to NULL.
	Delete(ctx context.Context, id uuid.UUID) error
}
