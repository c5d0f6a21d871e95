package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
)

type Repository interface {
	Create(ctx context.Context, t domaintask.Task) (domaintask.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error)
	List(ctx context.Context, filters domaintask.ListFilters) ([]domaintask.Task, error)
	Update(ctx context.Context, t domaintask.Task) error

	// UpdateStatus performs an atomic CAS: only transitions if current status
	// matches `from`. Entering in_progress stamps started_at (first time only),
	// entering done stamps completed_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domaintask.Status) error

	Assign(ctx context.Context, taskID, userID uuid.UUID) error

	// OpenCodeReview atomically moves the task from `from` to code_review,
	// assigns the reviewer and opens the gate (in_review) in one statement.
	OpenCodeReview(ctx context.Context, taskID, reviewerID uuid.UUID, from domaintask.Status) error
	// SetCodeReviewOutcome atomically records the verdict and routes the task
	// to `next`, guarded by the current code_review status. Approval re-arms
	// the testing gate (pending, no tester, no stale notes).
	SetCodeReviewOutcome(ctx context.Context, taskID uuid.UUID, status domaintask.CodeReviewStatus, notes string, next domaintask.Status, completedAt time.Time) error
	// SetTester assigns a tester and moves the testing gate to in_testing.
	SetTester(ctx context.Context, taskID, testerID uuid.UUID) error
	// SetTestingOutcome atomically records the verdict and routes the task to
	// `next`, guarded by status=testing and an open (in_testing) gate.
	// Routing to done stamps completed_at.
	SetTestingOutcome(ctx context.Context, taskID uuid.UUID, status domaintask.TestingStatus, notes string, next domaintask.Status, completedAt time.Time) error

	AddDependency(ctx context.Context, dep domaintask.Dependency) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID uuid.UUID) error
	// DependencyIDs returns the ids the given task directly depends on.
	// The cycle check walks these edges one node at a time.
	DependencyIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error)
	GetDependencies(ctx context.Context, taskID uuid.UUID) ([]domaintask.Task, error)
	CountDependencies(ctx context.Context, taskID uuid.UUID) (int, error)

	// CountByProject returns (total, done) task counts for progress recomputation.
	CountByProject(ctx context.Context, projectID uuid.UUID) (total, done int, err error)
	// SumEstimatedDoneBySprint backs sprint velocity: estimated hours of done tasks.
	SumEstimatedDoneBySprint(ctx context.Context, sprintID uuid.UUID) (int, error)
	// AssigneeIDsBySprint returns the distinct assignees of a sprint's tasks.
	AssigneeIDsBySprint(ctx context.Context, sprintID uuid.UUID) ([]uuid.UUID, error)
	AddActualHours(ctx context.Context, taskID uuid.UUID, hours float64) error
	// StatusCounts returns task counts grouped by status for a project.
	StatusCounts(ctx context.Context, projectID uuid.UUID) (map[domaintask.Status]int, error)
}
