package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainreview "github.com/alanyang/sprintboard/internal/domain/review"
	portreview "github.com/alanyang/sprintboard/internal/port/review"
	porttask "github.com/alanyang/sprintboard/internal/port/task"
)

type Service struct {
	repo  portreview.Repository
	tasks porttask.Repository
}

func NewService(repo portreview.Repository, tasks porttask.Repository) *Service {
	return &Service{repo: repo, tasks: tasks}
}

// ListByTask returns the task's review history, newest first.
func (s *Service) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domainreview.Review, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	reviews, err := s.repo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
