package timelog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/activity"
	domaintimelog "github.com/alanyang/sprintboard/internal/domain/timelog"
	portactivity "github.com/alanyang/sprintboard/internal/port/activity"
	porttask "github.com/alanyang/sprintboard/internal/port/task"
	porttimelog "github.com/alanyang/sprintboard/internal/port/timelog"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

type Service struct {
	repo       porttimelog.Repository
	tasks      porttask.Repository
	users      portuser.Repository
	activities portactivity.Repository
}

func NewService(
	repo porttimelog.Repository,
	tasks porttask.Repository,
	users portuser.Repository,
	activities portactivity.Repository,
) *Service {
	return &Service{repo: repo, tasks: tasks, users: users, activities: activities}
}

// Log records hours worked on a task and rolls them into the task's actual
// hours total.
func (s *Service) Log(ctx context.Context, taskID uuid.UUID, hours float64, description string, date time.Time, actorID uuid.UUID) (domaintimelog.Entry, error) {
	if hours <= 0 {
		return domaintimelog.Entry{}, fmt.Errorf("log time: %.2f: %w", hours, domaintimelog.ErrInvalidHours)
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return domaintimelog.Entry{}, fmt.Errorf("get task: %w", err)
	}
	if _, err := s.users.GetByID(ctx, actorID); err != nil {
		return domaintimelog.Entry{}, fmt.Errorf("get actor: %w", err)
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := domaintimelog.New(taskID, actorID, hours, description, date)
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domaintimelog.Entry{}, fmt.Errorf("log time: %w", err)
	}
	if err := s.tasks.AddActualHours(ctx, taskID, hours); err != nil {
		return domaintimelog.Entry{}, fmt.Errorf("roll up actual hours: %w", err)
	}

	a := activity.New(taskID, actorID, activity.ActionTimeLogged, "actual_hours", "", fmt.Sprintf("%.2f", hours))
	if err := s.activities.Append(ctx, a); err != nil {
		slog.ErrorContext(ctx, "failed to append activity entry", "task_id", taskID, "error", err)
	}
	return created, nil
}

func (s *Service) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domaintimelog.Entry, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	entries, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return entries, nil
}
