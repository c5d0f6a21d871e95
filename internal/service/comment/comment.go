package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/activity"
	domaincomment "github.com/alanyang/sprintboard/internal/domain/comment"
	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	portactivity "github.com/alanyang/sprintboard/internal/port/activity"
	portcomment "github.com/alanyang/sprintboard/internal/port/comment"
	portbus "github.com/alanyang/sprintboard/internal/port/eventbus"
	portnotifier "github.com/alanyang/sprintboard/internal/port/notifier"
	porttask "github.com/alanyang/sprintboard/internal/port/task"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

type Service struct {
	repo       portcomment.Repository
	tasks      porttask.Repository
	users      portuser.Repository
	activities portactivity.Repository
	notifier   portnotifier.Notifier
	bus        portbus.EventBus
}

func NewService(
	repo portcomment.Repository,
	tasks porttask.Repository,
	users portuser.Repository,
	activities portactivity.Repository,
	notifier portnotifier.Notifier,
	bus portbus.EventBus,
) *Service {
	return &Service{repo: repo, tasks: tasks, users: users, activities: activities, notifier: notifier, bus: bus}
}

// Create posts a comment on a task. The task's assignee and reporter are
// notified, minus the author.
func (s *Service) Create(ctx context.Context, taskID uuid.UUID, content string, parentID *uuid.UUID, actorID uuid.UUID) (domaincomment.Comment, error) {
	if content == "" {
		return domaincomment.Comment{}, fmt.Errorf("create comment: empty content: %w", domaincomment.ErrInvalidContent)
	}
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domaincomment.Comment{}, fmt.Errorf("get task: %w", err)
	}
	if _, err := s.users.GetByID(ctx, actorID); err != nil {
		return domaincomment.Comment{}, fmt.Errorf("get actor: %w", err)
	}

	c := domaincomment.New(taskID, actorID, content, parentID)
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domaincomment.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	entry := activity.New(taskID, actorID, activity.ActionCommented, "comment", "", created.ID.String())
	if err := s.activities.Append(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to append activity entry", "task_id", taskID, "error", err)
	}

	recipients := []uuid.UUID{t.ReporterID}
	if t.AssigneeID != nil {
		recipients = append(recipients, *t.AssigneeID)
	}
	s.notifier.Notify(ctx, recipients, actorID, //nolint:errcheck
		domainnotification.TypeCommentAdded,
		fmt.Sprintf("New comment on task %q", t.Title),
		domainnotification.Ref{TaskID: &t.ID})
	s.bus.Publish(ctx, event.New(event.TypeCommentAdded, taskID)) //nolint:errcheck

	return created, nil
}

func (s *Service) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domaincomment.Comment, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	comments, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
