package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/activity"
	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	portactivity "github.com/alanyang/sprintboard/internal/port/activity"
	portbus "github.com/alanyang/sprintboard/internal/port/eventbus"
	portlocker "github.com/alanyang/sprintboard/internal/port/locker"
	portnotifier "github.com/alanyang/sprintboard/internal/port/notifier"
	portproject "github.com/alanyang/sprintboard/internal/port/project"
	portreview "github.com/alanyang/sprintboard/internal/port/review"
	porttask "github.com/alanyang/sprintboard/internal/port/task"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

// Service owns the task workflow: the status state machine, the review and
// testing gates, and the dependency graph. Every mutation goes through an
// explicit operation that checks the actor's permission before touching the
// store; the activity log, project progress and notifications ride along as
// side effects of accepted transitions.
type Service struct {
	repo       porttask.Repository
	users      portuser.Repository
	projects   portproject.Repository
	reviews    portreview.Repository
	activities portactivity.Repository
	notifier   portnotifier.Notifier
	bus        portbus.EventBus
	locker     portlocker.AdvisoryLocker
}

func NewService(
	repo porttask.Repository,
	users portuser.Repository,
	projects portproject.Repository,
	reviews portreview.Repository,
	activities portactivity.Repository,
	notifier portnotifier.Notifier,
	bus portbus.EventBus,
	locker portlocker.AdvisoryLocker,
) *Service {
	return &Service{
		repo:       repo,
		users:      users,
		projects:   projects,
		reviews:    reviews,
		activities: activities,
		notifier:   notifier,
		bus:        bus,
		locker:     locker,
	}
}

type CreateParams struct {
	ProjectID      uuid.UUID
	SprintID       *uuid.UUID
	EpicID         *uuid.UUID
	ParentID       *uuid.UUID
	Type           domaintask.Type
	Title          string
	Description    string
	Priority       domaintask.Priority
	AssigneeID     *uuid.UUID
	EstimatedHours int
	DueDate        *time.Time
	Labels         []string
}

func (s *Service) Create(ctx context.Context, p CreateParams, reporterID uuid.UUID) (domaintask.Task, error) {
	if !p.Type.Valid() {
		return domaintask.Task{}, fmt.Errorf("create task: type %q: %w", p.Type, domaintask.ErrInvalidInput)
	}
	if !p.Priority.Valid() {
		return domaintask.Task{}, fmt.Errorf("create task: priority %q: %w", p.Priority, domaintask.ErrInvalidInput)
	}
	if p.EstimatedHours < 0 {
		return domaintask.Task{}, fmt.Errorf("create task: negative estimate: %w", domaintask.ErrInvalidInput)
	}

	t := domaintask.New(p.ProjectID, p.Type, p.Title, p.Description, p.Priority, reporterID)
	t.SprintID = p.SprintID
	t.EpicID = p.EpicID
	t.ParentID = p.ParentID
	t.AssigneeID = p.AssigneeID
	t.EstimatedHours = p.EstimatedHours
	t.DueDate = p.DueDate
	if len(p.Labels) > 0 {
		t.Labels = p.Labels
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.logActivity(ctx, created.ID, reporterID, activity.ActionCreated, "", "", string(created.Status))
	s.refreshProgress(ctx, created.ProjectID)

	if created.AssigneeID != nil {
		s.notifier.Notify(ctx, []uuid.UUID{*created.AssigneeID}, reporterID, //nolint:errcheck
			domainnotification.TypeTaskAssigned,
			fmt.Sprintf("You have been assigned task %q", created.Title),
			domainnotification.Ref{TaskID: &created.ID})
	}
	s.bus.Publish(ctx, event.New(event.TypeTaskCreated, created.ID)) //nolint:errcheck

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, filters domaintask.ListFilters) ([]domaintask.Task, error) {
	tasks, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Transition applies a status change on behalf of actorID. The operation is
// all-or-nothing: any permission, legality or gate failure rejects before the
// first write, and the write itself is a single CAS row update.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, to domaintask.Status, actorID uuid.UUID) (domaintask.Task, error) {
	if !to.Valid() {
		return domaintask.Task{}, fmt.Errorf("transition task: %q: %w", to, domaintask.ErrInvalidStatus)
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get actor: %w", err)
	}

	if !canChangeStatus(actor, t) {
		return domaintask.Task{}, fmt.Errorf("transition task %s: %w", id, domainuser.ErrPermissionDenied)
	}
	if !t.Status.CanTransitionTo(to) {
		return domaintask.Task{}, fmt.Errorf("transition task %s from %s to %s: %w", id, t.Status, to, domaintask.ErrInvalidTransition)
	}
	if to == domaintask.StatusTesting && t.CodeReviewStatus != domaintask.CodeReviewApproved {
		return domaintask.Task{}, fmt.Errorf("transition task %s: %w", id, domaintask.ErrReviewGateClosed)
	}
	if to == domaintask.StatusDone && t.TestingStatus != domaintask.TestingPassed {
		return domaintask.Task{}, fmt.Errorf("transition task %s: %w", id, domaintask.ErrTestingGateClosed)
	}

	if err := s.repo.UpdateStatus(ctx, id, t.Status, to); err != nil {
		return domaintask.Task{}, fmt.Errorf("update task status: %w", err)
	}

	s.logActivity(ctx, id, actorID, activity.ActionStatusChanged, "status", string(t.Status), string(to))
	s.refreshProgress(ctx, t.ProjectID)

	switch to {
	case domaintask.StatusSubmitted:
		s.notifier.Notify(ctx, []uuid.UUID{t.ReporterID}, actorID, //nolint:errcheck
			domainnotification.TypeTaskSubmitted,
			fmt.Sprintf("Task %q has been submitted for review", t.Title),
			domainnotification.Ref{TaskID: &t.ID})
	case domaintask.StatusDone:
		if t.AssigneeID != nil {
			s.notifier.Notify(ctx, []uuid.UUID{*t.AssigneeID}, actorID, //nolint:errcheck
				domainnotification.TypeTaskCompleted,
				fmt.Sprintf("Task %q is done", t.Title),
				domainnotification.Ref{TaskID: &t.ID})
		}
	}

	s.bus.Publish(ctx, event.New(event.TypeTaskUpdated, id)) //nolint:errcheck
	if to == domaintask.StatusDone {
		s.bus.Publish(ctx, event.New(event.TypeTaskCompleted, id)) //nolint:errcheck
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("fetch task after transition: %w", err)
	}
	return updated, nil
}

// Assign hands the task to a new assignee. Requires the assign_tasks capability.
func (s *Service) Assign(ctx context.Context, taskID, assigneeID, actorID uuid.UUID) error {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapAssignTasks) {
		return fmt.Errorf("assign task %s: %w", taskID, domainuser.ErrPermissionDenied)
	}
	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if _, err := s.users.GetByID(ctx, assigneeID); err != nil {
		return fmt.Errorf("get assignee: %w", err)
	}

	if err := s.repo.Assign(ctx, taskID, assigneeID); err != nil {
		return fmt.Errorf("assign task: %w", err)
	}

	s.logActivity(ctx, taskID, actorID, activity.ActionAssigned, "assignee", "", assigneeID.String())
	s.notifier.Notify(ctx, []uuid.UUID{assigneeID}, actorID, //nolint:errcheck
		domainnotification.TypeTaskAssigned,
		fmt.Sprintf("You have been assigned task %q", t.Title),
		domainnotification.Ref{TaskID: &t.ID})
	s.bus.Publish(ctx, event.New(event.TypeTaskAssigned, taskID)) //nolint:errcheck

	return nil
}

func (s *Service) Activity(ctx context.Context, taskID uuid.UUID) ([]activity.Entry, error) {
	entries, err := s.activities.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task activity: %w", err)
	}
	return entries, nil
}

// canChangeStatus implements the transition permission rule: the assignee,
// the assigned reviewer (while in code review), the assigned tester (while in
// testing), or anyone holding update_any_task.
func canChangeStatus(actor domainuser.User, t domaintask.Task) bool {
	if actor.Role.Can(domainuser.CapUpdateAnyTask) {
		return true
	}
	if t.AssigneeID != nil && *t.AssigneeID == actor.ID {
		return true
	}
	if t.Status == domaintask.StatusCodeReview && t.CodeReviewerID != nil && *t.CodeReviewerID == actor.ID {
		return true
	}
	if t.Status == domaintask.StatusTesting && t.TesterID != nil && *t.TesterID == actor.ID {
		return true
	}
	return false
}

// logActivity appends an audit entry. The transition itself is the atomic
// unit; an audit write failure is logged, not propagated.
func (s *Service) logActivity(ctx context.Context, taskID, actorID uuid.UUID, action activity.Action, field, oldValue, newValue string) {
	e := activity.New(taskID, actorID, action, field, oldValue, newValue)
	if err := s.activities.Append(ctx, e); err != nil {
		slog.ErrorContext(ctx, "failed to append activity entry", "task_id", taskID, "action", action, "error", err)
	}
}

// refreshProgress recomputes the owning project's completed percentage from
// live task counts.
func (s *Service) refreshProgress(ctx context.Context, projectID uuid.UUID) {
	total, done, err := s.repo.CountByProject(ctx, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count project tasks", "project_id", projectID, "error", err)
		return
	}
	if err := s.projects.SetProgress(ctx, projectID, domainproject.Progress(done, total)); err != nil {
		slog.ErrorContext(ctx, "failed to update project progress", "project_id", projectID, "error", err)
	}
}
