package sprint

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	domainsprint "github.com/alanyang/sprintboard/internal/domain/sprint"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	portbus "github.com/alanyang/sprintboard/internal/port/eventbus"
	portnotifier "github.com/alanyang/sprintboard/internal/port/notifier"
	portproject "github.com/alanyang/sprintboard/internal/port/project"
	portsprint "github.com/alanyang/sprintboard/internal/port/sprint"
	porttask "github.com/alanyang/sprintboard/internal/port/task"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

type Service struct {
	repo     portsprint.Repository
	projects portproject.Repository
	tasks    porttask.Repository
	users    portuser.Repository
	notifier portnotifier.Notifier
	bus      portbus.EventBus
}

func NewService(
	repo portsprint.Repository,
	projects portproject.Repository,
	tasks porttask.Repository,
	users portuser.Repository,
	notifier portnotifier.Notifier,
	bus portbus.EventBus,
) *Service {
	return &Service{repo: repo, projects: projects, tasks: tasks, users: users, notifier: notifier, bus: bus}
}

func (s *Service) Create(ctx context.Context, projectID uuid.UUID, name, goal string, teamLeadID *uuid.UUID, capacity int, actorID uuid.UUID) (domainsprint.Sprint, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageSprints) {
		return domainsprint.Sprint{}, fmt.Errorf("create sprint: %w", domainuser.ErrPermissionDenied)
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get project: %w", err)
	}
	if teamLeadID != nil {
		if _, err := s.users.GetByID(ctx, *teamLeadID); err != nil {
			return domainsprint.Sprint{}, fmt.Errorf("get team lead: %w", err)
		}
	}

	sp := domainsprint.New(projectID, name, goal, teamLeadID, capacity, actorID)
	created, err := s.repo.Create(ctx, sp)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("create sprint: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainsprint.Sprint, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get sprint: %w", err)
	}
	return sp, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domainsprint.Sprint, error) {
	sprints, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sprints: %w", err)
	}
	return sprints, nil
}

// Start activates a planning sprint. Only the sprint's team lead or a user
// who can manage sprints may start it. Everyone with tasks in the sprint is
// notified.
func (s *Service) Start(ctx context.Context, id, actorID uuid.UUID) (domainsprint.Sprint, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get actor: %w", err)
	}
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get sprint: %w", err)
	}
	isLead := sp.TeamLeadID != nil && *sp.TeamLeadID == actorID
	if !isLead && !actor.Role.Can(domainuser.CapManageSprints) {
		return domainsprint.Sprint{}, fmt.Errorf("start sprint: %w", domainuser.ErrPermissionDenied)
	}
	if !sp.Status.CanTransitionTo(domainsprint.StatusActive) {
		return domainsprint.Sprint{}, fmt.Errorf("start sprint: sprint %s is %s: %w", id, sp.Status, domainsprint.ErrInvalidTransition)
	}

	now := time.Now().UTC()
	if err := s.repo.Start(ctx, id, now); err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("start sprint: %w", err)
	}

	assignees, err := s.tasks.AssigneeIDsBySprint(ctx, id)
	if err != nil {
		assignees = nil // fan-out stays best-effort
	}
	s.notifier.Notify(ctx, assignees, actorID, //nolint:errcheck
		domainnotification.TypeSprintStarted,
		fmt.Sprintf("Sprint %q has started", sp.Name),
		domainnotification.Ref{SprintID: &sp.ID})
	s.bus.Publish(ctx, event.New(event.TypeSprintStarted, id)) //nolint:errcheck

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("fetch sprint after start: %w", err)
	}
	return updated, nil
}

// Complete closes an active sprint and fixes its velocity: the sum of
// estimated hours of the sprint's done tasks at the moment of completion.
func (s *Service) Complete(ctx context.Context, id, actorID uuid.UUID) (domainsprint.Sprint, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get actor: %w", err)
	}
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("get sprint: %w", err)
	}
	isLead := sp.TeamLeadID != nil && *sp.TeamLeadID == actorID
	if !isLead && !actor.Role.Can(domainuser.CapManageSprints) {
		return domainsprint.Sprint{}, fmt.Errorf("complete sprint: %w", domainuser.ErrPermissionDenied)
	}
	if !sp.Status.CanTransitionTo(domainsprint.StatusCompleted) {
		return domainsprint.Sprint{}, fmt.Errorf("complete sprint: sprint %s is %s: %w", id, sp.Status, domainsprint.ErrInvalidTransition)
	}

	velocity, err := s.tasks.SumEstimatedDoneBySprint(ctx, id)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("compute velocity: %w", err)
	}

	now := time.Now().UTC()
	if err := s.repo.Complete(ctx, id, now, velocity); err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("complete sprint: %w", err)
	}

	assignees, err := s.tasks.AssigneeIDsBySprint(ctx, id)
	if err != nil {
		assignees = nil
	}
	s.notifier.Notify(ctx, assignees, actorID, //nolint:errcheck
		domainnotification.TypeSprintCompleted,
		fmt.Sprintf("Sprint %q has been completed", sp.Name),
		domainnotification.Ref{SprintID: &sp.ID})
	s.bus.Publish(ctx, event.New(event.TypeSprintCompleted, id)) //nolint:errcheck

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainsprint.Sprint{}, fmt.Errorf("fetch sprint after completion: %w", err)
	}
	return updated, nil
}

// Delete removes the sprint; its tasks survive with sprint_id cleared.
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageSprints) {
		return fmt.Errorf("delete sprint: %w", domainuser.ErrPermissionDenied)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sprint: %w", err)
	}
	return nil
}
