package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	portproject "github.com/alanyang/sprintboard/internal/port/project"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

type Service struct {
	repo  portproject.Repository
	users portuser.Repository
}

func NewService(repo portproject.Repository, users portuser.Repository) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) Create(ctx context.Context, key, name, description string, actorID uuid.UUID) (domainproject.Project, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageProjects) {
		return domainproject.Project{}, fmt.Errorf("create project: %w", domainuser.ErrPermissionDenied)
	}

	p := domainproject.New(key, name, description, actorID)
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domainproject.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Delete removes the project and, through foreign keys, everything under it:
// sprints, tasks, dependencies, reviews, comments, time logs, activity.
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageProjects) {
		return fmt.Errorf("delete project: %w", domainuser.ErrPermissionDenied)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
