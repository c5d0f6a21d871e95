package epic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainepic "github.com/alanyang/sprintboard/internal/domain/epic"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	portepic "github.com/alanyang/sprintboard/internal/port/epic"
	portproject "github.com/alanyang/sprintboard/internal/port/project"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

type Service struct {
	repo     portepic.Repository
	projects portproject.Repository
	users    portuser.Repository
}

func NewService(repo portepic.Repository, projects portproject.Repository, users portuser.Repository) *Service {
	return &Service{repo: repo, projects: projects, users: users}
}

func (s *Service) Create(ctx context.Context, projectID uuid.UUID, name, description string, actorID uuid.UUID) (domainepic.Epic, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domainepic.Epic{}, fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageProjects) {
		return domainepic.Epic{}, fmt.Errorf("create epic: %w", domainuser.ErrPermissionDenied)
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return domainepic.Epic{}, fmt.Errorf("get project: %w", err)
	}

	created, err := s.repo.Create(ctx, domainepic.New(projectID, name, description, actorID))
	if err != nil {
		return domainepic.Epic{}, fmt.Errorf("create epic: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainepic.Epic, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainepic.Epic{}, fmt.Errorf("get epic: %w", err)
	}
	return e, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domainepic.Epic, error) {
	epics, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list epics: %w", err)
	}
	return epics, nil
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domainepic.Status, actorID uuid.UUID) error {
	if !status.Valid() {
		return fmt.Errorf("epic status %q: %w", status, domainepic.ErrInvalidStatus)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapUpdateAnyTask) {
		return fmt.Errorf("set epic status: %w", domainuser.ErrPermissionDenied)
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set epic status: %w", err)
	}
	return nil
}
