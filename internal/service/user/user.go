package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	portuser "github.com/alanyang/sprintboard/internal/port/user"
)

type Service struct {
	repo portuser.Repository
}

func NewService(repo portuser.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, username, email string, role domainuser.Role, actorID uuid.UUID) (domainuser.User, error) {
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return domainuser.User{}, fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageUsers) {
		return domainuser.User{}, fmt.Errorf("create user: %w", domainuser.ErrPermissionDenied)
	}
	if !role.Valid() {
		return domainuser.User{}, fmt.Errorf("create user: role %q: %w", role, domainuser.ErrInvalidRole)
	}

	u := domainuser.New(username, email, role)
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return domainuser.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainuser.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainuser.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, role *domainuser.Role) ([]domainuser.User, error) {
	if role != nil && !role.Valid() {
		return nil, fmt.Errorf("list users: role %q: %w", *role, domainuser.ErrInvalidRole)
	}
	users, err := s.repo.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes a user. The repository enforces referential rules: deletion
// fails while the user still reports tasks or owns projects, and open
// assignee/reviewer/tester references are cleared.
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapManageUsers) {
		return fmt.Errorf("delete user: %w", domainuser.ErrPermissionDenied)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
