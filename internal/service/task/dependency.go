package task

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/event"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
)

// AddDependency records "taskID depends on dependsOnID" after validating the
// graph invariants. Validation and insertion run under a per-project advisory
// lock so two concurrent inserts cannot jointly close a cycle the individual
// checks would each miss.
func (s *Service) AddDependency(ctx context.Context, taskID, dependsOnID uuid.UUID, depType domaintask.DependencyType, actorID uuid.UUID) error {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapAssignTasks) {
		return fmt.Errorf("add dependency: %w", domainuser.ErrPermissionDenied)
	}
	if taskID == dependsOnID {
		return fmt.Errorf("add dependency: %w", domaintask.ErrSelfDependency)
	}
	if !depType.Valid() {
		return fmt.Errorf("add dependency: type %q: %w", depType, domaintask.ErrInvalidInput)
	}

	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if _, err := s.repo.GetByID(ctx, dependsOnID); err != nil {
		return fmt.Errorf("get dependency target: %w", err)
	}

	err = s.locker.WithLock(ctx, dependencyKey(t.ProjectID), func(ctx context.Context) error {
		cyclic, err := s.wouldCreateCycle(ctx, taskID, dependsOnID)
		if err != nil {
			return fmt.Errorf("check for cycles: %w", err)
		}
		if cyclic {
			return domaintask.ErrCircularDependency
		}
		dep := domaintask.Dependency{
			TaskID:      taskID,
			DependsOnID: dependsOnID,
			Type:        depType,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.repo.AddDependency(ctx, dep); err != nil {
			return fmt.Errorf("insert dependency: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("add dependency: %w", err)
	}

	s.bus.Publish(ctx, event.New(event.TypeDependencyAdded, taskID)) //nolint:errcheck
	return nil
}

func (s *Service) RemoveDependency(ctx context.Context, taskID, dependsOnID, actorID uuid.UUID) error {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapAssignTasks) {
		return fmt.Errorf("remove dependency: %w", domainuser.ErrPermissionDenied)
	}
	if err := s.repo.RemoveDependency(ctx, taskID, dependsOnID); err != nil {
		return fmt.Errorf("remove dependency: %w", err)
	}
	return nil
}

func (s *Service) GetDependencies(ctx context.Context, taskID uuid.UUID) ([]domaintask.Task, error) {
	tasks, err := s.repo.GetDependencies(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get dependencies: %w", err)
	}
	return tasks, nil
}

// wouldCreateCycle reports whether inserting taskID→dependsOnID closes a
// cycle: an iterative depth-first walk from dependsOnID over the existing
// depends-on edges. Reaching taskID means the new edge would complete a loop.
// The visited set keeps diamond-shaped graphs linear. Read-only.
func (s *Service) wouldCreateCycle(ctx context.Context, taskID, dependsOnID uuid.UUID) (bool, error) {
	visited := make(map[uuid.UUID]bool)
	stack := []uuid.UUID{dependsOnID}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == taskID {
			return true, nil
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		next, err := s.repo.DependencyIDs(ctx, current)
		if err != nil {
			return false, fmt.Errorf("walk dependencies of %s: %w", current, err)
		}
		for _, id := range next {
			if !visited[id] {
				stack = append(stack, id)
			}
		}
	}
	return false, nil
}

// dependencyKey hashes the project id to a stable int64 for pg_advisory_lock.
func dependencyKey(projectID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(projectID[:])
	h.Write([]byte("dependencies"))
	return int64(h.Sum64())
}
