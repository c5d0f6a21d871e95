// Package stats computes project and sprint reporting snapshots. Snapshots
// are cached briefly since dashboards poll them far more often than the
// underlying tasks change.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	portproject "github.com/alanyang/sprintboard/internal/port/project"
	portsprint "github.com/alanyang/sprintboard/internal/port/sprint"
	porttask "github.com/alanyang/sprintboard/internal/port/task"
)

const snapshotTTL = 30 * time.Second

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type ProjectStats struct {
	ProjectID    uuid.UUID                 `json:"project_id"`
	Progress     int                       `json:"progress"`
	TotalTasks   int                       `json:"total_tasks"`
	DoneTasks    int                       `json:"done_tasks"`
	StatusCounts map[domaintask.Status]int `json:"status_counts"`
	GeneratedAt  time.Time                 `json:"generated_at"`
}

type SprintStats struct {
	SprintID    uuid.UUID `json:"sprint_id"`
	Status      string    `json:"status"`
	Velocity    int       `json:"velocity"`
	Capacity    int       `json:"capacity"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Service struct {
	tasks    porttask.Repository
	projects portproject.Repository
	sprints  portsprint.Repository
	cache    Cache
}

func NewService(tasks porttask.Repository, projects portproject.Repository, sprints portsprint.Repository, cache Cache) *Service {
	return &Service{tasks: tasks, projects: projects, sprints: sprints, cache: cache}
}

func (s *Service) Project(ctx context.Context, projectID uuid.UUID) (ProjectStats, error) {
	key := "stats:project:" + projectID.String()
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached ProjectStats
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return ProjectStats{}, fmt.Errorf("get project: %w", err)
	}
	counts, err := s.tasks.StatusCounts(ctx, projectID)
	if err != nil {
		return ProjectStats{}, fmt.Errorf("count task statuses: %w", err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	done := counts[domaintask.StatusDone]

	snapshot := ProjectStats{
		ProjectID:    projectID,
		Progress:     domainproject.Progress(done, total),
		TotalTasks:   total,
		DoneTasks:    done,
		StatusCounts: counts,
		GeneratedAt:  time.Now().UTC(),
	}
	if raw, err := json.Marshal(snapshot); err == nil {
		s.cache.Set(ctx, key, raw, snapshotTTL) //nolint:errcheck
	}
	return snapshot, nil
}

func (s *Service) Sprint(ctx context.Context, sprintID uuid.UUID) (SprintStats, error) {
	key := "stats:sprint:" + sprintID.String()
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached SprintStats
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	sp, err := s.sprints.GetByID(ctx, sprintID)
	if err != nil {
		return SprintStats{}, fmt.Errorf("get sprint: %w", err)
	}
	velocity := sp.Velocity
	if velocity == 0 {
		// Running velocity for sprints still in flight.
		velocity, err = s.tasks.SumEstimatedDoneBySprint(ctx, sprintID)
		if err != nil {
			return SprintStats{}, fmt.Errorf("compute velocity: %w", err)
		}
	}

	snapshot := SprintStats{
		SprintID:    sprintID,
		Status:      string(sp.Status),
		Velocity:    velocity,
		Capacity:    sp.Capacity,
		GeneratedAt: time.Now().UTC(),
	}
	if raw, err := json.Marshal(snapshot); err == nil {
		s.cache.Set(ctx, key, raw, snapshotTTL) //nolint:errcheck
	}
	return snapshot, nil
}
