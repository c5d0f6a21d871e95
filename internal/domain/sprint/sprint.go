package sprint

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("sprint not found")
	ErrInvalidTransition = errors.New("sprint status transition not allowed")
)

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var validTransitions = map[Status][]Status{
	StatusPlanning:  {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type Sprint struct {
	ID         uuid.UUID  `json:"id"`
	ProjectID  uuid.UUID  `json:"project_id"`
	Name       string     `json:"name"`
	Goal       string     `json:"goal,omitempty"`
	TeamLeadID *uuid.UUID `json:"team_lead_id,omitempty"`
	AssigneeID *uuid.UUID `json:"assignee_id,omitempty"`
	Status     Status     `json:"status"`
	// Velocity is the sum of estimated hours of done tasks, fixed at completion.
	Velocity  int        `json:"velocity"`
	Capacity  int        `json:"capacity"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func New(projectID uuid.UUID, name, goal string, teamLeadID *uuid.UUID, capacity int, createdBy uuid.UUID) Sprint {
	now := time.Now().UTC()
	return Sprint{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Name:       name,
		Goal:       goal,
		TeamLeadID: teamLeadID,
		Status:     StatusPlanning,
		Capacity:   capacity,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
