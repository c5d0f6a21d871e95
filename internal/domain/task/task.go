package task

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusCodeReview Status = "code_review"
	StatusTesting    Status = "testing"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
	StatusCancelled  Status = "cancelled"
)

// validTransitions is the single authoritative transition table.
// done and cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusTodo:       {StatusInProgress, StatusBlocked, StatusCancelled},
	StatusInProgress: {StatusSubmitted, StatusBlocked, StatusCancelled},
	StatusSubmitted:  {StatusCodeReview, StatusInProgress, StatusBlocked, StatusCancelled},
	StatusCodeReview: {StatusTesting, StatusInProgress, StatusCancelled},
	StatusTesting:    {StatusDone, StatusInProgress, StatusCancelled},
	StatusBlocked:    {StatusTodo, StatusInProgress, StatusCancelled},
	StatusDone:       {},
	StatusCancelled:  {},
}

func (s Status) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(validTransitions[s]) == 0 && s.Valid()
}

type CodeReviewStatus string

const (
	CodeReviewPending  CodeReviewStatus = "pending"
	CodeReviewInReview CodeReviewStatus = "in_review"
	CodeReviewApproved CodeReviewStatus = "approved"
	CodeReviewRejected CodeReviewStatus = "rejected"
)

type TestingStatus string

const (
	TestingPending   TestingStatus = "pending"
	TestingInTesting TestingStatus = "in_testing"
	TestingPassed    TestingStatus = "passed"
	TestingFailed    TestingStatus = "failed"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Type string

const (
	TypeStory   Type = "story"
	TypeTask    Type = "task"
	TypeBug     Type = "bug"
	TypeSubtask Type = "subtask"
)

func (t Type) Valid() bool {
	switch t {
	case TypeStory, TypeTask, TypeBug, TypeSubtask:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	SprintID    *uuid.UUID `json:"sprint_id,omitempty"`
	EpicID      *uuid.UUID `json:"epic_id,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"` // subtask link — tree, not general graph
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`

	AssigneeID *uuid.UUID `json:"assignee_id,omitempty"`
	ReporterID uuid.UUID  `json:"reporter_id"`

	CodeReviewerID   *uuid.UUID       `json:"code_reviewer_id,omitempty"`
	CodeReviewStatus CodeReviewStatus `json:"code_review_status"`
	TesterID         *uuid.UUID       `json:"tester_id,omitempty"`
	TestingStatus    TestingStatus    `json:"testing_status"`

	EstimatedHours int      `json:"estimated_hours"`
	ActualHours    float64  `json:"actual_hours"`
	Labels         []string `json:"labels"`

	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func New(projectID uuid.UUID, typ Type, title, description string, priority Priority, reporterID uuid.UUID) Task {
	now := time.Now().UTC()
	return Task{
		ID:               uuid.New(),
		ProjectID:        projectID,
		Type:             typ,
		Title:            title,
		Description:      description,
		Status:           StatusTodo,
		Priority:         priority,
		ReporterID:       reporterID,
		CodeReviewStatus: CodeReviewPending,
		TestingStatus:    TestingPending,
		Labels:           []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status.Terminal() {
		return false
	}
	return now.After(*t.DueDate)
}

type DependencyType string

const (
	DepFinishToStart  DependencyType = "finish_to_start"
	DepStartToStart   DependencyType = "start_to_start"
	DepFinishToFinish DependencyType = "finish_to_finish"
	DepStartToFinish  DependencyType = "start_to_finish"
)

func (d DependencyType) Valid() bool {
	switch d {
	case DepFinishToStart, DepStartToStart, DepFinishToFinish, DepStartToFinish:
		return true
	}
	return false
}

// Dependency is a directed "must-complete-before" edge: TaskID depends on DependsOnID.
type Dependency struct {
	TaskID      uuid.UUID      `json:"task_id"`
	DependsOnID uuid.UUID      `json:"depends_on_id"`
	Type        DependencyType `json:"type"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ListFilters struct {
	ProjectID  *uuid.UUID
	SprintID   *uuid.UUID
	EpicID     *uuid.UUID
	Status     *Status
	Priority   *Priority
	AssigneeID *uuid.UUID
	// OverdueOnly limits to non-terminal tasks past their due date.
	OverdueOnly bool
}
