package task_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alanyang/sprintboard/internal/domain/task"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from task.Status
		to   task.Status
		want bool
	}{
		{task.StatusTodo, task.StatusInProgress, true},
		{task.StatusTodo, task.StatusBlocked, true},
		{task.StatusTodo, task.StatusCancelled, true},
		{task.StatusTodo, task.StatusDone, false},
		{task.StatusTodo, task.StatusTesting, false},

		{task.StatusInProgress, task.StatusSubmitted, true},
		{task.StatusInProgress, task.StatusBlocked, true},
		{task.StatusInProgress, task.StatusTodo, false},
		{task.StatusInProgress, task.StatusDone, false},

		{task.StatusSubmitted, task.StatusCodeReview, true},
		{task.StatusSubmitted, task.StatusInProgress, true},
		{task.StatusSubmitted, task.StatusTesting, false},

		{task.StatusCodeReview, task.StatusTesting, true},
		{task.StatusCodeReview, task.StatusInProgress, true},
		{task.StatusCodeReview, task.StatusDone, false},

		{task.StatusTesting, task.StatusDone, true},
		{task.StatusTesting, task.StatusInProgress, true},
		{task.StatusTesting, task.StatusCodeReview, false},

		{task.StatusBlocked, task.StatusTodo, true},
		{task.StatusBlocked, task.StatusInProgress, true},
		{task.StatusBlocked, task.StatusDone, false},

		{task.StatusDone, task.StatusInProgress, false},
		{task.StatusDone, task.StatusTodo, false},
		{task.StatusCancelled, task.StatusTodo, false},
		{task.StatusCancelled, task.StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"→"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, task.StatusDone.Terminal())
	assert.True(t, task.StatusCancelled.Terminal())
	assert.False(t, task.StatusTodo.Terminal())
	assert.False(t, task.StatusTesting.Terminal())
	assert.False(t, task.Status("bogus").Terminal())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []task.Status{
		task.StatusTodo, task.StatusInProgress, task.StatusSubmitted,
		task.StatusCodeReview, task.StatusTesting, task.StatusDone,
		task.StatusBlocked, task.StatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, task.Status("archived").Valid())
	assert.False(t, task.Status("").Valid())
}

func TestNewDefaults(t *testing.T) {
	got := task.New(uuid.New(), task.TypeBug, "Fix crash", "on startup", task.PriorityHigh, uuid.New())

	assert.Equal(t, task.StatusTodo, got.Status)
	assert.Equal(t, task.CodeReviewPending, got.CodeReviewStatus)
	assert.Equal(t, task.TestingPending, got.TestingStatus)
	assert.NotNil(t, got.Labels)
	assert.NotZero(t, got.ID)
}

func TestOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	tt := task.New(uuid.New(), task.TypeTask, "x", "", task.PriorityLow, uuid.New())
	assert.False(t, tt.Overdue(now), "no due date")

	tt.DueDate = &past
	assert.True(t, tt.Overdue(now))

	tt.Status = task.StatusDone
	assert.False(t, tt.Overdue(now), "terminal tasks are never overdue")
}

func TestDependencyTypeValid(t *testing.T) {
	assert.True(t, task.DepFinishToStart.Valid())
	assert.True(t, task.DepStartToFinish.Valid())
	assert.False(t, task.DependencyType("blocks").Valid())
}
