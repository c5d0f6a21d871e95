package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/sprintboard/internal/domain/activity"
	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	"github.com/alanyang/sprintboard/internal/mocks"
	tasksvc "github.com/alanyang/sprintboard/internal/service/task"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type svcDeps struct {
	taskRepo    *mocks.MockTaskRepository
	userRepo    *mocks.MockUserRepository
	projectRepo *mocks.MockProjectRepository
	reviewRepo  *mocks.MockReviewRepository
	actRepo     *mocks.MockActivityRepository
	notifier    *mocks.MockNotifier
	bus         *mocks.MockEventBus
	locker      *mocks.MockAdvisoryLocker
}

func newTaskSvc(t *testing.T) (*tasksvc.Service, svcDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := svcDeps{
		taskRepo:    mocks.NewMockTaskRepository(ctrl),
		userRepo:    mocks.NewMockUserRepository(ctrl),
		projectRepo: mocks.NewMockProjectRepository(ctrl),
		reviewRepo:  mocks.NewMockReviewRepository(ctrl),
		actRepo:     mocks.NewMockActivityRepository(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		bus:         mocks.NewMockEventBus(ctrl),
		locker:      mocks.NewMockAdvisoryLocker(ctrl),
	}
	svc := tasksvc.NewService(
		d.taskRepo, d.userRepo, d.projectRepo, d.reviewRepo,
		d.actRepo, d.notifier, d.bus, d.locker,
	)
	return svc, d
}

func newTask(status domaintask.Status) domaintask.Task {
	return domaintask.Task{
		ID:               uuid.New(),
		ProjectID:        uuid.New(),
		Type:             domaintask.TypeTask,
		Title:            "Implement parser",
		Status:           status,
		Priority:         domaintask.PriorityMedium,
		ReporterID:       uuid.New(),
		CodeReviewStatus: domaintask.CodeReviewPending,
		TestingStatus:    domaintask.TestingPending,
		Labels:           []string{},
	}
}

func newUser(role domainuser.Role) domainuser.User {
	return domainuser.User{ID: uuid.New(), Username: "alice", Role: role, Active: true}
}

// expectProgressRefresh covers the count-and-set side effect of accepted
// mutations; the computed percentage is not under test here.
func expectProgressRefresh(d svcDeps, projectID uuid.UUID) {
	d.taskRepo.EXPECT().CountByProject(gomock.Any(), projectID).Return(4, 1, nil)
	d.projectRepo.EXPECT().SetProgress(gomock.Any(), projectID, gomock.Any()).Return(nil)
}

func matchEventType(et event.Type) gomock.Matcher {
	return eventTypeMatcher{et}
}

type eventTypeMatcher struct{ want event.Type }

func (m eventTypeMatcher) Matches(x interface{}) bool {
	e, ok := x.(event.Event)
	return ok && e.Type == m.want
}
func (m eventTypeMatcher) String() string { return "event.Type=" + string(m.want) }

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	reporterID := uuid.New()

	tests := []struct {
		name    string
		params  tasksvc.CreateParams
		setup   func(d svcDeps) domaintask.Task
		wantErr error
		wantMsg string
	}{
		{
			name: "success",
			params: tasksvc.CreateParams{
				ProjectID: uuid.New(),
				Type:      domaintask.TypeBug,
				Title:     "Fix login crash",
				Priority:  domaintask.PriorityHigh,
			},
			setup: func(d svcDeps) domaintask.Task {
				created := newTask(domaintask.StatusTodo)
				d.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectProgressRefresh(d, created.ProjectID)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskCreated)).Return(nil)
				return created
			},
		},
		{
			name: "success with assignee notifies the assignee",
			params: tasksvc.CreateParams{
				ProjectID: uuid.New(),
				Type:      domaintask.TypeStory,
				Title:     "Checkout flow",
				Priority:  domaintask.PriorityMedium,
			},
			setup: func(d svcDeps) domaintask.Task {
				assigneeID := uuid.New()
				created := newTask(domaintask.StatusTodo)
				created.AssigneeID = &assigneeID
				d.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectProgressRefresh(d, created.ProjectID)
				d.notifier.EXPECT().Notify(gomock.Any(), []uuid.UUID{assigneeID}, gomock.Any(),
					domainnotification.TypeTaskAssigned, gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskCreated)).Return(nil)
				return created
			},
		},
		{
			name: "invalid type rejected",
			params: tasksvc.CreateParams{
				ProjectID: uuid.New(),
				Type:      "chore",
				Title:     "x",
				Priority:  domaintask.PriorityLow,
			},
			setup:   func(d svcDeps) domaintask.Task { return domaintask.Task{} },
			wantErr: domaintask.ErrInvalidInput,
		},
		{
			name: "invalid priority rejected",
			params: tasksvc.CreateParams{
				ProjectID: uuid.New(),
				Type:      domaintask.TypeTask,
				Title:     "x",
				Priority:  "urgent",
			},
			setup:   func(d svcDeps) domaintask.Task { return domaintask.Task{} },
			wantErr: domaintask.ErrInvalidInput,
		},
		{
			name: "negative estimate rejected",
			params: tasksvc.CreateParams{
				ProjectID:      uuid.New(),
				Type:           domaintask.TypeTask,
				Title:          "x",
				Priority:       domaintask.PriorityLow,
				EstimatedHours: -3,
			},
			setup:   func(d svcDeps) domaintask.Task { return domaintask.Task{} },
			wantErr: domaintask.ErrInvalidInput,
		},
		{
			name: "repo error",
			params: tasksvc.CreateParams{
				ProjectID: uuid.New(),
				Type:      domaintask.TypeTask,
				Title:     "x",
				Priority:  domaintask.PriorityLow,
			},
			setup: func(d svcDeps) domaintask.Task {
				d.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domaintask.Task{}, errors.New("db error"))
				return domaintask.Task{}
			},
			wantMsg: "create task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTaskSvc(t)
			expected := tt.setup(d)

			got, err := svc.Create(context.Background(), tt.params, reporterID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected.ID, got.ID)
		})
	}
}

// ── GetByID / List ────────────────────────────────────────────────────────────

func TestGetByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d svcDeps, taskID uuid.UUID)
		wantErr error
	}{
		{
			name: "success",
			setup: func(d svcDeps, taskID uuid.UUID) {
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
			},
		},
		{
			name: "not found",
			setup: func(d svcDeps, taskID uuid.UUID) {
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).
					Return(domaintask.Task{}, domaintask.ErrNotFound)
			},
			wantErr: domaintask.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTaskSvc(t)
			taskID := uuid.New()
			tt.setup(d, taskID)

			got, err := svc.GetByID(context.Background(), taskID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, taskID, got.ID)
		})
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d svcDeps)
		wantLen int
		wantErr bool
	}{
		{
			name: "success",
			setup: func(d svcDeps) {
				d.taskRepo.EXPECT().List(gomock.Any(), gomock.Any()).
					Return([]domaintask.Task{newTask(domaintask.StatusTodo)}, nil)
			},
			wantLen: 1,
		},
		{
			name: "repo error",
			setup: func(d svcDeps) {
				d.taskRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTaskSvc(t)
			tt.setup(d)

			got, err := svc.List(context.Background(), domaintask.ListFilters{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

// ── Transition ────────────────────────────────────────────────────────────────

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		to      domaintask.Status
		setup   func(d svcDeps, taskID uuid.UUID)
		wantErr error
	}{
		{
			name:    "unknown status rejected before any repo call",
			to:      "archived",
			setup:   func(d svcDeps, taskID uuid.UUID) {},
			wantErr: domaintask.ErrInvalidStatus,
		},
		{
			name: "assignee moves todo to in_progress",
			to:   domaintask.StatusInProgress,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleEmployee)
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				task.AssigneeID = &actor.ID
				updated := task
				updated.Status = domaintask.StatusInProgress
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().UpdateStatus(gomock.Any(), taskID, domaintask.StatusTodo, domaintask.StatusInProgress).Return(nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectProgressRefresh(d, task.ProjectID)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskUpdated)).Return(nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(updated, nil)
			},
		},
		{
			name: "employee who is not the assignee is denied",
			to:   domaintask.StatusInProgress,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleEmployee)
				someoneElse := uuid.New()
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				task.AssigneeID = &someoneElse
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
			},
			wantErr: domainuser.ErrPermissionDenied,
		},
		{
			name: "team lead may move any task",
			to:   domaintask.StatusBlocked,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleTeamLead)
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				updated := task
				updated.Status = domaintask.StatusBlocked
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().UpdateStatus(gomock.Any(), taskID, domaintask.StatusTodo, domaintask.StatusBlocked).Return(nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectProgressRefresh(d, task.ProjectID)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskUpdated)).Return(nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(updated, nil)
			},
		},
		{
			name: "illegal jump todo to done",
			to:   domaintask.StatusDone,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleAdmin)
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
			},
			wantErr: domaintask.ErrInvalidTransition,
		},
		{
			name: "terminal status cannot move",
			to:   domaintask.StatusInProgress,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleAdmin)
				task := newTask(domaintask.StatusDone)
				task.ID = taskID
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
			},
			wantErr: domaintask.ErrInvalidTransition,
		},
		{
			name: "testing requires an approved code review",
			to:   domaintask.StatusTesting,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleTeamLead)
				task := newTask(domaintask.StatusCodeReview)
				task.ID = taskID
				task.CodeReviewStatus = domaintask.CodeReviewInReview
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
			},
			wantErr: domaintask.ErrReviewGateClosed,
		},
		{
			name: "done requires passed testing",
			to:   domaintask.StatusDone,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleTeamLead)
				task := newTask(domaintask.StatusTesting)
				task.ID = taskID
				task.CodeReviewStatus = domaintask.CodeReviewApproved
				task.TestingStatus = domaintask.TestingInTesting
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
			},
			wantErr: domaintask.ErrTestingGateClosed,
		},
		{
			name: "submitted notifies the reporter",
			to:   domaintask.StatusSubmitted,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleEmployee)
				task := newTask(domaintask.StatusInProgress)
				task.ID = taskID
				task.AssigneeID = &actor.ID
				updated := task
				updated.Status = domaintask.StatusSubmitted
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().UpdateStatus(gomock.Any(), taskID, domaintask.StatusInProgress, domaintask.StatusSubmitted).Return(nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectProgressRefresh(d, task.ProjectID)
				d.notifier.EXPECT().Notify(gomock.Any(), []uuid.UUID{task.ReporterID}, gomock.Any(),
					domainnotification.TypeTaskSubmitted, gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskUpdated)).Return(nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(updated, nil)
			},
		},
		{
			name: "done publishes a completion event and notifies the assignee",
			to:   domaintask.StatusDone,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleTeamLead)
				assigneeID := uuid.New()
				task := newTask(domaintask.StatusTesting)
				task.ID = taskID
				task.AssigneeID = &assigneeID
				task.CodeReviewStatus = domaintask.CodeReviewApproved
				task.TestingStatus = domaintask.TestingPassed
				updated := task
				updated.Status = domaintask.StatusDone
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().UpdateStatus(gomock.Any(), taskID, domaintask.StatusTesting, domaintask.StatusDone).Return(nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectProgressRefresh(d, task.ProjectID)
				d.notifier.EXPECT().Notify(gomock.Any(), []uuid.UUID{assigneeID}, gomock.Any(),
					domainnotification.TypeTaskCompleted, gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskUpdated)).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskCompleted)).Return(nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(updated, nil)
			},
		},
		{
			name: "lost CAS race surfaces as a status conflict",
			to:   domaintask.StatusInProgress,
			setup: func(d svcDeps, taskID uuid.UUID) {
				actor := newUser(domainuser.RoleTeamLead)
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().UpdateStatus(gomock.Any(), taskID, domaintask.StatusTodo, domaintask.StatusInProgress).
					Return(domaintask.ErrStatusConflict)
			},
			wantErr: domaintask.ErrStatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTaskSvc(t)
			taskID := uuid.New()
			tt.setup(d, taskID)

			got, err := svc.Transition(context.Background(), taskID, tt.to, uuid.New())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

// ── Assign ────────────────────────────────────────────────────────────────────

func TestAssign(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d svcDeps, taskID, assigneeID uuid.UUID)
		wantErr error
	}{
		{
			name: "success notifies the new assignee",
			setup: func(d svcDeps, taskID, assigneeID uuid.UUID) {
				actor := newUser(domainuser.RoleTeamLead)
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), assigneeID).Return(newUser(domainuser.RoleEmployee), nil)
				d.taskRepo.EXPECT().Assign(gomock.Any(), taskID, assigneeID).Return(nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				d.notifier.EXPECT().Notify(gomock.Any(), []uuid.UUID{assigneeID}, gomock.Any(),
					domainnotification.TypeTaskAssigned, gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeTaskAssigned)).Return(nil)
			},
		},
		{
			name: "employee lacks assign_tasks",
			setup: func(d svcDeps, taskID, assigneeID uuid.UUID) {
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(newUser(domainuser.RoleEmployee), nil)
			},
			wantErr: domainuser.ErrPermissionDenied,
		},
		{
			name: "unknown assignee",
			setup: func(d svcDeps, taskID, assigneeID uuid.UUID) {
				actor := newUser(domainuser.RoleAdmin)
				task := newTask(domaintask.StatusTodo)
				task.ID = taskID
				d.userRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(actor, nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), assigneeID).
					Return(domainuser.User{}, domainuser.ErrNotFound)
			},
			wantErr: domainuser.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTaskSvc(t)
			taskID, assigneeID := uuid.New(), uuid.New()
			tt.setup(d, taskID, assigneeID)

			err := svc.Assign(context.Background(), taskID, assigneeID, uuid.New())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── Activity ──────────────────────────────────────────────────────────────────

func TestActivity(t *testing.T) {
	svc, d := newTaskSvc(t)
	taskID := uuid.New()
	entries := []activity.Entry{
		activity.New(taskID, uuid.New(), activity.ActionCreated, "", "", "todo"),
		activity.New(taskID, uuid.New(), activity.ActionStatusChanged, "status", "todo", "in_progress"),
	}
	d.actRepo.EXPECT().ListByTask(gomock.Any(), taskID).Return(entries, nil)

	got, err := svc.Activity(context.Background(), taskID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, activity.ActionStatusChanged, got[1].Action)
}
