package task_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	"github.com/alanyang/sprintboard/internal/mocks"
	commentsvc "github.com/alanyang/sprintboard/internal/service/comment"
	reviewsvc "github.com/alanyang/sprintboard/internal/service/review"
	tasksvc "github.com/alanyang/sprintboard/internal/service/task"
	timelogsvc "github.com/alanyang/sprintboard/internal/service/timelog"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	transporttask "github.com/alanyang/sprintboard/internal/transport/task"
)

func init() { gin.SetMode(gin.TestMode) }

type taskDeps struct {
	taskRepo    *mocks.MockTaskRepository
	userRepo    *mocks.MockUserRepository
	projectRepo *mocks.MockProjectRepository
	reviewRepo  *mocks.MockReviewRepository
	commentRepo *mocks.MockCommentRepository
	timelogRepo *mocks.MockTimelogRepository
	actRepo     *mocks.MockActivityRepository
	notifier    *mocks.MockNotifier
	bus         *mocks.MockEventBus
	locker      *mocks.MockAdvisoryLocker
}

func newRouter(t *testing.T) (*gin.Engine, taskDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := taskDeps{
		taskRepo:    mocks.NewMockTaskRepository(ctrl),
		userRepo:    mocks.NewMockUserRepository(ctrl),
		projectRepo: mocks.NewMockProjectRepository(ctrl),
		reviewRepo:  mocks.NewMockReviewRepository(ctrl),
		commentRepo: mocks.NewMockCommentRepository(ctrl),
		timelogRepo: mocks.NewMockTimelogRepository(ctrl),
		actRepo:     mocks.NewMockActivityRepository(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		bus:         mocks.NewMockEventBus(ctrl),
		locker:      mocks.NewMockAdvisoryLocker(ctrl),
	}
	svc := tasksvc.NewService(
		d.taskRepo, d.userRepo, d.projectRepo, d.reviewRepo,
		d.actRepo, d.notifier, d.bus, d.locker,
	)
	reviews := reviewsvc.NewService(d.reviewRepo, d.taskRepo)
	comments := commentsvc.NewService(d.commentRepo, d.taskRepo, d.userRepo, d.actRepo, d.notifier, d.bus)
	timelogs := timelogsvc.NewService(d.timelogRepo, d.taskRepo, d.userRepo, d.actRepo)

	r := gin.New()
	transporttask.Register(r.Group("/api/tasks"), svc, reviews, comments, timelogs)
	return r, d
}

func doJSON(r *gin.Engine, method, path string, actorID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body) //nolint:errcheck
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set(auth.Header, actorID)
	}
	r.ServeHTTP(w, req)
	return w
}

// ── POST / (createTask) ───────────────────────────────────────────────────────

func TestCreateTask(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name     string
		actor    string
		body     map[string]any
		setup    func(d taskDeps)
		wantCode int
	}{
		{
			name:  "success returns 201",
			actor: actorID.String(),
			body: map[string]any{
				"project_id": uuid.New().String(),
				"type":       "bug",
				"title":      "Fix login crash",
				"priority":   "high",
			},
			setup: func(d taskDeps) {
				created := domaintask.Task{ID: uuid.New(), ProjectID: uuid.New(), Status: domaintask.StatusTodo, Labels: []string{}}
				d.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				d.taskRepo.EXPECT().CountByProject(gomock.Any(), gomock.Any()).Return(1, 0, nil)
				d.projectRepo.EXPECT().SetProgress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing required fields returns 400",
			actor:    actorID.String(),
			body:     map[string]any{},
			setup:    func(d taskDeps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "missing actor header returns 401",
			actor: "",
			body: map[string]any{
				"project_id": uuid.New().String(),
				"type":       "task",
				"title":      "x",
				"priority":   "low",
			},
			setup:    func(d taskDeps) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "unknown type returns 400",
			actor: actorID.String(),
			body: map[string]any{
				"project_id": uuid.New().String(),
				"type":       "chore",
				"title":      "x",
				"priority":   "low",
			},
			setup:    func(d taskDeps) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, d := newRouter(t)
			tt.setup(d)

			w := doJSON(r, http.MethodPost, "/api/tasks/", tt.actor, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

// ── PATCH /:id/status ─────────────────────────────────────────────────────────

func TestTransitionTask(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name     string
		status   string
		setup    func(d taskDeps, taskID uuid.UUID)
		wantCode int
	}{
		{
			name:   "assignee transition returns 200",
			status: "in_progress",
			setup: func(d taskDeps, taskID uuid.UUID) {
				task := domaintask.Task{ID: taskID, ProjectID: uuid.New(), Status: domaintask.StatusTodo, AssigneeID: &actorID, Labels: []string{}}
				updated := task
				updated.Status = domaintask.StatusInProgress
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
					Return(domainuser.User{ID: actorID, Role: domainuser.RoleEmployee}, nil)
				d.taskRepo.EXPECT().UpdateStatus(gomock.Any(), taskID, domaintask.StatusTodo, domaintask.StatusInProgress).Return(nil)
				d.actRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				d.taskRepo.EXPECT().CountByProject(gomock.Any(), gomock.Any()).Return(1, 0, nil)
				d.projectRepo.EXPECT().SetProgress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(updated, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "permission denial returns 403",
			status: "in_progress",
			setup: func(d taskDeps, taskID uuid.UUID) {
				other := uuid.New()
				task := domaintask.Task{ID: taskID, ProjectID: uuid.New(), Status: domaintask.StatusTodo, AssigneeID: &other, Labels: []string{}}
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
					Return(domainuser.User{ID: actorID, Role: domainuser.RoleEmployee}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "illegal transition returns 409",
			status: "done",
			setup: func(d taskDeps, taskID uuid.UUID) {
				task := domaintask.Task{ID: taskID, ProjectID: uuid.New(), Status: domaintask.StatusTodo, Labels: []string{}}
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
					Return(domainuser.User{ID: actorID, Role: domainuser.RoleAdmin}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "closed review gate returns 422",
			status: "testing",
			setup: func(d taskDeps, taskID uuid.UUID) {
				task := domaintask.Task{
					ID: taskID, ProjectID: uuid.New(), Status: domaintask.StatusCodeReview,
					CodeReviewStatus: domaintask.CodeReviewInReview, Labels: []string{},
				}
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
					Return(domainuser.User{ID: actorID, Role: domainuser.RoleAdmin}, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "unknown task returns 404",
			status: "in_progress",
			setup: func(d taskDeps, taskID uuid.UUID) {
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).
					Return(domaintask.Task{}, domaintask.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, d := newRouter(t)
			taskID := uuid.New()
			tt.setup(d, taskID)

			w := doJSON(r, http.MethodPatch, "/api/tasks/"+taskID.String()+"/status",
				actorID.String(), map[string]any{"status": tt.status})
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

// ── POST /:id/dependencies ────────────────────────────────────────────────────

func TestAddDependencyEndpoint(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name     string
		setup    func(d taskDeps, taskID, depID uuid.UUID)
		wantCode int
	}{
		{
			name: "success returns 201",
			setup: func(d taskDeps, taskID, depID uuid.UUID) {
				d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
					Return(domainuser.User{ID: actorID, Role: domainuser.RoleTeamLead}, nil)
				task := domaintask.Task{ID: taskID, ProjectID: uuid.New(), Labels: []string{}}
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), depID).
					Return(domaintask.Task{ID: depID, Labels: []string{}}, nil)
				d.locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error {
						return fn(ctx)
					})
				d.taskRepo.EXPECT().DependencyIDs(gomock.Any(), depID).Return(nil, nil)
				d.taskRepo.EXPECT().AddDependency(gomock.Any(), gomock.Any()).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "cycle returns 422",
			setup: func(d taskDeps, taskID, depID uuid.UUID) {
				d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
					Return(domainuser.User{ID: actorID, Role: domainuser.RoleTeamLead}, nil)
				task := domaintask.Task{ID: taskID, ProjectID: uuid.New(), Labels: []string{}}
				d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
				d.taskRepo.EXPECT().GetByID(gomock.Any(), depID).
					Return(domaintask.Task{ID: depID, Labels: []string{}}, nil)
				d.locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error {
						return fn(ctx)
					})
				d.taskRepo.EXPECT().DependencyIDs(gomock.Any(), depID).Return([]uuid.UUID{taskID}, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, d := newRouter(t)
			taskID, depID := uuid.New(), uuid.New()
			tt.setup(d, taskID, depID)

			w := doJSON(r, http.MethodPost, "/api/tasks/"+taskID.String()+"/dependencies",
				actorID.String(), map[string]any{"depends_on_id": depID.String()})
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestSelfDependencyReturns422(t *testing.T) {
	actorID := uuid.New()
	r, d := newRouter(t)
	taskID := uuid.New()
	d.userRepo.EXPECT().GetByID(gomock.Any(), actorID).
		Return(domainuser.User{ID: actorID, Role: domainuser.RoleTeamLead}, nil)

	w := doJSON(r, http.MethodPost, "/api/tasks/"+taskID.String()+"/dependencies",
		actorID.String(), map[string]any{"depends_on_id": taskID.String()})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ── GET /:id ──────────────────────────────────────────────────────────────────

func TestGetTask(t *testing.T) {
	t.Run("success returns 200", func(t *testing.T) {
		r, d := newRouter(t)
		taskID := uuid.New()
		d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).
			Return(domaintask.Task{ID: taskID, Labels: []string{}}, nil)

		w := doJSON(r, http.MethodGet, "/api/tasks/"+taskID.String(), "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got domaintask.Task
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, taskID, got.ID)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		r, _ := newRouter(t)

		w := doJSON(r, http.MethodGet, "/api/tasks/not-a-uuid", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown task returns 404", func(t *testing.T) {
		r, d := newRouter(t)
		taskID := uuid.New()
		d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).
			Return(domaintask.Task{}, domaintask.ErrNotFound)

		w := doJSON(r, http.MethodGet, "/api/tasks/"+taskID.String(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// ── GET / (listTasks) ─────────────────────────────────────────────────────────

func TestListTasks(t *testing.T) {
	t.Run("success returns 200", func(t *testing.T) {
		r, d := newRouter(t)
		d.taskRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]domaintask.Task{{ID: uuid.New(), Labels: []string{}}}, nil)

		w := doJSON(r, http.MethodGet, "/api/tasks/", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid project_id returns 400", func(t *testing.T) {
		r, _ := newRouter(t)

		w := doJSON(r, http.MethodGet, "/api/tasks/?project_id=not-a-uuid", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty result is a JSON array", func(t *testing.T) {
		r, d := newRouter(t)
		d.taskRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/api/tasks/", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

// ── review round trip ─────────────────────────────────────────────────────────

func TestCompleteCodeReviewEndpoint(t *testing.T) {
	reviewerID := uuid.New()

	t.Run("non-reviewer returns 403", func(t *testing.T) {
		r, d := newRouter(t)
		taskID := uuid.New()
		other := uuid.New()
		task := domaintask.Task{
			ID: taskID, ProjectID: uuid.New(), Status: domaintask.StatusCodeReview,
			CodeReviewerID: &other, CodeReviewStatus: domaintask.CodeReviewInReview, Labels: []string{},
		}
		d.taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)

		w := doJSON(r, http.MethodPost, "/api/tasks/"+taskID.String()+"/review",
			reviewerID.String(), map[string]any{"approved": true})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing approved flag returns 400", func(t *testing.T) {
		r, _ := newRouter(t)
		taskID := uuid.New()

		w := doJSON(r, http.MethodPost, "/api/tasks/"+taskID.String()+"/review",
			reviewerID.String(), map[string]any{"notes": "fine"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
