package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/sprintboard/internal/adapter/memory"
	pgdb "github.com/alanyang/sprintboard/internal/adapter/postgres"
	pgactivity "github.com/alanyang/sprintboard/internal/adapter/postgres/activity"
	pgcomment "github.com/alanyang/sprintboard/internal/adapter/postgres/comment"
	pgepic "github.com/alanyang/sprintboard/internal/adapter/postgres/epic"
	pgeventbus "github.com/alanyang/sprintboard/internal/adapter/postgres/eventbus"
	pglocker "github.com/alanyang/sprintboard/internal/adapter/postgres/locker"
	pgnotification "github.com/alanyang/sprintboard/internal/adapter/postgres/notification"
	pgproject "github.com/alanyang/sprintboard/internal/adapter/postgres/project"
	pgreview "github.com/alanyang/sprintboard/internal/adapter/postgres/review"
	pgsprint "github.com/alanyang/sprintboard/internal/adapter/postgres/sprint"
	pgtask "github.com/alanyang/sprintboard/internal/adapter/postgres/task"
	pgtimelog "github.com/alanyang/sprintboard/internal/adapter/postgres/timelog"
	pguser "github.com/alanyang/sprintboard/internal/adapter/postgres/user"

	"github.com/alanyang/sprintboard/internal/config"

	commentsvc "github.com/alanyang/sprintboard/internal/service/comment"
	epicsvc "github.com/alanyang/sprintboard/internal/service/epic"
	notificationsvc "github.com/alanyang/sprintboard/internal/service/notification"
	notifiersvc "github.com/alanyang/sprintboard/internal/service/notifier"
	projectsvc "github.com/alanyang/sprintboard/internal/service/project"
	reviewsvc "github.com/alanyang/sprintboard/internal/service/review"
	sprintsvc "github.com/alanyang/sprintboard/internal/service/sprint"
	statssvc "github.com/alanyang/sprintboard/internal/service/stats"
	tasksvc "github.com/alanyang/sprintboard/internal/service/task"
	timelogsvc "github.com/alanyang/sprintboard/internal/service/timelog"
	usersvc "github.com/alanyang/sprintboard/internal/service/user"

	"github.com/alanyang/sprintboard/internal/transport"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Server *http.Server
}

// Build is the composition root: the only place concrete types are wired to their
// interface dependencies.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	pool, err := pgdb.Connect(ctx, cfg.PG.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	taskRepo := pgtask.New(pool)
	projectRepo := pgproject.New(pool)
	sprintRepo := pgsprint.New(pool)
	userRepo := pguser.New(pool)
	reviewRepo := pgreview.New(pool)
	commentRepo := pgcomment.New(pool)
	epicRepo := pgepic.New(pool)
	timelogRepo := pgtimelog.New(pool)
	notificationRepo := pgnotification.New(pool)
	activityRepo := pgactivity.New(pool)
	eventBus := pgeventbus.New(pool)
	locker := pglocker.New(pool)
	cache := memory.NewCache()

	// ── Services ─────────────────────────────────────────────────────────────
	notifier := notifiersvc.NewService(notificationRepo, eventBus)

	taskSvc := tasksvc.NewService(taskRepo, userRepo, projectRepo, reviewRepo, activityRepo, notifier, eventBus, locker)
	projectSvc := projectsvc.NewService(projectRepo, userRepo)
	sprintSvc := sprintsvc.NewService(sprintRepo, projectRepo, taskRepo, userRepo, notifier, eventBus)
	epicSvc := epicsvc.NewService(epicRepo, projectRepo, userRepo)
	userSvc := usersvc.NewService(userRepo)
	reviewSvc := reviewsvc.NewService(reviewRepo, taskRepo)
	commentSvc := commentsvc.NewService(commentRepo, taskRepo, userRepo, activityRepo, notifier, eventBus)
	timelogSvc := timelogsvc.NewService(timelogRepo, taskRepo, userRepo, activityRepo)
	notificationSvc := notificationsvc.NewService(notificationRepo)
	statsSvc := statssvc.NewService(taskRepo, projectRepo, sprintRepo, cache)

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(ctx, transport.Services{
		Task:         taskSvc,
		Project:      projectSvc,
		Sprint:       sprintSvc,
		Epic:         epicSvc,
		User:         userSvc,
		Review:       reviewSvc,
		Comment:      commentSvc,
		Timelog:      timelogSvc,
		Notification: notificationSvc,
		Stats:        statsSvc,
	}, eventBus)

	server := &http.Server{
		Addr:        cfg.HTTPServer.Address,
		Handler:     router,
		ReadTimeout: cfg.HTTPServer.ReadTimeout,
		IdleTimeout: cfg.HTTPServer.IdleTimeout,
	}

	slog.Info("application wired", "addr", cfg.HTTPServer.Address, "env", cfg.Env)

	return &App{
		Config: cfg,
		Pool:   pool,
		Server: server,
	}, nil
}
