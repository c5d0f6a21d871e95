package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/sprintboard/internal/domain/event"
	porteventbus "github.com/alanyang/sprintboard/internal/port/eventbus"
	commentsvc "github.com/alanyang/sprintboard/internal/service/comment"
	epicsvc "github.com/alanyang/sprintboard/internal/service/epic"
	notificationsvc "github.com/alanyang/sprintboard/internal/service/notification"
	projectsvc "github.com/alanyang/sprintboard/internal/service/project"
	reviewsvc "github.com/alanyang/sprintboard/internal/service/review"
	sprintsvc "github.com/alanyang/sprintboard/internal/service/sprint"
	statssvc "github.com/alanyang/sprintboard/internal/service/stats"
	tasksvc "github.com/alanyang/sprintboard/internal/service/task"
	timelogsvc "github.com/alanyang/sprintboard/internal/service/timelog"
	usersvc "github.com/alanyang/sprintboard/internal/service/user"

	epichandler "github.com/alanyang/sprintboard/internal/transport/epic"
	notificationhandler "github.com/alanyang/sprintboard/internal/transport/notification"
	projecthandler "github.com/alanyang/sprintboard/internal/transport/project"
	sprinthandler "github.com/alanyang/sprintboard/internal/transport/sprint"
	taskhandler "github.com/alanyang/sprintboard/internal/transport/task"
	userhandler "github.com/alanyang/sprintboard/internal/transport/user"
	wshandler "github.com/alanyang/sprintboard/internal/transport/ws"
)

type Services struct {
	Task         *tasksvc.Service
	Project      *projectsvc.Service
	Sprint       *sprintsvc.Service
	Epic         *epicsvc.Service
	User         *usersvc.Service
	Review       *reviewsvc.Service
	Comment      *commentsvc.Service
	Timelog      *timelogsvc.Service
	Notification *notificationsvc.Service
	Stats        *statssvc.Service
}

func NewRouter(ctx context.Context, svcs Services, eventBus porteventbus.EventBus) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	projecthandler.Register(api.Group("/projects"), svcs.Project, svcs.Stats)
	sprinthandler.Register(api.Group("/sprints"), svcs.Sprint, svcs.Stats)
	epichandler.Register(api.Group("/epics"), svcs.Epic)
	taskhandler.Register(api.Group("/tasks"), svcs.Task, svcs.Review, svcs.Comment, svcs.Timelog)
	userhandler.Register(api.Group("/users"), svcs.User)
	notificationhandler.Register(api.Group("/notifications"), svcs.Notification)

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: one subscription per domain channel (4 total Postgres connections).
	// All events within a channel are forwarded to WS clients; event.Type in the
	// payload lets the client filter.
	for _, ch := range []event.Channel{
		event.ChannelTask,
		event.ChannelSprint,
		event.ChannelReview,
		event.ChannelNotification,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
