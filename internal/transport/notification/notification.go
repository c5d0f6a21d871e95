package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	notificationsvc "github.com/alanyang/sprintboard/internal/service/notification"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	"github.com/alanyang/sprintboard/internal/transport/httperr"
)

// Register mounts the notification inbox. All routes act on the calling
// user's own notifications.
func Register(rg *gin.RouterGroup, svc *notificationsvc.Service) {
	rg.GET("/", listNotifications(svc))
	rg.POST("/:id/read", markRead(svc))
	rg.POST("/read-all", markAllRead(svc))
}

func listNotifications(svc *notificationsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		unreadOnly := c.Query("unread") == "true"

		notifications, err := svc.ListByRecipient(c.Request.Context(), actorID, unreadOnly)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if notifications == nil {
			notifications = []domainnotification.Notification{}
		}
		c.JSON(http.StatusOK, notifications)
	}
}

func markRead(svc *notificationsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		if err := svc.MarkRead(c.Request.Context(), id, actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func markAllRead(svc *notificationsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		if err := svc.MarkAllRead(c.Request.Context(), actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
