package sprint

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainsprint "github.com/alanyang/sprintboard/internal/domain/sprint"
	sprintsvc "github.com/alanyang/sprintboard/internal/service/sprint"
	statssvc "github.com/alanyang/sprintboard/internal/service/stats"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	"github.com/alanyang/sprintboard/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *sprintsvc.Service, stats *statssvc.Service) {
	rg.POST("/", createSprint(svc))
	rg.GET("/", listSprints(svc))
	rg.GET("/:id", getSprint(svc))
	rg.POST("/:id/start", startSprint(svc))
	rg.POST("/:id/complete", completeSprint(svc))
	rg.DELETE("/:id", deleteSprint(svc))
	rg.GET("/:id/stats", sprintStats(stats))
}

func sprintID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

type createSprintReq struct {
	ProjectID  uuid.UUID  `json:"project_id" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	Goal       string     `json:"goal"`
	TeamLeadID *uuid.UUID `json:"team_lead_id"`
	Capacity   int        `json:"capacity"`
}

func createSprint(svc *sprintsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req createSprintReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sp, err := svc.Create(c.Request.Context(), req.ProjectID, req.Name, req.Goal, req.TeamLeadID, req.Capacity, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, sp)
	}
}

func listSprints(svc *sprintsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Query("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		sprints, err := svc.ListByProject(c.Request.Context(), projectID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if sprints == nil {
			sprints = []domainsprint.Sprint{}
		}
		c.JSON(http.StatusOK, sprints)
	}
}

func getSprint(svc *sprintsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sprintID(c)
		if !ok {
			return
		}
		sp, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, sp)
	}
}

func startSprint(svc *sprintsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sprintID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		sp, err := svc.Start(c.Request.Context(), id, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, sp)
	}
}

func completeSprint(svc *sprintsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sprintID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		sp, err := svc.Complete(c.Request.Context(), id, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, sp)
	}
}

func deleteSprint(svc *sprintsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sprintID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id, actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func sprintStats(svc *statssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sprintID(c)
		if !ok {
			return
		}
		snapshot, err := svc.Sprint(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}
