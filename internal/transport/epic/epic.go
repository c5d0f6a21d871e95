package epic

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainepic "github.com/alanyang/sprintboard/internal/domain/epic"
	epicsvc "github.com/alanyang/sprintboard/internal/service/epic"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	"github.com/alanyang/sprintboard/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *epicsvc.Service) {
	rg.POST("/", createEpic(svc))
	rg.GET("/", listEpics(svc))
	rg.GET("/:id", getEpic(svc))
	rg.PATCH("/:id/status", setEpicStatus(svc))
}

type createEpicReq struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
}

func createEpic(svc *epicsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req createEpicReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		e, err := svc.Create(c.Request.Context(), req.ProjectID, req.Name, req.Description, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

func listEpics(svc *epicsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Query("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		epics, err := svc.ListByProject(c.Request.Context(), projectID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if epics == nil {
			epics = []domainepic.Epic{}
		}
		c.JSON(http.StatusOK, epics)
	}
}

func getEpic(svc *epicsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		e, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

type setEpicStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func setEpicStatus(svc *epicsvc.Service) gin.HandlerFunc {
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
		var req setEpicStatusReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.SetStatus(c.Request.Context(), id, domainepic.Status(req.Status), actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
