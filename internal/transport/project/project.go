package project

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
	projectsvc "github.com/alanyang/sprintboard/internal/service/project"
	statssvc "github.com/alanyang/sprintboard/internal/service/stats"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	"github.com/alanyang/sprintboard/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *projectsvc.Service, stats *statssvc.Service) {
	rg.POST("/", createProject(svc))
	rg.GET("/", listProjects(svc))
	rg.GET("/:id", getProject(svc))
	rg.DELETE("/:id", deleteProject(svc))
	rg.GET("/:id/stats", projectStats(stats))
}

type createProjectReq struct {
	Key         string `json:"key" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func createProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req createProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), req.Key, req.Name, req.Description, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func listProjects(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := svc.List(c.Request.Context())
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if projects == nil {
			projects = []domainproject.Project{}
		}
		c.JSON(http.StatusOK, projects)
	}
}

func getProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		p, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProject(svc *projectsvc.Service) gin.HandlerFunc {
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

		if err := svc.Delete(c.Request.Context(), id, actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func projectStats(svc *statssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		snapshot, err := svc.Project(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}
