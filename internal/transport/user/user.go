package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	usersvc "github.com/alanyang/sprintboard/internal/service/user"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	"github.com/alanyang/sprintboard/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *usersvc.Service) {
	rg.POST("/", createUser(svc))
	rg.GET("/", listUsers(svc))
	rg.GET("/:id", getUser(svc))
	rg.DELETE("/:id", deleteUser(svc))
}

type createUserReq struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required"`
	Role     domainuser.Role `json:"role" binding:"required"`
}

func createUser(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req createUserReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		u, err := svc.Create(c.Request.Context(), req.Username, req.Email, req.Role, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

func listUsers(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role *domainuser.Role
		if v := c.Query("role"); v != "" {
			r := domainuser.Role(v)
			role = &r
		}
		users, err := svc.List(c.Request.Context(), role)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if users == nil {
			users = []domainuser.User{}
		}
		c.JSON(http.StatusOK, users)
	}
}

func getUser(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		u, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func deleteUser(svc *usersvc.Service) gin.HandlerFunc {
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
