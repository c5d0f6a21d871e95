package task

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/activity"
	domaincomment "github.com/alanyang/sprintboard/internal/domain/comment"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domaintimelog "github.com/alanyang/sprintboard/internal/domain/timelog"
	commentsvc "github.com/alanyang/sprintboard/internal/service/comment"
	reviewsvc "github.com/alanyang/sprintboard/internal/service/review"
	tasksvc "github.com/alanyang/sprintboard/internal/service/task"
	timelogsvc "github.com/alanyang/sprintboard/internal/service/timelog"
	"github.com/alanyang/sprintboard/internal/transport/auth"
	"github.com/alanyang/sprintboard/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *tasksvc.Service, reviews *reviewsvc.Service, comments *commentsvc.Service, timelogs *timelogsvc.Service) {
	rg.POST("/", createTask(svc))
	rg.GET("/", listTasks(svc))
	rg.GET("/:id", getTask(svc))
	rg.PATCH("/:id/status", transitionTask(svc))
	rg.POST("/:id/assign", assignTask(svc))
	rg.GET("/:id/activity", taskActivity(svc))

	rg.POST("/:id/dependencies", addDependency(svc))
	rg.GET("/:id/dependencies", listDependencies(svc))
	rg.DELETE("/:id/dependencies/:depId", removeDependency(svc))

	rg.POST("/:id/reviewer", assignReviewer(svc))
	rg.POST("/:id/review", completeCodeReview(svc))
	rg.GET("/:id/reviews", listReviews(reviews))
	rg.POST("/:id/tester", assignTester(svc))
	rg.POST("/:id/testing", completeTesting(svc))

	rg.POST("/:id/comments", createComment(comments))
	rg.GET("/:id/comments", listComments(comments))
	rg.POST("/:id/time", logTime(timelogs))
	rg.GET("/:id/time", listTime(timelogs))
}

func taskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

type createTaskReq struct {
	ProjectID      uuid.UUID           `json:"project_id" binding:"required"`
	SprintID       *uuid.UUID          `json:"sprint_id"`
	EpicID         *uuid.UUID          `json:"epic_id"`
	ParentID       *uuid.UUID          `json:"parent_id"`
	Type           domaintask.Type     `json:"type" binding:"required"`
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	Priority       domaintask.Priority `json:"priority" binding:"required"`
	AssigneeID     *uuid.UUID          `json:"assignee_id"`
	EstimatedHours int                 `json:"estimated_hours"`
	DueDate        *time.Time          `json:"due_date"`
	Labels         []string            `json:"labels"`
}

func createTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req createTaskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.Create(c.Request.Context(), tasksvc.CreateParams{
			ProjectID:      req.ProjectID,
			SprintID:       req.SprintID,
			EpicID:         req.EpicID,
			ParentID:       req.ParentID,
			Type:           req.Type,
			Title:          req.Title,
			Description:    req.Description,
			Priority:       req.Priority,
			AssigneeID:     req.AssigneeID,
			EstimatedHours: req.EstimatedHours,
			DueDate:        req.DueDate,
			Labels:         req.Labels,
		}, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

func listTasks(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domaintask.ListFilters

		for param, target := range map[string]**uuid.UUID{
			"project_id":  &filters.ProjectID,
			"sprint_id":   &filters.SprintID,
			"epic_id":     &filters.EpicID,
			"assignee_id": &filters.AssigneeID,
		} {
			if v := c.Query(param); v != "" {
				id, err := uuid.Parse(v)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
					return
				}
				*target = &id
			}
		}
		if v := c.Query("status"); v != "" {
			s := domaintask.Status(v)
			filters.Status = &s
		}
		if v := c.Query("priority"); v != "" {
			p := domaintask.Priority(v)
			filters.Priority = &p
		}
		filters.OverdueOnly = c.Query("overdue") == "true"

		tasks, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if tasks == nil {
			tasks = []domaintask.Task{}
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func getTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		t, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type transitionReq struct {
	Status domaintask.Status `json:"status" binding:"required"`
}

func transitionTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req transitionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.Transition(c.Request.Context(), id, req.Status, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type assignReq struct {
	AssigneeID uuid.UUID `json:"assignee_id" binding:"required"`
}

func assignTask(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req assignReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Assign(c.Request.Context(), id, req.AssigneeID, actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		t, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func taskActivity(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		entries, err := svc.Activity(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if entries == nil {
			entries = []activity.Entry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}

type addDepReq struct {
	DependsOnID uuid.UUID                 `json:"depends_on_id" binding:"required"`
	Type        domaintask.DependencyType `json:"type"`
}

func addDependency(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req addDepReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Type == "" {
			req.Type = domaintask.DepFinishToStart
		}

		if err := svc.AddDependency(c.Request.Context(), id, req.DependsOnID, req.Type, actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

func listDependencies(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		deps, err := svc.GetDependencies(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if deps == nil {
			deps = []domaintask.Task{}
		}
		c.JSON(http.StatusOK, deps)
	}
}

func removeDependency(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		depID, err := uuid.Parse(c.Param("depId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dependency id"})
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}

		if err := svc.RemoveDependency(c.Request.Context(), id, depID, actorID); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type assignReviewerReq struct {
	ReviewerID uuid.UUID `json:"reviewer_id" binding:"required"`
}

func assignReviewer(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req assignReviewerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.AssignReviewer(c.Request.Context(), id, req.ReviewerID, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type reviewOutcomeReq struct {
	Approved *bool  `json:"approved" binding:"required"`
	Notes    string `json:"notes"`
}

func completeCodeReview(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req reviewOutcomeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.CompleteCodeReview(c.Request.Context(), id, *req.Approved, req.Notes, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func listReviews(svc *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		reviews, err := svc.ListByTask(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

type assignTesterReq struct {
	TesterID uuid.UUID `json:"tester_id" binding:"required"`
}

func assignTester(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req assignTesterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.AssignTester(c.Request.Context(), id, req.TesterID, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type testingOutcomeReq struct {
	Passed *bool  `json:"passed" binding:"required"`
	Notes  string `json:"notes"`
}

func completeTesting(svc *tasksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req testingOutcomeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.CompleteTesting(c.Request.Context(), id, *req.Passed, req.Notes, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type createCommentReq struct {
	Content  string     `json:"content" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

func createComment(svc *commentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req createCommentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.Create(c.Request.Context(), id, req.Content, req.ParentID, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listComments(svc *commentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		comments, err := svc.ListByTask(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if comments == nil {
			comments = []domaincomment.Comment{}
		}
		c.JSON(http.StatusOK, comments)
	}
}

type logTimeReq struct {
	Hours       float64    `json:"hours" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

func logTime(svc *timelogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		actorID, ok := auth.ActorID(c)
		if !ok {
			return
		}
		var req logTimeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		date := time.Time{}
		if req.Date != nil {
			date = *req.Date
		}
		entry, err := svc.Log(c.Request.Context(), id, req.Hours, req.Description, date, actorID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

func listTime(svc *timelogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		entries, err := svc.ListByTask(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		if entries == nil {
			entries = []domaintimelog.Entry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}
