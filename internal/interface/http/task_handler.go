package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	ProjectID   int64     `json:"project_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

type updateTaskRequest struct {
	ProjectID   *int64     `json:"project_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type assignTaskRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func (h *TaskHandler) List(c *gin.Context) {
	var in application.ListTasksInput
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Fail(c, application.CodeValidation, "project_id must be a positive integer.", "Invalid query.")
			return
		}
		in.ProjectID = &id
	}
	in.Status = c.Query("status")

	tasks, err := h.Svc.List(c.Request.Context(), in)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, tasks, "Tasks.")
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, t, "Task.")
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), middleware.Principal(c), application.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, t, "Task created.")
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), middleware.Principal(c), id, application.TaskPatch{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, t, "Task updated.")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"deleted": true}, "Task deleted.")
}

func (h *TaskHandler) ListAssignees(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	assignees, err := h.Svc.ListAssignees(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, assignees, "Task assignees.")
}

func (h *TaskHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req assignTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.Svc.Assign(c.Request.Context(), middleware.Principal(c), id, req.UserID)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, a, "User assigned.")
}

func (h *TaskHandler) Unassign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.Svc.Unassign(c.Request.Context(), middleware.Principal(c), id, userID); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"unassigned": true}, "User unassigned.")
}
