package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	Budget      int64     `json:"budget" binding:"gte=0"`
	Priority    string    `json:"priority"`
}

type updateProjectRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ManagerID   *int64     `json:"manager_id"`
	Budget      *int64     `json:"budget"`
	Priority    *string    `json:"priority"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, projects, "Projects.")
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, p, "Project.")
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.Principal(c), application.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Priority:    req.Priority,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, p, "Project created.")
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.Principal(c), id, application.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ManagerID:   req.ManagerID,
		Budget:      req.Budget,
		Priority:    req.Priority,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, p, "Project updated.")
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"deleted": true}, "Project deleted.")
}

func (h *ProjectHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	members, err := h.Svc.ListMembers(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, members, "Project members.")
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req addMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.Svc.AddMember(c.Request.Context(), middleware.Principal(c), id, req.UserID, req.Role)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, m, "Member added.")
}

func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.Svc.RemoveMember(c.Request.Context(), middleware.Principal(c), id, userID); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"removed": true}, "Member removed.")
}
