package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type TeamHandler struct {
	Svc    *application.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *application.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type createTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LeaderID    *int64 `json:"leader_id"`
}

type updateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LeaderID    *int64  `json:"leader_id"`
}

type addMemberRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, teams, "Teams.")
}

func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, t, "Team.")
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), middleware.Principal(c), req.Name, req.Description, req.LeaderID)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, t, "Team created.")
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), middleware.Principal(c), id, application.TeamPatch{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, t, "Team updated.")
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"deleted": true}, "Team deleted.")
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	members, err := h.Svc.ListMembers(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, members, "Team members.")
}

func (h *TeamHandler) AddMember(c *gin.Context) {
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

func (h *TeamHandler) RemoveMember(c *gin.Context) {
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
