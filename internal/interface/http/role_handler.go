package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type RoleHandler struct {
	Svc    *application.RoleService
	Logger *logrus.Logger
}

func NewRoleHandler(svc *application.RoleService, logger *logrus.Logger) *RoleHandler {
	return &RoleHandler{Svc: svc, Logger: logger}
}

type createRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Permissions string `json:"permissions"`
}

type updateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Permissions *string `json:"permissions"`
}

type assignRoleRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, roles, "Roles.")
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, r, "Role.")
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req createRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), middleware.Principal(c), req.Name, req.Description, req.Permissions)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, r, "Role created.")
}

func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), middleware.Principal(c), id, application.RolePatch{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, r, "Role updated.")
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"deleted": true}, "Role deleted.")
}

func (h *RoleHandler) Assign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req assignRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.Assign(c.Request.Context(), middleware.Principal(c), id, req.UserID)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, u, "Role assigned.")
}
