package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

// AdminHandler serves the admin review queue for forgot-password requests.
// Every route sits behind the admin gate middleware.
type AdminHandler struct {
	Resets *application.ResetService
	Logger *logrus.Logger
}

func NewAdminHandler(resets *application.ResetService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Resets: resets, Logger: logger}
}

func (h *AdminHandler) ListResets(c *gin.Context) {
	reqs, err := h.Resets.List(c.Request.Context())
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, reqs, "Password reset requests.")
}

func (h *AdminHandler) GetReset(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, err := h.Resets.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, req, "Password reset request.")
}

func (h *AdminHandler) ApproveReset(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, err := h.Resets.Approve(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, req, "Password reset approved.")
}

func (h *AdminHandler) RejectReset(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, err := h.Resets.Reject(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, req, "Password reset rejected.")
}
