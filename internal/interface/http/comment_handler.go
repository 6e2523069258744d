package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) ListByTask(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := h.Svc.ListByTask(c.Request.Context(), middleware.Principal(c), taskID)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, comments, "Comments.")
}

func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.Svc.Create(c.Request.Context(), middleware.Principal(c), taskID, req.Content)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, comment, "Comment created.")
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.Svc.Get(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, comment, "Comment.")
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.Svc.Update(c.Request.Context(), middleware.Principal(c), id, req.Content)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, comment, "Comment updated.")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"deleted": true}, "Comment deleted.")
}
