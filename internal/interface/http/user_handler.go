package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,pwd"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	RoleID   int64  `json:"role_id" binding:"required"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar"`
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3"`
	Password *string `json:"password" binding:"omitempty,pwd"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
	RoleID   *int64  `json:"role_id"`
	Status   *string `json:"status"`
	Avatar   *string `json:"avatar"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, users, "Users.")
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, u, "User.")
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), middleware.Principal(c), application.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		RoleID:   req.RoleID,
		Status:   req.Status,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, u, "User created.")
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), middleware.Principal(c), id, application.UserPatch{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		RoleID:   req.RoleID,
		Status:   req.Status,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, u, "User updated.")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"deleted": true}, "User deactivated.")
}

// Search queries the Elasticsearch mirror of the user table.
func (h *UserHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Fail(c, application.CodeValidation, "q query parameter is required.", "Invalid query.")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, hits, "Search results.")
}

// UploadAvatar accepts a multipart "avatar" file and stores it in GCS.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Fail(c, application.CodeValidation, "avatar file is required.", "Invalid payload.")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), middleware.Principal(c),
		fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"avatar": url}, "Avatar uploaded.")
}
