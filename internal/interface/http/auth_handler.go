package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Resets *application.ResetService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, resets *application.ResetService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Resets: resets, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email" binding:"omitempty,email"`
	FullName    string `json:"full_name" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Auth.Login(c.Request.Context(), application.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{
		"user":         res.User,
		"access_token": res.AccessToken,
		"expires_at":   res.ExpiresAt,
	}, "Login successful.")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	principal := middleware.Principal(c)
	token := middleware.Token(c)
	if err := h.Auth.Logout(c.Request.Context(), principal, token); err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"logged_out": true}, "Logged out.")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Resets.Submit(c.Request.Context(), application.SubmitResetInput{
		Username:    req.Username,
		Email:       req.Email,
		FullName:    req.FullName,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		respondErr(c, h.Logger, err)
		return
	}
	response.OK(c, gin.H{"request_id": res.ID, "status": res.Status}, "Password reset request submitted for review.")
}
