// Package modules wires handlers into routes. Public reads stay open;
// mutations sit behind the bearer middleware, the admin queue behind the
// admin gate.
package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    gin.HandlerFunc
	Limiter gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, auth, limiter gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth, Limiter: limiter}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/login", m.Limiter, m.Handler.Login)
	rg.POST("/auth/forgot-password", m.Limiter, m.Handler.ForgotPassword)
	rg.POST("/auth/logout", m.Auth, m.Handler.Logout)
}
