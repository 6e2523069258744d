package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

type RoleModule struct {
	Handler *handlers.RoleHandler
	Auth    gin.HandlerFunc
}

func NewRoleModule(h *handlers.RoleHandler, auth gin.HandlerFunc) *RoleModule {
	return &RoleModule{Handler: h, Auth: auth}
}

func (m *RoleModule) Register(rg *gin.RouterGroup) {
	rg.GET("/roles", m.Handler.List)
	rg.GET("/roles/:id", m.Handler.Get)

	rg.POST("/roles", m.Auth, m.Handler.Create)
	rg.PATCH("/roles/:id", m.Auth, m.Handler.Update)
	rg.DELETE("/roles/:id", m.Auth, m.Handler.Delete)
	rg.POST("/roles/:id/assign", m.Auth, m.Handler.Assign)
}
