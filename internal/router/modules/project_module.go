package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

type ProjectModule struct {
	Handler *handlers.ProjectHandler
	Auth    gin.HandlerFunc
}

func NewProjectModule(h *handlers.ProjectHandler, auth gin.HandlerFunc) *ProjectModule {
	return &ProjectModule{Handler: h, Auth: auth}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", m.Handler.List)
	rg.GET("/projects/:id", m.Handler.Get)
	rg.GET("/projects/:id/members", m.Handler.ListMembers)

	rg.POST("/projects", m.Auth, m.Handler.Create)
	rg.PATCH("/projects/:id", m.Auth, m.Handler.Update)
	rg.DELETE("/projects/:id", m.Auth, m.Handler.Delete)
	rg.POST("/projects/:id/members", m.Auth, m.Handler.AddMember)
	rg.DELETE("/projects/:id/members/:user_id", m.Auth, m.Handler.RemoveMember)
}
