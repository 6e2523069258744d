package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

type TeamModule struct {
	Handler *handlers.TeamHandler
	Auth    gin.HandlerFunc
}

func NewTeamModule(h *handlers.TeamHandler, auth gin.HandlerFunc) *TeamModule {
	return &TeamModule{Handler: h, Auth: auth}
}

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	rg.GET("/teams", m.Handler.List)
	rg.GET("/teams/:id", m.Handler.Get)
	rg.GET("/teams/:id/members", m.Handler.ListMembers)

	rg.POST("/teams", m.Auth, m.Handler.Create)
	rg.PATCH("/teams/:id", m.Auth, m.Handler.Update)
	rg.DELETE("/teams/:id", m.Auth, m.Handler.Delete)
	rg.POST("/teams/:id/members", m.Auth, m.Handler.AddMember)
	rg.DELETE("/teams/:id/members/:user_id", m.Auth, m.Handler.RemoveMember)
}
