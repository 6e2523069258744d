package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

// AdminModule mounts the forgot-password review queue behind the admin gate,
// which fails with a transport-level 403 unlike the rest of the API.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Auth    gin.HandlerFunc
	Admin   gin.HandlerFunc
}

func NewAdminModule(h *handlers.AdminHandler, auth, admin gin.HandlerFunc) *AdminModule {
	return &AdminModule{Handler: h, Auth: auth, Admin: admin}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(m.Auth, m.Admin)
	{
		admin.GET("/requests/forgot-password", m.Handler.ListResets)
		admin.GET("/requests/forgot-password/:id", m.Handler.GetReset)
		admin.POST("/requests/forgot-password/:id/approve", m.Handler.ApproveReset)
		admin.POST("/requests/forgot-password/:id/reject", m.Handler.RejectReset)
	}
}
