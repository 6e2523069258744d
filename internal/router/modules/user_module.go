package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(m.Auth)
	{
		users.GET("", m.Handler.List)
		users.POST("", m.Handler.Create)
		users.GET("/search", m.Handler.Search)
		users.POST("/me/avatar", m.Handler.UploadAvatar)
		users.GET("/:id", m.Handler.Get)
		users.PATCH("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
