package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
)

type TaskModule struct {
	Tasks    *handlers.TaskHandler
	Comments *handlers.CommentHandler
	Auth     gin.HandlerFunc
}

func NewTaskModule(tasks *handlers.TaskHandler, comments *handlers.CommentHandler, auth gin.HandlerFunc) *TaskModule {
	return &TaskModule{Tasks: tasks, Comments: comments, Auth: auth}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	rg.GET("/tasks", m.Tasks.List)
	rg.GET("/tasks/:id", m.Tasks.Get)
	rg.GET("/tasks/:id/assignees", m.Tasks.ListAssignees)

	rg.POST("/tasks", m.Auth, m.Tasks.Create)
	rg.PATCH("/tasks/:id", m.Auth, m.Tasks.Update)
	rg.DELETE("/tasks/:id", m.Auth, m.Tasks.Delete)
	rg.POST("/tasks/:id/assignees", m.Auth, m.Tasks.Assign)
	rg.DELETE("/tasks/:id/assignees/:user_id", m.Auth, m.Tasks.Unassign)

	rg.GET("/tasks/:id/comments", m.Auth, m.Comments.ListByTask)
	rg.POST("/tasks/:id/comments", m.Auth, m.Comments.Create)
	rg.GET("/comments/:id", m.Auth, m.Comments.Get)
	rg.PATCH("/comments/:id", m.Auth, m.Comments.Update)
	rg.DELETE("/comments/:id", m.Auth, m.Comments.Delete)
}
