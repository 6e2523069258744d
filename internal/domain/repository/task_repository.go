package repository

import (
	"context"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
)

// TaskFilter narrows List. Nil fields are ignored.
type TaskFilter struct {
	ProjectID *int64
	Status    *entity.TaskStatus
}

// TaskRepository defines the interface for tasks and their assignment rows.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	List(ctx context.Context, f TaskFilter) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id int64) error

	ListAssignees(ctx context.Context, taskID int64) ([]entity.TaskAssignment, error)
	GetAssignment(ctx context.Context, taskID, userID int64) (*entity.TaskAssignment, error)
	AddAssignment(ctx context.Context, a *entity.TaskAssignment) error
	RemoveAssignment(ctx context.Context, taskID, userID int64) error
}

// CommentRepository defines the interface for task comments.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]entity.Comment, error)
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id int64) error
}
