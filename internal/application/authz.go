package application

import (
	"context"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

// Evaluator answers the role and relationship questions every resource
// service composes its permission checks from. All predicates fail closed:
// a missing row or a lookup error reads as "no".
type Evaluator struct {
	Roles    repository.RoleRepository
	Projects repository.ProjectRepository
	Tasks    repository.TaskRepository
}

func NewEvaluator(roles repository.RoleRepository, projects repository.ProjectRepository, tasks repository.TaskRepository) *Evaluator {
	return &Evaluator{Roles: roles, Projects: projects, Tasks: tasks}
}

// IsAdmin reports whether the user's role is named "admin" (case-insensitive).
func (e *Evaluator) IsAdmin(ctx context.Context, u *entity.User) bool {
	if u == nil {
		return false
	}
	role, err := e.Roles.GetByID(ctx, u.RoleID)
	if err != nil || role == nil {
		return false
	}
	return entity.IsAdminRole(role.Name)
}

// IsManagerOf reports whether the user manages the given project.
func (e *Evaluator) IsManagerOf(u *entity.User, p *entity.Project) bool {
	if u == nil || p == nil || p.ManagerID == nil {
		return false
	}
	return *p.ManagerID == u.ID
}

// IsMemberOf reports whether the user is the project's manager or holds a
// membership row. A missing project reads as false.
func (e *Evaluator) IsMemberOf(ctx context.Context, u *entity.User, projectID int64) bool {
	if u == nil {
		return false
	}
	p, err := e.Projects.GetByID(ctx, projectID)
	if err != nil || p == nil {
		return false
	}
	if e.IsManagerOf(u, p) {
		return true
	}
	_, err = e.Projects.GetMember(ctx, projectID, u.ID)
	return err == nil
}

// IsAssigneeOf reports whether the user holds an assignment row on the task.
func (e *Evaluator) IsAssigneeOf(ctx context.Context, u *entity.User, taskID int64) bool {
	if u == nil {
		return false
	}
	_, err := e.Tasks.GetAssignment(ctx, taskID, u.ID)
	return err == nil
}

// IsAuthorOf reports whether the user wrote the comment.
func (e *Evaluator) IsAuthorOf(u *entity.User, c *entity.Comment) bool {
	if u == nil || c == nil || c.UserID == nil {
		return false
	}
	return *c.UserID == u.ID
}
