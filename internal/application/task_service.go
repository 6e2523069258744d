package application

import (
	"context"
	"errors"
	"time"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

type TaskService struct {
	Tasks    repository.TaskRepository
	Projects repository.ProjectRepository
	Users    repository.UserRepository
	Authz    *Evaluator
}

func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, users repository.UserRepository, authz *Evaluator) *TaskService {
	return &TaskService{Tasks: tasks, Projects: projects, Users: users, Authz: authz}
}

type CreateTaskInput struct {
	ProjectID   int64
	Name        string
	Description string
	Priority    string
	DueDate     time.Time
}

// TaskPatch is a partial update; Status carries a target state value.
type TaskPatch struct {
	ProjectID   *int64
	Name        *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

type ListTasksInput struct {
	ProjectID *int64
	Status    string
}

func (s *TaskService) List(ctx context.Context, in ListTasksInput) ([]entity.Task, error) {
	f := repository.TaskFilter{ProjectID: in.ProjectID}
	if in.Status != "" {
		st := entity.TaskStatus(in.Status)
		if !st.IsValid() {
			return nil, Coded(CodeInvalidStatus, "Invalid task status: "+in.Status, "")
		}
		f.Status = &st
	}
	return s.Tasks.List(ctx, f)
}

func (s *TaskService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Coded(CodeTaskNotFound, "Task not found.", "")
	}
	return t, err
}

// Create requires admin or the owning project's manager. New tasks always
// start in todo with the principal as creator.
func (s *TaskService) Create(ctx context.Context, principal *entity.User, in CreateTaskInput) (*entity.Task, error) {
	p, err := s.Projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeProjectNotFound, "Project not found.", "")
		}
		return nil, err
	}
	if !s.Authz.IsAdmin(ctx, principal) && !s.Authz.IsManagerOf(principal, p) {
		return nil, Coded(CodeForbidden, "Only the project manager or an admin can create tasks.", "")
	}

	priority := entity.PriorityMedium
	if in.Priority != "" {
		priority = entity.Priority(in.Priority)
		if !priority.IsValid() {
			return nil, Coded(CodeInvalidPriority, "Invalid priority: "+in.Priority, "")
		}
	}

	t := &entity.Task{
		ProjectID:   in.ProjectID,
		Name:        in.Name,
		Description: in.Description,
		Status:      entity.TaskTodo,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedBy:   principal.ID,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update enforces the per-field permission split: cancellation is admin or
// manager only; every status change additionally admits assignees; all other
// edits, project moves included, are admin or manager; a move additionally
// needs membership in the target project.
func (s *TaskService) Update(ctx context.Context, principal *entity.User, id int64, patch TaskPatch) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTaskNotFound, "Task not found.", "")
		}
		return nil, err
	}
	p, err := s.Projects.GetByID(ctx, t.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeProjectNotFound, "Project not found.", "")
		}
		return nil, err
	}

	isAdmin := s.Authz.IsAdmin(ctx, principal)
	isManager := s.Authz.IsManagerOf(principal, p)

	if patch.Status != nil {
		st := entity.TaskStatus(*patch.Status)
		if !st.IsValid() {
			return nil, Coded(CodeInvalidStatus, "Invalid task status: "+*patch.Status, "")
		}
		if st == entity.TaskCancelled && !isAdmin && !isManager {
			return nil, Coded(CodeForbidden, "Only the project manager or an admin can cancel a task.", "")
		}
		if !isAdmin && !isManager && !s.Authz.IsAssigneeOf(ctx, principal, t.ID) {
			return nil, Coded(CodeForbidden, "Only admins, the project manager or an assignee can change task status.", "")
		}
		t.Status = st
	}

	hasOtherEdits := patch.ProjectID != nil || patch.Name != nil || patch.Description != nil || patch.Priority != nil || patch.DueDate != nil
	if hasOtherEdits && !isAdmin && !isManager {
		return nil, Coded(CodeForbidden, "Only the project manager or an admin can edit task fields.", "")
	}

	if patch.ProjectID != nil && *patch.ProjectID != t.ProjectID {
		if _, err := s.Projects.GetByID(ctx, *patch.ProjectID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, Coded(CodeProjectNotFound, "Target project not found.", "")
			}
			return nil, err
		}
		if !isAdmin && !s.Authz.IsMemberOf(ctx, principal, *patch.ProjectID) {
			return nil, Coded(CodeForbidden, "Moving a task requires membership in the target project.", "")
		}
		t.ProjectID = *patch.ProjectID
	}

	if patch.Priority != nil {
		pr := entity.Priority(*patch.Priority)
		if !pr.IsValid() {
			return nil, Coded(CodeInvalidPriority, "Invalid priority: "+*patch.Priority, "")
		}
		t.Priority = pr
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}

	if err := s.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete admits admin or the original creator. The project manager has no
// delete privilege through management alone.
func (s *TaskService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Coded(CodeTaskNotFound, "Task not found.", "")
		}
		return err
	}
	if !s.Authz.IsAdmin(ctx, principal) && t.CreatedBy != principal.ID {
		return Coded(CodeForbidden, "Only admins or the task creator can delete a task.", "")
	}
	return s.Tasks.Delete(ctx, id)
}

func (s *TaskService) ListAssignees(ctx context.Context, taskID int64) ([]entity.TaskAssignment, error) {
	if _, err := s.Tasks.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTaskNotFound, "Task not found.", "")
		}
		return nil, err
	}
	return s.Tasks.ListAssignees(ctx, taskID)
}

// Assign admits admin, the task creator or any member of the task's project.
func (s *TaskService) Assign(ctx context.Context, principal *entity.User, taskID, userID int64) (*entity.TaskAssignment, error) {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTaskNotFound, "Task not found.", "")
		}
		return nil, err
	}
	if !s.canManageAssignment(ctx, principal, t) {
		return nil, Coded(CodeForbidden, "Only admins, the task creator or project members can assign users.", "")
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "User not found.", "")
		}
		return nil, err
	}
	if _, err := s.Tasks.GetAssignment(ctx, taskID, userID); err == nil {
		return nil, Coded(CodeAlreadyAssigned, "User is already assigned to this task.", "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	a := &entity.TaskAssignment{TaskID: taskID, UserID: userID}
	if err := s.Tasks.AddAssignment(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Coded(CodeAlreadyAssigned, "User is already assigned to this task.", "")
		}
		return nil, err
	}
	return a, nil
}

// Unassign admits everyone Assign does, plus the target user removing
// themselves.
func (s *TaskService) Unassign(ctx context.Context, principal *entity.User, taskID, userID int64) error {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Coded(CodeTaskNotFound, "Task not found.", "")
		}
		return err
	}
	if principal.ID != userID && !s.canManageAssignment(ctx, principal, t) {
		return Coded(CodeForbidden, "Only admins, the task creator, project members or the user themselves can unassign.", "")
	}
	err = s.Tasks.RemoveAssignment(ctx, taskID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeAssignmentNotFound, "User is not assigned to this task.", "")
	}
	return err
}

func (s *TaskService) canManageAssignment(ctx context.Context, principal *entity.User, t *entity.Task) bool {
	if s.Authz.IsAdmin(ctx, principal) || t.CreatedBy == principal.ID {
		return true
	}
	return s.Authz.IsMemberOf(ctx, principal, t.ProjectID)
}
