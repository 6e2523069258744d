package application

import (
	"context"
	"errors"
	"strings"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

type CommentService struct {
	Comments repository.CommentRepository
	Tasks    repository.TaskRepository
	Authz    *Evaluator
}

func NewCommentService(comments repository.CommentRepository, tasks repository.TaskRepository, authz *Evaluator) *CommentService {
	return &CommentService{Comments: comments, Tasks: tasks, Authz: authz}
}

// canAccess checks read/create permission: admin, or membership in the
// project the comment's task belongs to.
func (s *CommentService) canAccess(ctx context.Context, principal *entity.User, t *entity.Task) bool {
	if s.Authz.IsAdmin(ctx, principal) {
		return true
	}
	return s.Authz.IsMemberOf(ctx, principal, t.ProjectID)
}

func (s *CommentService) getTask(ctx context.Context, taskID int64) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTaskNotFound, "Task not found.", "")
		}
		return nil, err
	}
	return t, nil
}

func (s *CommentService) ListByTask(ctx context.Context, principal *entity.User, taskID int64) ([]entity.Comment, error) {
	t, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(ctx, principal, t) {
		return nil, Coded(CodeForbidden, "Only project members or admins can read comments.", "")
	}
	return s.Comments.ListByTask(ctx, taskID)
}

func (s *CommentService) Get(ctx context.Context, principal *entity.User, id int64) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeCommentNotFound, "Comment not found.", "")
		}
		return nil, err
	}
	t, err := s.getTask(ctx, c.TaskID)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(ctx, principal, t) {
		return nil, Coded(CodeForbidden, "Only project members or admins can read comments.", "")
	}
	return c, nil
}

func (s *CommentService) Create(ctx context.Context, principal *entity.User, taskID int64, content string) (*entity.Comment, error) {
	t, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(ctx, principal, t) {
		return nil, Coded(CodeForbidden, "Only project members or admins can comment.", "")
	}
	if strings.TrimSpace(content) == "" {
		return nil, Coded(CodeInvalidContent, "Comment content must not be empty.", "")
	}

	authorID := principal.ID
	c := &entity.Comment{TaskID: taskID, UserID: &authorID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update is author-or-admin; managers have no comment privilege.
func (s *CommentService) Update(ctx context.Context, principal *entity.User, id int64, content string) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeCommentNotFound, "Comment not found.", "")
		}
		return nil, err
	}
	if !s.Authz.IsAdmin(ctx, principal) && !s.Authz.IsAuthorOf(principal, c) {
		return nil, Coded(CodeForbidden, "Only the author or an admin can edit a comment.", "")
	}
	if strings.TrimSpace(content) == "" {
		return nil, Coded(CodeInvalidContent, "Comment content must not be empty.", "")
	}
	c.Content = content
	if err := s.Comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Coded(CodeCommentNotFound, "Comment not found.", "")
		}
		return err
	}
	if !s.Authz.IsAdmin(ctx, principal) && !s.Authz.IsAuthorOf(principal, c) {
		return Coded(CodeForbidden, "Only the author or an admin can delete a comment.", "")
	}
	return s.Comments.Delete(ctx, id)
}
