package application

import (
	"context"
	"errors"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

type RoleService struct {
	Roles repository.RoleRepository
	Users repository.UserRepository
	Authz *Evaluator
}

func NewRoleService(roles repository.RoleRepository, users repository.UserRepository, authz *Evaluator) *RoleService {
	return &RoleService{Roles: roles, Users: users, Authz: authz}
}

type RolePatch struct {
	Name        *string
	Description *string
	Permissions *string
}

func (s *RoleService) List(ctx context.Context) ([]entity.Role, error) {
	return s.Roles.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id int64) (*entity.Role, error) {
	r, err := s.Roles.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Coded(CodeRoleNotFound, "Role not found.", "")
	}
	return r, err
}

func (s *RoleService) Create(ctx context.Context, principal *entity.User, name, description, permissions string) (*entity.Role, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can create roles.", "")
	}
	r := &entity.Role{Name: name, Description: description, Permissions: permissions}
	if err := s.Roles.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoleService) Update(ctx context.Context, principal *entity.User, id int64, patch RolePatch) (*entity.Role, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can update roles.", "")
	}
	r, err := s.Roles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeRoleNotFound, "Role not found.", "")
		}
		return nil, err
	}
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Permissions != nil {
		r.Permissions = *patch.Permissions
	}
	if err := s.Roles.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoleService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	if !s.Authz.IsAdmin(ctx, principal) {
		return Coded(CodeForbidden, "Only admins can delete roles.", "")
	}
	err := s.Roles.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeRoleNotFound, "Role not found.", "")
	}
	return err
}

// Assign points a user at the role.
func (s *RoleService) Assign(ctx context.Context, principal *entity.User, roleID, userID int64) (*entity.User, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can assign roles.", "")
	}
	if _, err := s.Roles.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeRoleNotFound, "Role not found.", "")
		}
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "User not found.", "")
		}
		return nil, err
	}
	u.RoleID = roleID
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
