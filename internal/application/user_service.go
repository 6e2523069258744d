package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
	"github.com/lmhoang06/waiedu-task-management/internal/infrastructure/search"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
)

type UserService struct {
	Users     repository.UserRepository
	Roles     repository.RoleRepository
	Authz     *Evaluator
	Index     *search.UserIndex
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, authz *Evaluator, index *search.UserIndex, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Roles: roles, Authz: authz, Index: index, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type CreateUserInput struct {
	Username string
	Password string
	Email    string
	FullName string
	RoleID   int64
	Status   string
	Avatar   string
}

// UserPatch carries a partial update. Nil fields are untouched. Timestamps
// never appear here; the store owns them.
type UserPatch struct {
	Username *string
	Password *string
	Email    *string
	FullName *string
	RoleID   *int64
	Status   *string
	Avatar   *string
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Coded(CodeUserNotFound, "User not found.", "")
	}
	return u, err
}

// Create is admin-only. Status defaults to active when unset.
func (s *UserService) Create(ctx context.Context, principal *entity.User, in CreateUserInput) (*entity.User, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can create users.", "")
	}

	if _, err := s.Users.GetByUsername(ctx, in.Username); err == nil {
		return nil, Coded(CodeUsernameExists, "Username is already taken.", "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, Coded(CodeEmailExists, "Email is already in use.", "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Roles.GetByID(ctx, in.RoleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeRoleNotFound, "Role not found.", "")
		}
		return nil, err
	}

	status := entity.UserActive
	if in.Status != "" {
		status = entity.UserStatus(in.Status)
		if !status.IsValid() {
			return nil, Coded(CodeInvalidStatus, "Invalid user status: "+in.Status, "")
		}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username: in.Username,
		Password: hash,
		Email:    in.Email,
		FullName: in.FullName,
		RoleID:   in.RoleID,
		Status:   status,
		Avatar:   in.Avatar,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	_ = s.Index.IndexUser(ctx, u)
	return u, nil
}

// Update applies a partial update. Self or admin only; role and status
// changes are dropped for non-admins rather than rejected.
func (s *UserService) Update(ctx context.Context, principal *entity.User, id int64, patch UserPatch) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "User not found.", "")
		}
		return nil, err
	}

	isAdmin := s.Authz.IsAdmin(ctx, principal)
	if !isAdmin && principal.ID != u.ID {
		return nil, Coded(CodeForbidden, "You can only update your own account.", "")
	}
	if !isAdmin {
		patch.RoleID = nil
		patch.Status = nil
	}

	if patch.Username != nil && *patch.Username != u.Username {
		if _, err := s.Users.GetByUsername(ctx, *patch.Username); err == nil {
			return nil, Coded(CodeUsernameExists, "Username is already taken.", "")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		u.Username = *patch.Username
	}
	if patch.Email != nil && *patch.Email != u.Email {
		if _, err := s.Users.GetByEmail(ctx, *patch.Email); err == nil {
			return nil, Coded(CodeEmailExists, "Email is already in use.", "")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		u.Email = *patch.Email
	}
	if patch.RoleID != nil {
		if _, err := s.Roles.GetByID(ctx, *patch.RoleID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, Coded(CodeRoleNotFound, "Role not found.", "")
			}
			return nil, err
		}
		u.RoleID = *patch.RoleID
	}
	if patch.Status != nil {
		st := entity.UserStatus(*patch.Status)
		if !st.IsValid() {
			return nil, Coded(CodeInvalidStatus, "Invalid user status: "+*patch.Status, "")
		}
		u.Status = st
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Password != nil {
		hash, err := helpers.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}

	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	_ = s.Index.IndexUser(ctx, u)
	return u, nil
}

// Delete deactivates. User rows are never removed; comments and audit
// references keep pointing at them.
func (s *UserService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	if !s.Authz.IsAdmin(ctx, principal) {
		return Coded(CodeForbidden, "Only admins can delete users.", "")
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Coded(CodeUserNotFound, "User not found.", "")
		}
		return err
	}
	u.Status = entity.UserInactive
	if err := s.Users.Update(ctx, u); err != nil {
		return err
	}
	_ = s.Index.DeleteUser(ctx, u.ID)
	return nil
}

// Search queries the Elasticsearch mirror.
func (s *UserService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.Index.Search(ctx, q, size)
}

// UploadAvatar stores the image under avatars/<user>/<uuid><ext> and records
// the public URL on the principal's row.
func (s *UserService) UploadAvatar(ctx context.Context, principal *entity.User, filename, contentType string, r io.Reader) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	principal.Avatar = url
	if err := s.Users.Update(ctx, principal); err != nil {
		return "", err
	}
	_ = s.Index.IndexUser(ctx, principal)
	return url, nil
}
