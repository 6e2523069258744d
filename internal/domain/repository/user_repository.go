package repository

import (
	"context"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

// RoleRepository defines the interface for role rows.
type RoleRepository interface {
	Create(ctx context.Context, r *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	List(ctx context.Context) ([]entity.Role, error)
	Update(ctx context.Context, r *entity.Role) error
	Delete(ctx context.Context, id int64) error
}

// TokenRepository manages issued session token rows.
type TokenRepository interface {
	// CompleteLogin purges the user's expired tokens, inserts the freshly
	// issued one and stamps last_login, all inside a single transaction.
	CompleteLogin(ctx context.Context, t *entity.UserToken) error
	// Delete removes the given token scoped to the user; ErrNotFound when no
	// such row exists (already logged out).
	Delete(ctx context.Context, userID int64, token string) error
}

// ResetRepository manages forgot-password requests. Approve resolves the
// request and copies the pre-hashed candidate password onto the user row in
// one transaction.
type ResetRepository interface {
	Create(ctx context.Context, r *entity.PasswordResetRequest) error
	GetByID(ctx context.Context, id int64) (*entity.PasswordResetRequest, error)
	List(ctx context.Context) ([]entity.PasswordResetRequest, error)
	Approve(ctx context.Context, r *entity.PasswordResetRequest) error
	Reject(ctx context.Context, r *entity.PasswordResetRequest) error
}
