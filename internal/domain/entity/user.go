package entity

import "time"

// User is the aggregate root for identity. Password holds a bcrypt hash and
// never leaves the API surface.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	RoleID    int64      `json:"role_id"`
	Status    UserStatus `json:"status"`
	Avatar    string     `json:"avatar"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Role carries a name and a free-text permissions blob. The only role the
// code gives special meaning to is "admin" (case-insensitive).
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions string    `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserToken is one issued session token row. The JWT itself is self-contained;
// the row exists so an explicit logout can invalidate it.
type UserToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest is a pending password change awaiting admin review.
// NewPassword is stored pre-hashed at submission time.
type PasswordResetRequest struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	NewPassword string      `json:"-"`
	Status      ResetStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
