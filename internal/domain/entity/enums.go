package entity

import "strings"

// UserStatus mirrors the user_status_enum column type.
type UserStatus string

const (
	UserBanned          UserStatus = "banned"
	UserActive          UserStatus = "active"
	UserInactive        UserStatus = "inactive"
	UserPendingApproval UserStatus = "pending_approval"
	UserRejected        UserStatus = "rejected"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserBanned, UserActive, UserInactive, UserPendingApproval, UserRejected:
		return true
	}
	return false
}

// ProjectStatus mirrors the project_status_enum column type.
type ProjectStatus string

const (
	ProjectCancelled       ProjectStatus = "cancelled"
	ProjectCompleted       ProjectStatus = "completed"
	ProjectRejected        ProjectStatus = "rejected"
	ProjectOnHold          ProjectStatus = "on_hold"
	ProjectPendingApproval ProjectStatus = "pending_approval"
	ProjectInProgress      ProjectStatus = "in_progress"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectCancelled, ProjectCompleted, ProjectRejected, ProjectOnHold, ProjectPendingApproval, ProjectInProgress:
		return true
	}
	return false
}

// Priority is shared between projects and tasks.
type Priority string

const (
	PriorityVeryLow  Priority = "very_low"
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityVeryLow, PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// TaskStatus mirrors the task_status_enum column type.
type TaskStatus string

const (
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskCompleted, TaskCancelled, TaskTodo, TaskInProgress:
		return true
	}
	return false
}

// ResetStatus mirrors the forgot_password_request_enum column type.
type ResetStatus string

const (
	ResetPendingApproval ResetStatus = "pending_approval"
	ResetApproved        ResetStatus = "approved"
	ResetDenied          ResetStatus = "denied"
)

func (s ResetStatus) IsValid() bool {
	switch s {
	case ResetPendingApproval, ResetApproved, ResetDenied:
		return true
	}
	return false
}

// AdminRoleName is the role name that grants full privileges. Comparison is
// case-insensitive everywhere.
const AdminRoleName = "admin"

// IsAdminRole reports whether a role name designates the admin role.
func IsAdminRole(name string) bool {
	return strings.EqualFold(name, AdminRoleName)
}
