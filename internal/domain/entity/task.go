package entity

import "time"

// Task belongs to exactly one project. CreatedBy is immutable after creation
// and carries delete permission independent of the project manager.
type Task struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     time.Time  `json:"due_date"`
	CreatedBy   int64      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskAssignment is a unique (task, user) pair. Being assigned is distinct
// from being a member of the task's project.
type TaskAssignment struct {
	ID         int64     `json:"id"`
	TaskID     int64     `json:"task_id"`
	UserID     int64     `json:"user_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Comment is attached to a task. UserID is nullable because authors may be
// removed while their comments stay.
type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
