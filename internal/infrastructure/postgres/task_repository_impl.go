package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

const taskColumns = `id, project_id, name, description, status, priority, due_date, created_by, created_at, updated_at`

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.Status,
		&t.Priority, &t.DueDate, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (project_id, name, description, status, priority, due_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, t.ProjectID, t.Name, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedBy)

	return mapErr(row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt))
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	return scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
}

func (r *TaskRepository) List(ctx context.Context, f repository.TaskFilter) ([]entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var (
		args  []any
		where []string
	)
	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		where = append(where, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.Status,
			&t.Priority, &t.DueDate, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	t.UpdatedAt = time.Now().UTC()

	// created_by is never rewritten
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET project_id = $1, name = $2, description = $3, status = $4,
		    priority = $5, due_date = $6, updated_at = $7
		WHERE id = $8
	`, t.ProjectID, t.Name, t.Description, t.Status, t.Priority, t.DueDate, t.UpdatedAt, t.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) ListAssignees(ctx context.Context, taskID int64) ([]entity.TaskAssignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, task_id, user_id, assigned_at
		FROM task_assignments WHERE task_id = $1 ORDER BY id
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []entity.TaskAssignment
	for rows.Next() {
		var a entity.TaskAssignment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.UserID, &a.AssignedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *TaskRepository) GetAssignment(ctx context.Context, taskID, userID int64) (*entity.TaskAssignment, error) {
	a := &entity.TaskAssignment{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, task_id, user_id, assigned_at
		FROM task_assignments WHERE task_id = $1 AND user_id = $2
	`, taskID, userID)
	if err := row.Scan(&a.ID, &a.TaskID, &a.UserID, &a.AssignedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *TaskRepository) AddAssignment(ctx context.Context, a *entity.TaskAssignment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO task_assignments (task_id, user_id)
		VALUES ($1, $2)
		RETURNING id, assigned_at
	`, a.TaskID, a.UserID)

	return mapErr(row.Scan(&a.ID, &a.AssignedAt))
}

func (r *TaskRepository) RemoveAssignment(ctx context.Context, taskID, userID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM task_assignments WHERE task_id = $1 AND user_id = $2
	`, taskID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
