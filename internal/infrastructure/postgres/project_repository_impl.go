package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

const projectColumns = `id, name, description, status, start_date, end_date, manager_id, budget, priority, created_at, updated_at`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	p := &entity.Project{}
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.EndDate,
		&p.ManagerID, &p.Budget, &p.Priority, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (name, description, status, start_date, end_date, manager_id, budget, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Description, p.Status, p.StartDate, p.EndDate, p.ManagerID, p.Budget, p.Priority)

	return mapErr(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	return scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.EndDate,
			&p.ManagerID, &p.Budget, &p.Priority, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *entity.Project) error {
	p.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET name = $1, description = $2, status = $3, start_date = $4, end_date = $5,
		    manager_id = $6, budget = $7, priority = $8, updated_at = $9
		WHERE id = $10
	`, p.Name, p.Description, p.Status, p.StartDate, p.EndDate,
		p.ManagerID, p.Budget, p.Priority, p.UpdatedAt, p.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) ListMembers(ctx context.Context, projectID int64) ([]entity.ProjectMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, project_id, user_id, role, joined_at
		FROM project_members WHERE project_id = $1 ORDER BY id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entity.ProjectMember
	for rows.Next() {
		var m entity.ProjectMember
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *ProjectRepository) GetMember(ctx context.Context, projectID, userID int64) (*entity.ProjectMember, error) {
	m := &entity.ProjectMember{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, project_id, user_id, role, joined_at
		FROM project_members WHERE project_id = $1 AND user_id = $2
	`, projectID, userID)
	if err := row.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *ProjectRepository) AddMember(ctx context.Context, m *entity.ProjectMember) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO project_members (project_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`, m.ProjectID, m.UserID, m.Role)

	return mapErr(row.Scan(&m.ID, &m.JoinedAt))
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID, userID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM project_members WHERE project_id = $1 AND user_id = $2
	`, projectID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
