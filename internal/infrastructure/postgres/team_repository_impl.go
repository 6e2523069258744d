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

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(ctx context.Context, t *entity.Team) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO teams (name, description, leader_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, t.Name, t.Description, t.LeaderID)

	return mapErr(row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt))
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*entity.Team, error) {
	t := &entity.Team{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, leader_id, created_at, updated_at
		FROM teams WHERE id = $1
	`, id)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]entity.Team, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, leader_id, created_at, updated_at
		FROM teams ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []entity.Team
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) Update(ctx context.Context, t *entity.Team) error {
	t.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE teams
		SET name = $1, description = $2, leader_id = $3, updated_at = $4
		WHERE id = $5
	`, t.Name, t.Description, t.LeaderID, t.UpdatedAt, t.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID int64) ([]entity.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, team_id, user_id, role, joined_at
		FROM team_members WHERE team_id = $1 ORDER BY id
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entity.TeamMember
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) GetMember(ctx context.Context, teamID, userID int64) (*entity.TeamMember, error) {
	m := &entity.TeamMember{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, team_id, user_id, role, joined_at
		FROM team_members WHERE team_id = $1 AND user_id = $2
	`, teamID, userID)
	if err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, m *entity.TeamMember) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO team_members (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`, m.TeamID, m.UserID, m.Role)

	return mapErr(row.Scan(&m.ID, &m.JoinedAt))
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM team_members WHERE team_id = $1 AND user_id = $2
	`, teamID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TeamRepository = (*TeamRepository)(nil)
