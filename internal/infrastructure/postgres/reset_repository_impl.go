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

type ResetRepository struct {
	pool *pgxpool.Pool
}

func NewResetRepository(pool *pgxpool.Pool) *ResetRepository {
	return &ResetRepository{pool: pool}
}

func (r *ResetRepository) Create(ctx context.Context, req *entity.PasswordResetRequest) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO forgot_password_requests (user_id, new_password, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, req.UserID, req.NewPassword, req.Status)

	return mapErr(row.Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt))
}

func (r *ResetRepository) GetByID(ctx context.Context, id int64) (*entity.PasswordResetRequest, error) {
	req := &entity.PasswordResetRequest{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, new_password, status, created_at, updated_at
		FROM forgot_password_requests WHERE id = $1
	`, id)
	if err := row.Scan(&req.ID, &req.UserID, &req.NewPassword, &req.Status,
		&req.CreatedAt, &req.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *ResetRepository) List(ctx context.Context) ([]entity.PasswordResetRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, new_password, status, created_at, updated_at
		FROM forgot_password_requests ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []entity.PasswordResetRequest
	for rows.Next() {
		var req entity.PasswordResetRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.NewPassword, &req.Status,
			&req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// Approve resolves the request and copies the already-hashed candidate
// password onto the user row. Both writes commit together.
func (r *ResetRepository) Approve(ctx context.Context, req *entity.PasswordResetRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req.Status = entity.ResetApproved
	req.UpdatedAt = time.Now().UTC()

	res, err := tx.Exec(ctx, `
		UPDATE forgot_password_requests SET status = $1, updated_at = $2 WHERE id = $3
	`, req.Status, req.UpdatedAt, req.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	res, err = tx.Exec(ctx, `
		UPDATE users SET password = $1, updated_at = now() WHERE id = $2
	`, req.NewPassword, req.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *ResetRepository) Reject(ctx context.Context, req *entity.PasswordResetRequest) error {
	req.Status = entity.ResetDenied
	req.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE forgot_password_requests SET status = $1, updated_at = $2 WHERE id = $3
	`, req.Status, req.UpdatedAt, req.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ResetRepository = (*ResetRepository)(nil)
