package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// CompleteLogin runs the whole login write set in one transaction: drop the
// user's expired token rows, insert the new one and stamp last_login.
func (r *TokenRepository) CompleteLogin(ctx context.Context, t *entity.UserToken) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		DELETE FROM user_tokens WHERE user_id = $1 AND expires_at <= now()
	`, t.UserID); err != nil {
		return err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO user_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, t.UserID, t.Token, t.ExpiresAt)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return mapErr(err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
	`, t.UserID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TokenRepository) Delete(ctx context.Context, userID int64, token string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM user_tokens WHERE user_id = $1 AND token = $2
	`, userID, token)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
