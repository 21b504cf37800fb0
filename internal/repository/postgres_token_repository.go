package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTokenRepository persists push-notification device tokens so
// registrations survive restarts.
type PostgresTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTokenRepository(pool *pgxpool.Pool) *PostgresTokenRepository {
	return &PostgresTokenRepository{pool: pool}
}

func (r *PostgresTokenRepository) Register(ctx context.Context, token, platform string) error {
	if platform == "" {
		platform = "android"
	}
	_, err := r.pool.Exec(ctx, `
		insert into device_tokens(token, platform)
		values ($1, $2)
		on conflict (token) do update set platform = excluded.platform
	`, token, platform)
	return err
}

func (r *PostgresTokenRepository) Unregister(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `delete from device_tokens where token = $1`, token)
	return err
}

func (r *PostgresTokenRepository) All(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `select token from device_tokens`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (r *PostgresTokenRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `select count(*) from device_tokens`).Scan(&count)
	return count, err
}
