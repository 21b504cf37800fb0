package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// PostgresWatchlistRepository persists the scanned instrument list.
type PostgresWatchlistRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresWatchlistRepository(pool *pgxpool.Pool) *PostgresWatchlistRepository {
	return &PostgresWatchlistRepository{pool: pool}
}

func (r *PostgresWatchlistRepository) Add(ctx context.Context, item domain.WatchlistItem) error {
	currency := strings.ToUpper(item.Currency)
	if currency == "" {
		currency = "USD"
	}
	_, err := r.pool.Exec(ctx, `
		insert into watchlist(symbol, currency)
		values ($1, $2)
		on conflict (symbol) do update set currency = excluded.currency
	`, item.Symbol, currency)
	return err
}

func (r *PostgresWatchlistRepository) Remove(ctx context.Context, symbol string) error {
	_, err := r.pool.Exec(ctx, `delete from watchlist where symbol = $1`, symbol)
	return err
}

func (r *PostgresWatchlistRepository) List(ctx context.Context) ([]domain.WatchlistItem, error) {
	rows, err := r.pool.Query(ctx, `
		select symbol, currency, added_at
		from watchlist
		order by added_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.WatchlistItem, 0)
	for rows.Next() {
		var item domain.WatchlistItem
		if err := rows.Scan(&item.Symbol, &item.Currency, &item.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
