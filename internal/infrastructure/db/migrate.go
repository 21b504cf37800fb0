package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the tables the journal needs. Inline statements keep setup
// simple without an external migration tool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists trade_entries (
			id text primary key,
			symbol text not null,
			is_long boolean not null default true,
			entry_price double precision not null,
			stop_loss double precision not null default 0,
			take_profit double precision not null default 0,
			quantity double precision not null default 0,
			entry_time timestamptz not null,
			status text not null,
			exit_price double precision null,
			exit_time timestamptz null,
			profit_loss double precision null,
			entry_reason text not null default '',
			swing_score int not null default 0,
			intraday_score int not null default 0
		);`,
		`create index if not exists trade_entries_status_idx on trade_entries(status);`,
		`create index if not exists trade_entries_symbol_entry_time_idx on trade_entries(symbol, entry_time desc);`,
		`create table if not exists watchlist (
			symbol text primary key,
			currency text not null default 'USD',
			added_at timestamptz not null default now()
		);`,
		`create table if not exists device_tokens (
			token text primary key,
			platform text not null default 'android',
			created_at timestamptz not null default now()
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
