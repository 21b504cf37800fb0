package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// PostgresTradeRepository stores journal entries in Postgres. Open entries
// carry status='open'; everything else is history.
type PostgresTradeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTradeRepository(pool *pgxpool.Pool) *PostgresTradeRepository {
	return &PostgresTradeRepository{pool: pool}
}

const tradeColumns = `id, symbol, is_long, entry_price, stop_loss, take_profit,
	quantity, entry_time, status, exit_price, exit_time, profit_loss,
	entry_reason, swing_score, intraday_score`

func (r *PostgresTradeRepository) CreateEntry(entry *domain.TradeEntry) error {
	if entry == nil {
		return errors.New("nil entry")
	}

	_, err := r.pool.Exec(context.Background(), `
		insert into trade_entries(`+tradeColumns+`)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		entry.ID,
		entry.Symbol,
		entry.IsLong,
		entry.EntryPrice,
		entry.StopLoss,
		entry.TakeProfit,
		entry.Quantity,
		entry.EntryTime,
		entry.Status,
		entry.ExitPrice,
		entry.ExitTime,
		entry.ProfitLoss,
		entry.EntryReason,
		entry.SwingScore,
		entry.IntradayScore,
	)
	return err
}

func (r *PostgresTradeRepository) GetOpenEntries() []*domain.TradeEntry {
	rows, err := r.pool.Query(context.Background(), `
		select `+tradeColumns+`
		from trade_entries
		where status = 'open'
		order by entry_time desc
	`)
	if err != nil {
		return []*domain.TradeEntry{}
	}
	defer rows.Close()

	return scanTradeRows(rows)
}

func (r *PostgresTradeRepository) GetEntryByID(id string) (*domain.TradeEntry, error) {
	row := r.pool.QueryRow(context.Background(), `
		select `+tradeColumns+`
		from trade_entries
		where id = $1
	`, id)

	entry, err := scanTradeRow(row)
	if err != nil {
		return nil, fmt.Errorf("entry with ID %s not found", id)
	}
	return entry, nil
}

func (r *PostgresTradeRepository) UpdateEntry(entry *domain.TradeEntry) error {
	if entry == nil {
		return errors.New("nil entry")
	}

	_, err := r.pool.Exec(context.Background(), `
		update trade_entries set
			symbol = $2, is_long = $3, entry_price = $4, stop_loss = $5,
			take_profit = $6, quantity = $7, entry_time = $8, status = $9,
			exit_price = $10, exit_time = $11, profit_loss = $12,
			entry_reason = $13, swing_score = $14, intraday_score = $15
		where id = $1
	`,
		entry.ID,
		entry.Symbol,
		entry.IsLong,
		entry.EntryPrice,
		entry.StopLoss,
		entry.TakeProfit,
		entry.Quantity,
		entry.EntryTime,
		entry.Status,
		entry.ExitPrice,
		entry.ExitTime,
		entry.ProfitLoss,
		entry.EntryReason,
		entry.SwingScore,
		entry.IntradayScore,
	)
	return err
}

func (r *PostgresTradeRepository) GetEntryHistory() []*domain.TradeEntry {
	rows, err := r.pool.Query(context.Background(), `
		select `+tradeColumns+`
		from trade_entries
		where status <> 'open'
		order by exit_time desc nulls last
	`)
	if err != nil {
		return []*domain.TradeEntry{}
	}
	defer rows.Close()

	return scanTradeRows(rows)
}

func (r *PostgresTradeRepository) DeleteEntry(id string) error {
	tag, err := r.pool.Exec(context.Background(), `delete from trade_entries where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry with ID %s not found", id)
	}
	return nil
}

func scanTradeRows(rows pgx.Rows) []*domain.TradeEntry {
	entries := make([]*domain.TradeEntry, 0)
	for rows.Next() {
		entry, err := scanTradeRow(rows)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func scanTradeRow(row pgx.Row) (*domain.TradeEntry, error) {
	var e domain.TradeEntry
	var exitPrice, profitLoss *float64
	var exitTime *time.Time

	err := row.Scan(
		&e.ID,
		&e.Symbol,
		&e.IsLong,
		&e.EntryPrice,
		&e.StopLoss,
		&e.TakeProfit,
		&e.Quantity,
		&e.EntryTime,
		&e.Status,
		&exitPrice,
		&exitTime,
		&profitLoss,
		&e.EntryReason,
		&e.SwingScore,
		&e.IntradayScore,
	)
	if err != nil {
		return nil, err
	}

	e.ExitPrice = exitPrice
	e.ExitTime = exitTime
	e.ProfitLoss = profitLoss
	return &e, nil
}
