package domain

import "time"

// TradeEntry represents one journaled trade.
type TradeEntry struct {
	ID            string     `json:"id"`
	Symbol        string     `json:"symbol"`
	IsLong        bool       `json:"isLong"`
	EntryPrice    float64    `json:"entryPrice"`
	StopLoss      float64    `json:"stopLoss"`
	TakeProfit    float64    `json:"takeProfit"`
	Quantity      float64    `json:"quantity"`
	EntryTime     time.Time  `json:"entryTime"`
	Status        string     `json:"status"` // open, closed, stopped
	ExitPrice     *float64   `json:"exitPrice,omitempty"`
	ExitTime      *time.Time `json:"exitTime,omitempty"`
	ProfitLoss    *float64   `json:"profitLoss,omitempty"`
	EntryReason   string     `json:"entryReason"`
	SwingScore    int        `json:"swingScore"`    // composite at entry time
	IntradayScore int        `json:"intradayScore"` // composite at entry time
}

// RealizedPL computes profit/loss for a closed position at the given exit
// price, respecting direction.
func (t *TradeEntry) RealizedPL(exitPrice float64) float64 {
	if t.IsLong {
		return (exitPrice - t.EntryPrice) * t.Quantity
	}
	return (t.EntryPrice - exitPrice) * t.Quantity
}

// TradeEntryRepository defines journal persistence.
type TradeEntryRepository interface {
	CreateEntry(entry *TradeEntry) error
	GetOpenEntries() []*TradeEntry
	GetEntryByID(id string) (*TradeEntry, error)
	UpdateEntry(entry *TradeEntry) error
	GetEntryHistory() []*TradeEntry
	DeleteEntry(id string) error
}
