package domain

import (
	"context"
	"time"
)

// ScanResultRepository stores the latest ranked scan results.
type ScanResultRepository interface {
	SaveResults(results []ScanResult)
	GetResults() []ScanResult
}

// WatchlistRepository stores the instruments the scheduler scans.
type WatchlistRepository interface {
	Add(ctx context.Context, item WatchlistItem) error
	Remove(ctx context.Context, symbol string) error
	List(ctx context.Context) ([]WatchlistItem, error)
}

// DeviceTokenRepository stores push-notification device tokens.
type DeviceTokenRepository interface {
	Register(ctx context.Context, token, platform string) error
	Unregister(ctx context.Context, token string) error
	All(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// CooldownStore records when a symbol was last notified so near-real-time
// alerts are not duplicated. Implementations must survive concurrent use;
// the Redis implementation additionally survives process restarts.
type CooldownStore interface {
	// Active reports whether the symbol is still inside its cooldown window.
	Active(ctx context.Context, symbol string) (bool, error)
	// Mark starts a cooldown window for the symbol.
	Mark(ctx context.Context, symbol string, ttl time.Duration) error
}
