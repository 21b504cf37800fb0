package repository

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryCooldownStore(t *testing.T) {
	clock := time.Now()
	store := NewInMemoryCooldownStore(func() time.Time { return clock })
	ctx := context.Background()

	active, err := store.Active(ctx, "AAPL")
	if err != nil || active {
		t.Fatalf("fresh symbol active = %t, err %v", active, err)
	}

	if err := store.Mark(ctx, "AAPL", 30*time.Minute); err != nil {
		t.Fatalf("mark: %v", err)
	}

	active, _ = store.Active(ctx, "AAPL")
	if !active {
		t.Error("marked symbol should be in cooldown")
	}

	clock = clock.Add(29 * time.Minute)
	if active, _ = store.Active(ctx, "AAPL"); !active {
		t.Error("cooldown should still hold before expiry")
	}

	clock = clock.Add(2 * time.Minute)
	if active, _ = store.Active(ctx, "AAPL"); active {
		t.Error("cooldown should expire")
	}

	// Other symbols are unaffected throughout.
	if active, _ = store.Active(ctx, "MSFT"); active {
		t.Error("unrelated symbol should not be in cooldown")
	}
}
