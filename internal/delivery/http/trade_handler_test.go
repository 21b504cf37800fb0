package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/repository"
)

func TestCloseEntry(t *testing.T) {
	repo := repository.NewInMemoryTradeRepository()
	handler := NewTradeHandler(repo)

	repo.CreateEntry(&domain.TradeEntry{
		ID: "t1", Symbol: "AAPL", IsLong: true,
		EntryPrice: 100, Quantity: 10, Status: "open", EntryTime: time.Now(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/trades/close",
		strings.NewReader(`{"id":"t1","exitPrice":110}`))
	rec := httptest.NewRecorder()
	handler.CloseEntry(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got domain.TradeEntry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.Status != "closed" {
		t.Errorf("status = %q, want closed", got.Status)
	}
	if got.ProfitLoss == nil || *got.ProfitLoss != 100 {
		t.Errorf("profit/loss = %v, want 100", got.ProfitLoss)
	}

	stored, err := repo.GetEntryByID("t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != "closed" || stored.ExitPrice == nil || *stored.ExitPrice != 110 {
		t.Errorf("stored entry not updated: %+v", stored)
	}
}

func TestCloseEntryStopped(t *testing.T) {
	repo := repository.NewInMemoryTradeRepository()
	handler := NewTradeHandler(repo)

	repo.CreateEntry(&domain.TradeEntry{
		ID: "t1", Symbol: "AAPL", IsLong: true,
		EntryPrice: 100, Quantity: 10, Status: "open", EntryTime: time.Now(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/trades/close",
		strings.NewReader(`{"id":"t1","exitPrice":95,"stopped":true}`))
	rec := httptest.NewRecorder()
	handler.CloseEntry(rec, req)

	stored, _ := repo.GetEntryByID("t1")
	if stored.Status != "stopped" {
		t.Errorf("status = %q, want stopped", stored.Status)
	}
	if stored.ProfitLoss == nil || *stored.ProfitLoss != -50 {
		t.Errorf("profit/loss = %v, want -50", stored.ProfitLoss)
	}
}

func TestCloseEntryDoesNotMutateSharedEntry(t *testing.T) {
	repo := repository.NewInMemoryTradeRepository()
	handler := NewTradeHandler(repo)

	repo.CreateEntry(&domain.TradeEntry{
		ID: "t1", Symbol: "AAPL", IsLong: true,
		EntryPrice: 100, Quantity: 10, Status: "open", EntryTime: time.Now(),
	})

	// A reader holding the entry from before the close must not observe
	// in-place mutation.
	before, err := repo.GetEntryByID("t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/trades/close",
		strings.NewReader(`{"id":"t1","exitPrice":110}`))
	handler.CloseEntry(httptest.NewRecorder(), req)

	if before.Status != "open" || before.ExitPrice != nil {
		t.Errorf("previously read entry was mutated in place: %+v", before)
	}

	after, _ := repo.GetEntryByID("t1")
	if after.Status != "closed" {
		t.Errorf("stored entry = %q, want closed", after.Status)
	}
}

func TestCloseEntryUnknownID(t *testing.T) {
	handler := NewTradeHandler(repository.NewInMemoryTradeRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/trades/close",
		strings.NewReader(`{"id":"missing","exitPrice":110}`))
	rec := httptest.NewRecorder()
	handler.CloseEntry(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
