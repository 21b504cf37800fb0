package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// TradeHandler handles journal entry endpoints.
type TradeHandler struct {
	repo domain.TradeEntryRepository
}

func NewTradeHandler(repo domain.TradeEntryRepository) *TradeHandler {
	return &TradeHandler{repo: repo}
}

// CreateEntry handles POST /api/trades.
func (h *TradeHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var entry domain.TradeEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.EntryTime.IsZero() {
		entry.EntryTime = time.Now()
	}
	if entry.Status == "" {
		entry.Status = "open"
	}

	if err := h.repo.CreateEntry(&entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

// GetOpenEntries handles GET /api/trades/open.
func (h *TradeHandler) GetOpenEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := h.repo.GetOpenEntries()
	if entries == nil {
		entries = make([]*domain.TradeEntry, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// GetHistory handles GET /api/trades/history.
func (h *TradeHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := h.repo.GetEntryHistory()
	if entries == nil {
		entries = make([]*domain.TradeEntry, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

type closeTradeRequest struct {
	ID        string  `json:"id"`
	ExitPrice float64 `json:"exitPrice"`
	Stopped   bool    `json:"stopped"`
}

// CloseEntry handles POST /api/trades/close.
func (h *TradeHandler) CloseEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req closeTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	current, err := h.repo.GetEntryByID(req.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	// Work on a copy so concurrent readers of the stored entry never see a
	// half-closed state.
	entry := *current
	now := time.Now()
	pl := entry.RealizedPL(req.ExitPrice)
	entry.ExitPrice = &req.ExitPrice
	entry.ExitTime = &now
	entry.ProfitLoss = &pl
	if req.Stopped {
		entry.Status = "stopped"
	} else {
		entry.Status = "closed"
	}

	if err := h.repo.UpdateEntry(&entry); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

// DeleteEntry handles POST /api/trades/delete.
func (h *TradeHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteEntry(req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
