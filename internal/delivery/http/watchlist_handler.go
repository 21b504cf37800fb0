package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// WatchlistHandler manages the scanned instrument list.
type WatchlistHandler struct {
	repo domain.WatchlistRepository
}

func NewWatchlistHandler(repo domain.WatchlistRepository) *WatchlistHandler {
	return &WatchlistHandler{repo: repo}
}

// List handles GET /api/watchlist.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.repo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = make([]domain.WatchlistItem, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

type watchlistRequest struct {
	Symbol   string `json:"symbol"`
	Currency string `json:"currency"`
}

// Add handles POST /api/watchlist.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req watchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	item := domain.WatchlistItem{Symbol: req.Symbol, Currency: req.Currency, AddedAt: time.Now()}
	if err := h.repo.Add(r.Context(), item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// Remove handles POST /api/watchlist/remove.
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req watchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.Remove(r.Context(), req.Symbol); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
