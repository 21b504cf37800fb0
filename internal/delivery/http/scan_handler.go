package http

import (
	"encoding/json"
	"net/http"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/usecase"
)

// ScanHandler serves the latest scan results and runs on-demand scans.
type ScanHandler struct {
	scanner *usecase.WatchlistScanner
	results domain.ScanResultRepository
}

func NewScanHandler(scanner *usecase.WatchlistScanner, results domain.ScanResultRepository) *ScanHandler {
	return &ScanHandler{scanner: scanner, results: results}
}

// GetResults handles GET /api/scan/results.
func (h *ScanHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	results := h.results.GetResults()
	if results == nil {
		results = make([]domain.ScanResult, 0)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

type scanRequest struct {
	Symbols []string `json:"symbols"`
}

// ScanNow handles POST /api/scan. The interactive path uses the same engine
// as the scheduled job.
func (h *ScanHandler) ScanNow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Symbols) == 0 {
		http.Error(w, "symbols is required", http.StatusBadRequest)
		return
	}

	results := h.scanner.Scan(r.Context(), req.Symbols)
	h.results.SaveResults(results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
