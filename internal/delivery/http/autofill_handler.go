package http

import (
	"encoding/json"
	"net/http"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/usecase"
)

// AutoFillHandler pre-answers the questionnaire for one symbol.
type AutoFillHandler struct {
	scanner *usecase.WatchlistScanner
}

func NewAutoFillHandler(scanner *usecase.WatchlistScanner) *AutoFillHandler {
	return &AutoFillHandler{scanner: scanner}
}

type autoFillResponse struct {
	Symbol  string                  `json:"symbol"`
	Results []domain.AutoFillResult `json:"results"`
	Answers []domain.Answer         `json:"answers"`
}

// AutoFill handles GET /api/autofill?symbol=XYZ.
func (h *AutoFillHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	results, err := h.scanner.AutoFill(r.Context(), symbol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(autoFillResponse{
		Symbol:  symbol,
		Results: results,
		Answers: usecase.AutoAnswers(results),
	})
}
