package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/usecase"
)

// TestHandler fires a throwaway push so a device can verify its registration.
type TestHandler struct {
	sender    usecase.PushSender
	tokenRepo domain.DeviceTokenRepository
}

func NewTestHandler(sender usecase.PushSender, tokenRepo domain.DeviceTokenRepository) *TestHandler {
	return &TestHandler{sender: sender, tokenRepo: tokenRepo}
}

func (h *TestHandler) SendTestNotification(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if h.sender == nil || !h.sender.IsEnabled() {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "FCM not configured",
		})
		return
	}

	tokens, err := h.tokenRepo.All(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(tokens) == 0 {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "No registered devices",
			"count":   0,
		})
		return
	}

	title := "Test Notification"
	body := "Push notifications are working."
	data := map[string]string{
		"type":      "test",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if err := h.sender.SendMulticast(r.Context(), tokens, title, body, data); err != nil {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Failed to send notification: " + err.Error(),
			"count":   len(tokens),
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Test notification sent",
		"count":   len(tokens),
	})
}
