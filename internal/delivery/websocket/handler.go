package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler streams the latest scan results to connected clients.
type Handler struct {
	results domain.ScanResultRepository
	log     zerolog.Logger
}

func NewHandler(results domain.ScanResultRepository, log zerolog.Logger) *Handler {
	return &Handler{results: results, log: log}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.log.Info().Str("remote", r.RemoteAddr).Msg("websocket client connected")

	// Send the current snapshot immediately, then push on a fixed cadence.
	if err := conn.WriteJSON(h.results.GetResults()); err != nil {
		h.log.Debug().Err(err).Msg("websocket write failed")
		return
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(h.results.GetResults()); err != nil {
				h.log.Debug().Err(err).Msg("websocket write failed")
				return
			}
		}
	}
}
