package handlers

import (
	"net/http"

	"github.com/agentstation/utc"

	"github.com/agentstation/quotegen/internal/server/events"
	ws "github.com/agentstation/quotegen/internal/server/websocket"
	"github.com/agentstation/quotegen/pkg/logging"
)

// HandleWebSocket handles GET /api/v1/updates/ws.
func (h *Handlers) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	id := logging.RequestID(r.Context())
	if id == "" {
		id = r.RemoteAddr
	}
	client := ws.NewClient(id, h.wsHub, conn)
	h.wsHub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	h.wsHub.Broadcast(ws.Message{
		Type:      string(events.ClientConnected),
		Timestamp: utc.Now(),
		Data:      map[string]any{"client_id": id},
	})
}

// HandleSSE handles GET /api/v1/updates/stream.
func (h *Handlers) HandleSSE(w http.ResponseWriter, r *http.Request) {
	h.sseBroadcaster.ServeHTTP(w, r)
}
