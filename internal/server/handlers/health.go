package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/quotegen/internal/server/response"
)

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "quotegen-api",
		"version": h.app.Version(),
	})
}

// HandleReady handles GET /api/v1/ready. The server is ready once the quote
// store is loaded; an unreachable remote does not make it unready.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	status := c.SyncStatus()
	response.OK(w, map[string]any{
		"status":            "ready",
		"quotes":            len(c.List()),
		"offline":           status.IsOffline(),
		"uptime":            time.Since(h.startTime).Round(time.Second).String(),
		"cache_items":       h.cache.ItemCount(),
		"websocket_clients": h.wsHub.ClientCount(),
		"sse_clients":       h.sseBroadcaster.ClientCount(),
	})
}
