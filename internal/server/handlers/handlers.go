// Package handlers provides HTTP request handlers for the quotegen API.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/quotegen"
	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/server/cache"
	"github.com/agentstation/quotegen/internal/server/response"
	"github.com/agentstation/quotegen/internal/server/sse"
	ws "github.com/agentstation/quotegen/internal/server/websocket"
)

// maxBodyBytes bounds JSON request bodies other than imports.
const maxBodyBytes = 64 << 10

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app            application.Application
	cache          *cache.Cache
	wsHub          *ws.Hub
	sseBroadcaster *sse.Broadcaster
	upgrader       websocket.Upgrader
	notices        *NoticeLog
	logger         *zerolog.Logger
	startTime      time.Time
}

// Deps bundles what the handlers need from the server.
type Deps struct {
	App            application.Application
	Cache          *cache.Cache
	WSHub          *ws.Hub
	SSEBroadcaster *sse.Broadcaster
	Upgrader       websocket.Upgrader
	Notices        *NoticeLog
	Logger         *zerolog.Logger
	StartTime      time.Time
}

// New creates a Handlers instance.
func New(deps Deps) *Handlers {
	return &Handlers{
		app:            deps.App,
		cache:          deps.Cache,
		wsHub:          deps.WSHub,
		sseBroadcaster: deps.SSEBroadcaster,
		upgrader:       deps.Upgrader,
		notices:        deps.Notices,
		logger:         deps.Logger,
		startTime:      deps.StartTime,
	}
}

// client resolves the quotegen client or writes a 503.
func (h *Handlers) client(w http.ResponseWriter) (quotegen.Client, bool) {
	c, err := h.app.Client()
	if err != nil || c == nil {
		h.logger.Error().Err(err).Msg("Quote client unavailable")
		response.ServiceUnavailable(w, "Quote store not available")
		return nil, false
	}
	return c, true
}

// decodeJSON reads a bounded JSON body into v or writes a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		response.BadRequest(w, "Invalid request body", err.Error())
		return false
	}
	return true
}
