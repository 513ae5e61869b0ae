package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentstation/quotegen/internal/server/response"
)

// HandleSync handles POST /api/v1/sync. With ?dry_run=true the remote batch
// is previewed without touching the store.
func (h *Handlers) HandleSync(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	dryRun, _ := strconv.ParseBool(r.URL.Query().Get("dry_run"))

	run := c.Sync
	if dryRun {
		run = c.Preview
	}

	result, err := run(r.Context())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	h.logger.Info().
		Bool("dry_run", dryRun).
		Int("added", result.Added).
		Int("updated", result.Updated).
		Msg("Sync requested over HTTP")

	response.OK(w, map[string]any{
		"result":  result,
		"summary": result.Summary(),
	})
}

// HandleSyncStatus handles GET /api/v1/sync/status.
func (h *Handlers) HandleSyncStatus(w http.ResponseWriter, _ *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	status := c.SyncStatus()
	response.OK(w, map[string]any{
		"status":  status,
		"offline": status.IsOffline(),
	})
}
