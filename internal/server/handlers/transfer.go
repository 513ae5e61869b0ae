package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/agentstation/quotegen/internal/server/response"
	"github.com/agentstation/quotegen/pkg/quotes"
)

var contentTypes = map[quotes.Format]string{
	quotes.FormatJSON: "application/json",
	quotes.FormatYAML: "application/yaml",
	quotes.FormatTOML: "application/toml",
}

// HandleExport handles GET /api/v1/export?format=. The document is served as
// a download named quotes.<ext>.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	format, err := quotes.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	var buf bytes.Buffer
	if err := c.Export(&buf, format); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quotes%s"`, format.Extension()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to write export")
	}
}

// HandleImport handles POST /api/v1/import?format=. The request body is the
// document; nothing is applied when any entry is invalid.
func (h *Handlers) HandleImport(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	format, err := quotes.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	result, err := c.Import(r.Context(), r.Body, format)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, map[string]any{
		"result":  result,
		"summary": "Quotes imported: " + result.String(),
	})
}
