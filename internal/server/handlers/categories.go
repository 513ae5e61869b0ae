package handlers

import (
	"net/http"

	"github.com/agentstation/quotegen/internal/server/response"
)

// selectionRequest is the body of PUT /api/v1/selection.
type selectionRequest struct {
	Category string `json:"category"`
}

// HandleCategories handles GET /api/v1/categories.
func (h *Handlers) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}
	response.OK(w, h.cache.Remember("categories", func() any {
		return c.Categories()
	}))
}

// HandleGetSelection handles GET /api/v1/selection.
func (h *Handlers) HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}
	response.OK(w, map[string]string{"category": c.Selection(r.Context())})
}

// HandleSetSelection handles PUT /api/v1/selection.
func (h *Handlers) HandleSetSelection(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	var req selectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := c.SetSelection(r.Context(), req.Category); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, map[string]string{"category": c.Selection(r.Context())})
}
