package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentstation/quotegen/internal/server/response"
	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/quotes"
)

// addQuoteRequest is the body of POST /api/v1/quotes.
type addQuoteRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// HandleListQuotes handles GET /api/v1/quotes?category=.
func (h *Handlers) HandleListQuotes(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = constants.AllCategories
	}

	list := h.cache.Remember("quotes:"+category, func() any {
		list := c.Filter(category)
		if list == nil {
			list = []quotes.Quote{}
		}
		return list
	})
	response.OK(w, list)
}

// HandleAddQuote handles POST /api/v1/quotes.
func (h *Handlers) HandleAddQuote(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	var req addQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := c.Add(r.Context(), req.Text, req.Category)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.Created(w, q)
}

// HandleGetQuote handles GET /api/v1/quotes/{id}.
func (h *Handlers) HandleGetQuote(w http.ResponseWriter, _ *http.Request, id int64) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	q, err := c.Quote(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, q)
}

// HandleDeleteQuote handles DELETE /api/v1/quotes/{id}.
func (h *Handlers) HandleDeleteQuote(w http.ResponseWriter, r *http.Request, id int64) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	if err := c.Remove(r.Context(), id); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePushQuote handles POST /api/v1/quotes/{id}/push.
func (h *Handlers) HandlePushQuote(w http.ResponseWriter, r *http.Request, id int64) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	ack, err := c.Push(r.Context(), id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, ack)
}

// HandleRandomQuote handles GET /api/v1/quotes/random?category=. Without a
// category the persisted selection is used.
func (h *Handlers) HandleRandomQuote(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	q, err := c.Random(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, q)
}

// HandleLastQuote handles GET /api/v1/quotes/last.
func (h *Handlers) HandleLastQuote(w http.ResponseWriter, r *http.Request) {
	c, ok := h.client(w)
	if !ok {
		return
	}

	q, err := c.LastShown(r.Context())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, q)
}

// ParseQuoteID parses a path segment as a quote id.
func ParseQuoteID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
