package server

import (
	"net/http"
	"strings"

	"github.com/agentstation/quotegen/internal/server/handlers"
	"github.com/agentstation/quotegen/internal/server/middleware"
	"github.com/agentstation/quotegen/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(handlers.Deps{
		App:            s.app,
		Cache:          s.cache,
		WSHub:          s.wsHub,
		SSEBroadcaster: s.sseBroadcaster,
		Upgrader:       s.upgrader,
		Notices:        s.notices,
		Logger:         s.logger,
		StartTime:      s.startTime,
	})

	s.registerRoutes(mux, h)
	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Quotes
	mux.HandleFunc(prefix+"/quotes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListQuotes(w, r)
		case http.MethodPost:
			h.HandleAddQuote(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc(prefix+"/quotes/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, prefix+"/quotes/"))
		if len(parts) == 0 {
			response.NotFound(w, "Not found", r.URL.Path)
			return
		}

		switch parts[0] {
		case "random":
			if len(parts) == 1 && r.Method == http.MethodGet {
				h.HandleRandomQuote(w, r)
				return
			}
		case "last":
			if len(parts) == 1 && r.Method == http.MethodGet {
				h.HandleLastQuote(w, r)
				return
			}
		default:
			id, ok := handlers.ParseQuoteID(parts[0])
			if !ok {
				response.BadRequest(w, "Invalid quote id", parts[0])
				return
			}
			switch {
			case len(parts) == 1 && r.Method == http.MethodGet:
				h.HandleGetQuote(w, r, id)
				return
			case len(parts) == 1 && r.Method == http.MethodDelete:
				h.HandleDeleteQuote(w, r, id)
				return
			case len(parts) == 2 && parts[1] == "push" && r.Method == http.MethodPost:
				h.HandlePushQuote(w, r, id)
				return
			}
		}

		response.NotFound(w, "Not found", r.Method+" "+r.URL.Path)
	})

	mux.HandleFunc(prefix+"/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleCategories(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/selection", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleGetSelection(w, r)
		case http.MethodPut:
			h.HandleSetSelection(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	// Sync
	mux.HandleFunc(prefix+"/sync", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleSync(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/sync/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleSyncStatus(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	// Export and import
	mux.HandleFunc(prefix+"/export", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleExport(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/import", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleImport(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/notices", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleNotices(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	// Live updates
	mux.HandleFunc(prefix+"/updates/ws", h.HandleWebSocket)
	mux.HandleFunc(prefix+"/updates/stream", h.HandleSSE)
}

// applyMiddleware wraps handler with the middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	chain := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger(s.logger),
		middleware.Recovery(s.logger),
	}

	if s.config.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(s.config.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = s.config.CORSOrigins
		} else {
			corsConfig.AllowAll = true
		}
		chain = append(chain, middleware.CORS(corsConfig))
	}

	return middleware.Chain(chain...)(handler)
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
