// Package server provides the HTTP API for quotegen: quote CRUD, random
// selection, sync, export and import, recent notices and live updates over
// WebSocket and SSE.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/quotegen"
	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/server/cache"
	"github.com/agentstation/quotegen/internal/server/events"
	"github.com/agentstation/quotegen/internal/server/events/adapters"
	"github.com/agentstation/quotegen/internal/server/handlers"
	"github.com/agentstation/quotegen/internal/server/sse"
	ws "github.com/agentstation/quotegen/internal/server/websocket"
	"github.com/agentstation/quotegen/pkg/quotes"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app            application.Application
	cache          *cache.Cache
	broker         *events.Broker
	wsHub          *ws.Hub
	sseBroadcaster *sse.Broadcaster
	notices        *handlers.NoticeLog
	upgrader       websocket.Upgrader
	logger         *zerolog.Logger
	config         Config
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	startTime      time.Time
}

// New creates a server and connects it to the client's hooks.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	defaults := DefaultConfig()
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}
	if cfg.NoticeBuffer <= 0 {
		cfg.NoticeBuffer = defaults.NoticeBuffer
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = defaults.PathPrefix
	}

	broker := events.NewBroker(logger)
	wsHub := ws.NewHub(logger)
	sseBroadcaster := sse.NewBroadcaster(logger)
	broker.Subscribe(adapters.NewWebSocketSubscriber(wsHub))
	broker.Subscribe(adapters.NewSSESubscriber(sseBroadcaster))

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		app:            app,
		cache:          cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		broker:         broker,
		wsHub:          wsHub,
		sseBroadcaster: sseBroadcaster,
		notices:        handlers.NewNoticeLog(cfg.NoticeBuffer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:    logger,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}

	if err := s.connectHooks(); err != nil {
		cancel()
		return nil, err
	}
	logger.Debug().Msg("Server instance created")
	return s, nil
}

// connectHooks publishes store changes and notices to live transports and
// flushes the response cache on every change.
func (s *Server) connectHooks() error {
	c, err := s.app.Client()
	if err != nil {
		return err
	}

	c.OnQuoteAdded(func(q quotes.Quote) {
		s.cache.Clear()
		s.broker.Publish(events.QuoteAdded, map[string]any{"quote": q})
	})

	c.OnQuoteUpdated(func(old, updated quotes.Quote) {
		s.cache.Clear()
		s.broker.Publish(events.QuoteUpdated, map[string]any{
			"old_quote": old,
			"new_quote": updated,
		})
	})

	c.OnQuoteRemoved(func(q quotes.Quote) {
		s.cache.Clear()
		s.broker.Publish(events.QuoteRemoved, map[string]any{"quote": q})
	})

	c.OnNotice(func(n quotegen.Notice) {
		s.notices.Add(n)
		s.broker.Publish(events.Notice, n)
	})

	s.logger.Debug().Msg("Quote hooks connected to event broker")
	return nil
}

// Start runs the broker and transports in the background.
func (s *Server) Start() {
	for _, run := range []func(context.Context){s.broker.Run, s.wsHub.Run, s.sseBroadcaster.Run} {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			run(s.ctx)
		}()
	}
	s.logger.Debug().Msg("Background services started")
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown stops background services, waiting until they exit or ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("Background services shut down")
		return nil
	case <-ctx.Done():
		s.logger.Warn().Msg("Background services shutdown timed out")
		return ctx.Err()
	}
}

// Notices returns the recent notice log.
func (s *Server) Notices() *handlers.NoticeLog {
	return s.notices
}

// StartTime returns when the server was created.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
