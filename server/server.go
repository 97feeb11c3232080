package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/deckwatch/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/deck.go -pkg mocks -skip-ensure -fmt goimports . Deck
//go:generate moq -out mocks/limits.go -pkg mocks -skip-ensure -fmt goimports . Limits

// Server represents HTTP API instance exposed to the UI collaborators
type Server struct {
	config  ConfigProvider
	deck    Deck
	limits  Limits
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deck interface for column, filter and settings operations
type Deck interface {
	Columns() []domain.Column
	AddColumn(ctx context.Context, rawURL string) (domain.Column, error)
	RemoveColumn(ctx context.Context, id string) error
	MoveColumn(ctx context.Context, id string, pos int) error
	Filters() []domain.FilterRule
	AddFilter(ctx context.Context, rule domain.FilterRule) (domain.FilterRule, error)
	UpdateFilter(ctx context.Context, rule domain.FilterRule) error
	RemoveFilter(ctx context.Context, id string) error
	Settings() domain.DisplaySettings
	UpdateSettings(ctx context.Context, s domain.DisplaySettings) error
	Export() domain.AppConfig
	Import(ctx context.Context, cfg domain.AppConfig) error
}

// Limits interface for rate limit state access
type Limits interface {
	Limits() domain.RateLimits
	Reset(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, deck Deck, limits Limits, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		deck:    deck,
		limits:  limits,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("deckwatch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /columns", s.columnsHandler)
		r.HandleFunc("POST /columns", s.addColumnHandler)
		r.HandleFunc("DELETE /columns/{id}", s.removeColumnHandler)
		r.HandleFunc("PUT /columns/{id}/position", s.moveColumnHandler)

		r.HandleFunc("GET /filters", s.filtersHandler)
		r.HandleFunc("POST /filters", s.addFilterHandler)
		r.HandleFunc("PUT /filters/{id}", s.updateFilterHandler)
		r.HandleFunc("DELETE /filters/{id}", s.removeFilterHandler)

		r.HandleFunc("GET /settings", s.settingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)

		r.HandleFunc("GET /ratelimits", s.rateLimitsHandler)
		r.HandleFunc("POST /ratelimits/reset", s.resetRateLimitsHandler)

		r.HandleFunc("GET /export", s.exportHandler)
		r.HandleFunc("POST /import", s.importHandler)
	})
}
