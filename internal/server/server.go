// Package server exposes the scan coordinator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	"phpcompat.dev/pkg/phpcompat/internal/domain"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Config holds the listener settings.
type Config struct {
	Addr string
	// Token, when set, must be presented as a bearer token on /api routes.
	Token string
}

// Deps are the services the handlers call.
type Deps struct {
	Scanner  domain.Scanner
	Catalog  adapter.TargetCatalog
	Options  domain.OptionsService
	Gatherer prometheus.Gatherer
}

// Server is the HTTP boundary.
type Server struct {
	cfg  Config
	http *http.Server
}

// New builds a Server with its router.
func New(cfg Config, deps Deps) *Server {
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("HTTP server listening", "addr", s.cfg.Addr)

		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	slog.Info("HTTP server shutting down")

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// NewRouter registers every route on a fresh gin engine.
//
//	GET  /healthz
//	GET  /metrics
//	GET  /api/preflight
//	GET  /api/targets
//	POST /api/scan
//	POST /api/batch-scan
//	POST /api/progress
//	POST /api/batches
//	POST /api/stop
//	GET  /api/options
//	POST /api/options
func NewRouter(cfg Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), recovery())

	h := &handlers{deps: deps}

	router.GET("/healthz", h.health)

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler(deps.Gatherer)))
	}

	api := router.Group("/api")
	api.Use(requireToken(cfg.Token))

	api.GET("/preflight", h.preflight)
	api.GET("/targets", h.targets)
	api.POST("/scan", h.scan)
	api.POST("/batch-scan", h.batchScan)
	api.POST("/progress", h.progress)
	api.POST("/batches", h.processBatch)
	api.POST("/stop", h.stop)
	api.GET("/options", h.loadOptions)
	api.POST("/options", h.saveOptions)

	return router
}
