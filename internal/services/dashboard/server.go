// Package dashboard serves the launch records dashboard over HTTP.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/platform/timeouts"
	"github.com/louisbranch/launchboard/internal/services/dashboard/callback"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/observability"
	"github.com/louisbranch/launchboard/internal/services/dashboard/render"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchboard/internal/services/dashboard/static"
)

// Config defines the inputs for the dashboard server.
type Config struct {
	HTTPAddr  string
	ChartSize render.Size
	// Logger receives one line per request. Nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	dataset  *dataset.Dataset
	registry *callback.Registry
	size     render.Size
}

// NewHandler assembles the dashboard routes for ds.
func NewHandler(config Config, ds *dataset.Dataset) (http.Handler, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, errors.New("dataset is required")
	}
	registry, err := NewRegistry(ds)
	if err != nil {
		return nil, err
	}
	h := &handler{dataset: ds, registry: registry, size: config.ChartSize}

	get := httpx.RequireMethod(http.MethodGet)
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, httpx.Chain(
		http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))),
		get,
	))
	mux.Handle(routepath.Health, httpx.Chain(http.HandlerFunc(h.handleHealth), get))
	mux.Handle(routepath.ChartPattern, httpx.Chain(http.HandlerFunc(h.handleChart), get))
	mux.Handle(routepath.Root, httpx.Chain(http.HandlerFunc(h.handlePage), get))

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.RequestLogger(config.Logger),
		observability.Trace(),
	), nil
}

// NewServer builds a configured dashboard server.
func NewServer(config Config, ds *dataset.Dataset) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	h, err := NewHandler(config, ds)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           h,
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("dashboard server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("dashboard listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
