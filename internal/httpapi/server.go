// Package httpapi serves the xutil conversions and generators over HTTP.
//
// Routes live under /api and return JSON. Errors are reported as
// {"detail": "..."} with a status derived from the xuerrors category:
// 400 for validation failures, 401 for rejected tokens, 404 for unknown
// conversion domains, 413 for oversized bodies, 422 for malformed request
// bodies, unprocessable input and conversion overflow, and 500 for everything
// else.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/erraggy/xutil/internal/config"
	"github.com/erraggy/xutil/internal/metrics"
)

// Prefix is the path prefix of every API route.
const Prefix = "/api"

// Server is the HTTP API server.
type Server struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metrics.Metrics
	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics enables request and operation metrics and mounts GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// New builds a Server for cfg.
func New(cfg config.HTTP, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if s.cfg.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(s.cfg.MaxBodyBytes))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusNotFound, errorBody{Detail: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusMethodNotAllowed, errorBody{Detail: "Method Not Allowed"})
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route(Prefix, func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "Online"})
		})
		s.unitRoutes(r)
		s.formatRoutes(r)
		s.codecRoutes(r)
		s.generateRoutes(r)
		s.textRoutes(r)
		s.timeRoutes(r)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("httpapi: listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpapi: serve: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}
	return nil
}
