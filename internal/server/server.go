// Package server exposes layout generation over HTTP.
//
// Routes:
//
//	POST /generate  {"names": [...]} -> array of 20x20 cell matrices
//	GET  /healthz   liveness and build information
//	GET  /*         static files
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/crossnames/pkg/pipeline"
)

const (
	maxBodyBytes    = 64 << 10
	shutdownTimeout = 10 * time.Second
)

// Options configures a [Server].
type Options struct {
	Addr       string
	StaticDir  string // empty disables static files
	CORSOrigin string // empty disables CORS headers
	RateLimit  int    // POST /generate requests per minute per client, 0 disables

	// Generate is the template applied to every request.
	Generate pipeline.Options

	Logger *log.Logger
}

// Server serves the HTTP API.
type Server struct {
	opts    Options
	runner  *pipeline.Runner
	logger  *log.Logger
	limiter *rateLimiter
	router  chi.Router
}

// New creates a server generating layouts through runner.
func New(runner *pipeline.Runner, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = runner.Logger
	}
	s := &Server{
		opts:   opts,
		runner: runner,
		logger: opts.Logger,
	}
	if opts.RateLimit > 0 {
		s.limiter = newRateLimiter(opts.RateLimit, time.Minute)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	if s.opts.CORSOrigin != "" {
		r.Use(corsHandler(s.opts.CORSOrigin))
	}

	r.Get("/healthz", s.handleHealth)
	r.With(s.rateLimit).Post("/generate", s.handleGenerate)

	if s.opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.opts.StaticDir)))
	}
	s.router = r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server running", "addr", s.opts.Addr, "static", s.opts.StaticDir)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
