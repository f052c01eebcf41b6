package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/dsaviz/pkg/httputil"
	"github.com/matzehuels/dsaviz/pkg/observability"
	"github.com/matzehuels/dsaviz/pkg/pipeline"
	"github.com/matzehuels/dsaviz/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DefaultAddr is the listen address when Options.Addr is empty.
	DefaultAddr = ":8080"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// =============================================================================
// Server
// =============================================================================

// Options configures a Server.
type Options struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string

	// Gatherer serves /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// AllowedOrigins restricts WebSocket upgrades by Origin header. Empty
	// allows every origin.
	AllowedOrigins []string
}

// Server serves sequences and playback sessions from a pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	opts     Options
	upgrader websocket.Upgrader
	router   chi.Router
	sessions *session.Registry
}

// New creates a server. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	s := &Server{
		runner:   runner,
		logger:   logger,
		opts:     opts,
		sessions: session.NewRegistry(),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httputil.Observe(func(method, route string, status int, d time.Duration) {
		observability.Server().OnResponse(method, route, status, d)
		s.logger.Debug("request", "method", method, "route", route, "status", status, "duration", d)
	}))

	r.Get("/healthz", s.handleHealth)
	if s.opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/topics", s.handleTopics)
		r.Get("/topics/{topic}", s.handleTopic)
		r.Get("/styles", s.handleStyles)
		r.Post("/sequences", s.handleSequence)
		r.Post("/sequences/batch", s.handleBatch)
		r.Post("/frames", s.handleFrame)
		r.Get("/play", s.handlePlay)
		r.Get("/sessions", s.handleSessions)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully. Open playback sessions are closed with ctx.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range s.opts.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}
