package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// config holds internal HTTP server configuration
type config struct {
	addr              string
	readHeaderTimeout time.Duration
	controllers       []*Controller
	registry          *prometheus.Registry
	sentry            bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithReadHeaderTimeout sets the time allowed to read request headers
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(c *config) {
		c.readHeaderTimeout = d
	}
}

// WithController mounts a controller. Controllers are mounted in the order given.
func WithController(ctrl *Controller) Option {
	return func(c *config) {
		c.controllers = append(c.controllers, ctrl)
	}
}

// WithRegistry sets the Prometheus registry exposed at /metrics
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithSentry enables panic and error reporting to Sentry. sentry.Init must
// have been called beforehand.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, opts ...Option) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:              "localhost:8080",
		readHeaderTimeout: 15 * time.Second,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	m, err := newMetrics(cfg.registry)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(RequestIDMiddleware)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(m.Middleware)
	router.Use(middleware.Recoverer)
	if cfg.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	router.Method(http.MethodGet, "/metrics", m.Handler())

	if err := mountControllers(router, doc, cfg.controllers); err != nil {
		return nil, goerr.Wrap(err, "failed to mount controllers")
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: cfg.readHeaderTimeout,
		},
	}

	return server, nil
}
