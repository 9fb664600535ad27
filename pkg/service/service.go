package service

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"

	"github.com/ranorsolutions/route-common-go/pkg/http"
	"github.com/ranorsolutions/route-common-go/pkg/log/logger"
	"github.com/ranorsolutions/route-common-go/pkg/route"
	"github.com/ranorsolutions/route-common-go/pkg/server"
)

// DefaultAddr is used by Run when neither PORT nor WithAddr overrides it.
const DefaultAddr = "127.0.0.1:8080"

// Service is the user-facing container: a logger, a listen address, and
// the route table built up through PublicRoute before a terminal
// operation (Run, Bind, TestService) consumes it.
type Service struct {
	Logger *logger.Logger
	Addr   string

	table   *route.Table
	docs    bool
	metrics bool
	httpSvc *http.HTTPService
}

type Option func(*Service)

// WithAddr overrides the listen address (host:port).
func WithAddr(addr string) Option {
	return func(s *Service) { s.Addr = addr }
}

// WithLogger replaces the env-configured logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.Logger = l }
}

// WithDocs mounts the swagger UI at GET /swagger/*any.
func WithDocs() Option {
	return func(s *Service) { s.docs = true }
}

// WithMetrics mounts the prometheus exposition handler at GET /metrics.
func WithMetrics() Option {
	return func(s *Service) { s.metrics = true }
}

// New creates the service container. The logger is configured from the
// SERVICE, VERSION and IS_TERMINAL environment variables; the listen
// address defaults to 127.0.0.1:8080, with PORT overriding the port.
// Options take precedence over the environment.
func New(opts ...Option) (*Service, error) {
	log, err := logger.New(os.Getenv("SERVICE"), os.Getenv("VERSION"), os.Getenv("IS_TERMINAL") != "true")
	if err != nil {
		return nil, fmt.Errorf("unable to create service logger: %w", err)
	}

	addr := DefaultAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = "127.0.0.1:" + port
	}

	svc := &Service{
		Logger: log,
		Addr:   addr,
		table:  route.NewTable(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// PublicRoute appends one route and returns the service for chaining.
// Acceptance is unconditional; duplicates are resolved last-wins at
// dispatch time. Calling PublicRoute after a terminal operation panics,
// the table is frozen then.
func (s *Service) PublicRoute(path string, method route.Method, handler route.HandlerFunc) *Service {
	s.table.Add(path, method, handler)
	return s
}

// RouteCount reports the number of registered routes, duplicates included.
func (s *Service) RouteCount() int {
	return s.table.Count()
}

// Run serves on the configured address until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	return s.Bind(ctx, s.Addr)
}

// Bind serves on an explicit address. A *server.BindError is returned
// when the address cannot be acquired; otherwise the call blocks while
// serving.
func (s *Service) Bind(ctx context.Context, addr string) error {
	hs, err := s.build()
	if err != nil {
		return err
	}

	srv, err := server.New(hs, addr)
	if err != nil {
		return err
	}

	s.Logger.Info("serving %d routes on %s", s.table.Count(), srv.Listener.Addr())
	return srv.Run(ctx)
}

// TestService returns an in-memory handler with the same routing behavior
// as the network path. No socket is opened.
func (s *Service) TestService() (nethttp.Handler, error) {
	hs, err := s.build()
	if err != nil {
		return nil, err
	}
	return hs.Handler(), nil
}

// build freezes the table and constructs the engine exactly once; later
// terminal operations reuse the dispatched service.
func (s *Service) build() (*http.HTTPService, error) {
	if s.httpSvc != nil {
		return s.httpSvc, nil
	}

	hs, err := http.New(http.Config{
		Routes:  s.table.Freeze(),
		Logger:  s.Logger,
		Docs:    s.docs,
		Metrics: s.metrics,
	})
	if err != nil {
		return nil, err
	}

	s.httpSvc = hs
	return hs, nil
}
