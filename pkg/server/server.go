package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"time"

	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"

	"github.com/ranorsolutions/route-common-go/pkg/http"
)

const shutdownGrace = 5 * time.Second

// BindError reports that the listening address could not be acquired. It
// is the only observable failure at dispatch-setup time: once New returns
// without one, the listener is held and routes become reachable on Run.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

type Server struct {
	Listener net.Listener
	HTTP     *http.HTTPService
}

// New binds the TCP listener up front so a conflicting, invalid, or
// privileged address fails before any request can be served.
func New(svc *http.HTTPService, addr string) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("http service cannot be nil")
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}

	return &Server{
		Listener: listener,
		HTTP:     svc,
	}, nil
}

// Run serves the engine on the bound listener until ctx is canceled, then
// shuts the HTTP server down gracefully. The returned error is ctx's when
// the stop was requested, or the first serve failure otherwise. Handler
// failures never surface here; they are rendered per-request.
func (s *Server) Run(ctx context.Context) error {
	m := cmux.New(s.Listener)
	httpListener := m.Match(cmux.HTTP1Fast())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.HTTP.ListenAndServe(httpListener); !ignorableServeErr(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := m.Serve(); !ignorableServeErr(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		err := s.Shutdown(shutdownCtx)
		m.Close()
		s.Listener.Close()
		if err != nil {
			return err
		}
		return ctx.Err()
	})

	return g.Wait()
}

// Shutdown drains in-flight requests on the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Server.Shutdown(ctx)
}

// ignorableServeErr filters the errors a serve loop reports when it is
// torn down on purpose.
func ignorableServeErr(err error) bool {
	return err == nil ||
		errors.Is(err, nethttp.ErrServerClosed) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, cmux.ErrListenerClosed) ||
		errors.Is(err, cmux.ErrServerClosed)
}
