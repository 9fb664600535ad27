package http

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ranorsolutions/route-common-go/pkg/log/logger"
	"github.com/ranorsolutions/route-common-go/pkg/route"
)

// Config carries everything the dispatcher needs to stand up the engine.
type Config struct {
	Routes  []route.Route
	Logger  *logger.Logger
	Docs    bool
	Metrics bool
}

type HTTPService struct {
	Engine *gin.Engine
	Server *http.Server
	Logger *logger.Logger
}

// New builds a Gin engine from the finished route table. Every route is
// handed to the engine's method-specific registration primitive; when the
// table holds duplicate (method, path) entries only the last one reaches
// the engine, since the engine rejects re-registration of a handled
// pattern.
func New(cfg Config) (*HTTPService, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	routes := dedupe(cfg.Routes, cfg.Logger)
	for _, r := range routes {
		cfg.Logger.Info("Registering: %s %s", r.Method, r.Path)
		switch r.Method {
		case route.MethodGet:
			engine.GET(r.Path, adapt(r.Handler))
		case route.MethodPut:
			engine.PUT(r.Path, adapt(r.Handler))
		case route.MethodPost:
			engine.POST(r.Path, adapt(r.Handler))
		case route.MethodDelete:
			engine.DELETE(r.Path, adapt(r.Handler))
		default:
			cfg.Logger.Warn("unrecognized HTTP method %q for route %s", r.Method, r.Path)
		}
	}

	if cfg.Docs {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Metrics {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	cfg.Logger.Debug("route table: %s", strings.Join(lo.Map(routes, func(r route.Route, _ int) string {
		return fmt.Sprintf("%s %s", r.Method, r.Path)
	}), ", "))

	server := &http.Server{Handler: engine}

	return &HTTPService{
		Server: server,
		Engine: engine,
		Logger: cfg.Logger,
	}, nil
}

// dedupe resolves duplicate (method, path) registrations last-wins while
// preserving the table's insertion order for everything else.
func dedupe(routes []route.Route, log *logger.Logger) []route.Route {
	last := map[string]int{}
	for i, r := range routes {
		key := string(r.Method) + " " + r.Path
		if _, ok := last[key]; ok {
			log.Warn("route %s registered more than once; keeping the later handler", key)
		}
		last[key] = i
	}

	out := make([]route.Route, 0, len(last))
	for i, r := range routes {
		if last[string(r.Method)+" "+r.Path] == i {
			out = append(out, r)
		}
	}
	return out
}

// adapt bridges a route handler onto the engine. A handler error is not
// intercepted beyond rendering the conventional 500 payload; the response
// value is written back verbatim.
func adapt(h route.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(resp.Status, resp.ContentType, resp.Body)
	}
}

// Handler exposes the engine as a plain http.Handler. This is the
// in-memory test service: no socket is opened, and requests served this
// way exercise the same routing behavior as the network path.
func (s *HTTPService) Handler() http.Handler {
	return s.Engine
}

// ListenAndServe starts serving requests on the given listener.
func (s *HTTPService) ListenAndServe(l net.Listener) error {
	s.Logger.Info("HTTP server listening on %s", formatAddr(l.Addr().String()))
	return s.Server.Serve(l)
}

// formatAddr normalizes the listener address for readable logs.
func formatAddr(addr string) string {
	re := regexp.MustCompile(`\[::\]`)
	return re.ReplaceAllString(addr, "http://localhost")
}
