package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	mid "github.com/suteetoe/employee-service/internal/middleware"
	"github.com/suteetoe/employee-service/internal/service"
	"github.com/suteetoe/employee-service/pkg/logger"
	"github.com/suteetoe/employee-service/pkg/metrics"
)

// ServerOptions collects what NewServer wires together.
type ServerOptions struct {
	Service *service.EmployeeService
	DB      Pinger
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Gatherer backs /metrics; the route is omitted when nil
	Gatherer prometheus.Gatherer
	CSRF     bool
}

// NewServer builds the echo instance with middleware and every route.
func NewServer(opts ServerOptions) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.GetLogger()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(opts.Metrics.Middleware())
	e.Use(logger.Middleware(log))
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      func(c echo.Context) bool { return !isAPIRequest(c) },
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	if opts.CSRF {
		e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			Skipper:        isAPIRequest,
			TokenLookup:    "form:_csrf",
			ContextKey:     csrfKey,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSameSite: http.SameSiteStrictMode,
		}))
	}

	// Routes
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(opts.Gatherer)))
	}
	e.GET("/health", NewHealthHandler(opts.DB).HealthCheck)

	NewEmployeeHandler(opts.Service).Register(e)
	NewAPIHandler(opts.Service).Register(e.Group("/api/employees"))

	return e, nil
}

func isAPIRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}
