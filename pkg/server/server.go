// Package server assembles the HTTP API: echo with recovery, request
// context, tracing, request logging, the shared error handler, and the
// route groups.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/pkg/datastore"
	"github.com/Ramsey-B/fern/pkg/middleware"
	comparisonroutes "github.com/Ramsey-B/fern/pkg/routes/comparison"
	datasetroutes "github.com/Ramsey-B/fern/pkg/routes/dataset"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// Server wraps echo with its lifecycle.
type Server struct {
	echo    *echo.Echo
	logger  ectologger.Logger
	cfg     config.Config
	checker *health.Checker
}

// New builds the API server. The datastore backs both the dataset
// routes and the health checker.
func New(logger ectologger.Logger, cfg config.Config, store *datastore.Store, version string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%d", cfg.MaxUploadBytes)))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.HTTPErrorHandler = middleware.Error(logger)

	datasetroutes.Register(e.Group("/api/v1/datasets"))
	comparisonroutes.Register(e.Group("/api/v1/comparisons"))

	checker := health.NewChecker(store, version)
	checker.RegisterRoutes(e)

	return &Server{
		echo:    e,
		logger:  logger,
		cfg:     cfg,
		checker: checker,
	}
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start listens on the configured port and blocks until the server
// stops.
func (s *Server) Start() error {
	if s.cfg.TracingEnabled {
		otlp := exporters.DefaultOTLPConfig()
		otlp.Endpoint = s.cfg.OTLPEndpoint
		otlp.Protocol = s.cfg.OTLPProtocol
		otlp.Insecure = s.cfg.OTLPInsecure

		shutdown, err := tracing.Setup(context.Background(), s.cfg.AppName, otlp)
		if err != nil {
			return fmt.Errorf("setup tracing: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				s.logger.WithError(err).Warn("Failed to flush spans on shutdown")
			}
		}()
	}

	s.checker.SetReady(true)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		ReadTimeout:       time.Duration(s.cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    s.cfg.MaxHeaderBytes,
	}

	s.logger.WithField("port", s.cfg.Port).Infof("Starting %s", s.cfg.AppName)
	if err := s.echo.StartServer(srv); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.checker.SetReady(false)
	return s.echo.Shutdown(ctx)
}
