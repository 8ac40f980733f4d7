// Package server provides the HTTP server implementation for the order dashboard.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/devrev/ordermade/internal/config"
	apierrors "github.com/devrev/ordermade/internal/errors"
	"github.com/devrev/ordermade/internal/fixture"
	"github.com/devrev/ordermade/internal/handler"
	"github.com/devrev/ordermade/internal/health"
	"github.com/devrev/ordermade/internal/logo"
	"github.com/devrev/ordermade/internal/metrics"
	"github.com/devrev/ordermade/internal/middleware"
	"github.com/devrev/ordermade/internal/render"
	"github.com/devrev/ordermade/internal/tenant"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server represents the HTTP server.
type Server struct {
	router       *mux.Router
	httpServer   *http.Server
	registry     *fixture.Registry
	resolver     *tenant.Resolver
	handlers     *handler.Handlers
	healthCheck  *health.HealthCheck
	metrics      *metrics.Metrics
	errorHandler *apierrors.Handler
	logger       *zap.Logger
	cfg          *config.Config
}

// NewServer creates a new HTTP server serving the tenants in registry.
func NewServer(cfg *config.Config, registry *fixture.Registry, logger *zap.Logger) (*Server, error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	errorHandler := apierrors.NewHandler(logger)
	m := metrics.NewMetrics()
	resolver := tenant.NewResolver(registry, cfg.Tenants.Default, cfg.Tenants.DevHosts, logger)
	logos := logo.NewService(logoMap(registry, cfg.Tenants.Logos), cfg.Tenants.DefaultLogo)
	handlers := handler.NewHandlers(registry, resolver, logos, renderer, m, errorHandler, logger, cfg.Pagination)
	healthCheck := health.NewHealthCheck(registry, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		router:       router,
		httpServer:   httpServer,
		registry:     registry,
		resolver:     resolver,
		handlers:     handlers,
		healthCheck:  healthCheck,
		metrics:      m,
		errorHandler: errorHandler,
		logger:       logger,
		cfg:          cfg,
	}, nil
}

// logoMap merges the fixture's logos with configured overrides.
func logoMap(registry *fixture.Registry, overrides map[string]string) map[string]string {
	logos := make(map[string]string, registry.Len()+len(overrides))
	for _, id := range registry.IDs() {
		if t, ok := registry.Tenant(id); ok && t.Logo != "" {
			logos[id] = t.Logo
		}
	}
	for id, url := range overrides {
		logos[id] = url
	}
	return logos
}

// SetupRoutes configures all HTTP routes.
func (s *Server) SetupRoutes() {
	middlewareChain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.errorHandler, s.logger),
		middleware.RequestID,
		middleware.Tenant(s.resolver, s.metrics.RecordTenantResolution),
		middleware.Logging(s.logger),
		metrics.MetricsMiddleware(s.metrics),
		middleware.CORS(s.cfg.Server.AllowedOrigins),
	}

	if s.cfg.RateLimiter.Enabled {
		rateLimiter := middleware.NewRateLimiter(
			s.cfg.RateLimiter.RequestsPerSecond,
			s.cfg.RateLimiter.BurstSize,
			s.errorHandler,
			s.logger,
		)
		middlewareChain = append(middlewareChain, rateLimiter.Limit)
	}

	chain := middleware.Chain(middlewareChain...)
	s.router.Use(func(next http.Handler) http.Handler {
		return chain(next)
	})

	// Health check endpoints
	s.router.HandleFunc("/health", s.healthCheck.LivenessHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/ready", s.healthCheck.ReadinessHandler).Methods(http.MethodGet)

	// Dashboard
	s.router.HandleFunc("/", s.handlers.Dashboard).Methods(http.MethodGet)
	s.router.HandleFunc("/switch/{company}", s.handlers.SwitchTenant).Methods(http.MethodGet)
	s.router.HandleFunc("/per-page", s.handlers.SetPerPage).Methods(http.MethodPost)
	s.router.PathPrefix("/logos/").Handler(http.StripPrefix("/logos/", render.Logos())).Methods(http.MethodGet)

	// API v1 routes
	v1 := s.router.PathPrefix("/api/v1").Subrouter()
	v1.Use(middleware.APIHeaders)
	v1.HandleFunc("/orders", s.handlers.ListOrders).Methods(http.MethodGet)
	v1.HandleFunc("/tenants", s.handlers.ListTenants).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler.WriteNotFound(w, r.Header.Get("X-Request-ID"))
	})

	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler.WriteMethodNotAllowed(w, r.Header.Get("X-Request-ID"))
	})
}

// Start starts the HTTP server. It returns nil after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server",
		zap.Int("port", s.cfg.Server.Port),
		zap.Int("tenants", s.registry.Len()),
		zap.String("default_tenant", s.resolver.Default()),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown marks the server not ready and gracefully shuts it down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	s.healthCheck.SetReady(false)
	s.metrics.SetHealthStatus(false)
	return s.httpServer.Shutdown(ctx)
}

// GetHandler returns the http.Handler for the server.
func (s *Server) GetHandler() http.Handler {
	return s.router
}
