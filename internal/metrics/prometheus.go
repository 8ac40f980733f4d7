// Package metrics provides Prometheus metrics for the dashboard server.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/devrev/ordermade/internal/tenant"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	requestsInFlight  prometheus.Gauge
	responseSize      *prometheus.HistogramVec
	tenantResolutions *prometheus.CounterVec
	tenantSwitches    *prometheus.CounterVec
	pageSizeEdits     *prometheus.CounterVec
	dashboardViews    *prometheus.CounterVec
	healthStatus      prometheus.Gauge
}

var globalMetrics *Metrics

// NewMetrics creates and registers Prometheus metrics.
func NewMetrics() *Metrics {
	if globalMetrics != nil {
		return globalMetrics
	}

	globalMetrics = &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordermade_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ordermade_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path", "status"},
		),
		requestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ordermade_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		responseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ordermade_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
			},
			[]string{"method", "path"},
		),
		tenantResolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordermade_tenant_resolutions_total",
				Help: "Tenant resolutions by resolved tenant and source",
			},
			[]string{"tenant", "source"},
		),
		tenantSwitches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordermade_tenant_switches_total",
				Help: "Manual tenant switches by outcome",
			},
			[]string{"outcome"},
		),
		pageSizeEdits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordermade_page_size_edits_total",
				Help: "Page size edits by outcome",
			},
			[]string{"outcome"},
		),
		dashboardViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordermade_dashboard_views_total",
				Help: "Rendered order windows by tenant and format",
			},
			[]string{"tenant", "format"},
		),
		healthStatus: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ordermade_health_status",
				Help: "Health status of the dashboard (1 = healthy, 0 = unhealthy)",
			},
		),
	}

	return globalMetrics
}

// RecordHTTPRequest records metrics for an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.requestsTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordResponseSize records the response size.
func (m *Metrics) RecordResponseSize(method, path string, size int) {
	m.responseSize.WithLabelValues(method, path).Observe(float64(size))
}

// IncRequestsInFlight increments the in-flight requests counter.
func (m *Metrics) IncRequestsInFlight() {
	m.requestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight requests counter.
func (m *Metrics) DecRequestsInFlight() {
	m.requestsInFlight.Dec()
}

// RecordTenantResolution counts a tenant resolution.
func (m *Metrics) RecordTenantResolution(res tenant.Resolution) {
	m.tenantResolutions.WithLabelValues(res.Tenant, string(res.Source)).Inc()
}

// RecordTenantSwitch counts a manual tenant switch.
func (m *Metrics) RecordTenantSwitch(accepted bool) {
	m.tenantSwitches.WithLabelValues(outcome(accepted)).Inc()
}

// RecordPageSizeEdit counts a page size edit.
func (m *Metrics) RecordPageSizeEdit(accepted bool) {
	m.pageSizeEdits.WithLabelValues(outcome(accepted)).Inc()
}

// RecordDashboardView counts a rendered order window.
func (m *Metrics) RecordDashboardView(tenantID, format string) {
	m.dashboardViews.WithLabelValues(tenantID, format).Inc()
}

// SetHealthStatus sets the health status.
func (m *Metrics) SetHealthStatus(healthy bool) {
	if healthy {
		m.healthStatus.Set(1)
	} else {
		m.healthStatus.Set(0)
	}
}

func outcome(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}

// MetricsServer provides a separate HTTP server for Prometheus metrics.
type MetricsServer struct {
	server *http.Server
	logger *zap.Logger
}

// NewMetricsServer creates a new metrics server.
func NewMetricsServer(port int, path string, logger *zap.Logger) *MetricsServer {
	serveMux := http.NewServeMux()
	serveMux.Handle(path, promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           serveMux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start starts the metrics server. It returns nil after Shutdown.
func (ms *MetricsServer) Start() error {
	ms.logger.Info("starting metrics server", zap.String("addr", ms.server.Addr))
	if err := ms.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the metrics server.
func (ms *MetricsServer) Shutdown(ctx context.Context) error {
	return ms.server.Shutdown(ctx)
}

// MetricsMiddleware creates middleware that records HTTP metrics.
// Paths are labelled with the matched route template to bound cardinality.
func MetricsMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.IncRequestsInFlight()
			defer m.DecRequestsInFlight()

			start := time.Now()
			rw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			path := routeTemplate(r)
			m.RecordHTTPRequest(r.Method, path, rw.statusCode, time.Since(start))
			m.RecordResponseSize(r.Method, path, rw.size)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// metricsResponseWriter wraps http.ResponseWriter to capture metrics.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

// WriteHeader captures the status code.
func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write captures the response size.
func (rw *metricsResponseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
