// Package handler provides HTTP request handlers for the order dashboard.
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/devrev/ordermade/internal/config"
	apierrors "github.com/devrev/ordermade/internal/errors"
	"github.com/devrev/ordermade/internal/fixture"
	"github.com/devrev/ordermade/internal/logo"
	"github.com/devrev/ordermade/internal/metrics"
	"github.com/devrev/ordermade/internal/middleware"
	"github.com/devrev/ordermade/internal/model"
	"github.com/devrev/ordermade/internal/render"
	"github.com/devrev/ordermade/internal/tenant"
	"github.com/devrev/ordermade/internal/view"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	registry       *fixture.Registry
	resolver       *tenant.Resolver
	logos          *logo.Service
	renderer       *render.Renderer
	metrics        *metrics.Metrics
	errorHandler   *apierrors.Handler
	logger         *zap.Logger
	defaultPerPage int
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	registry *fixture.Registry,
	resolver *tenant.Resolver,
	logos *logo.Service,
	renderer *render.Renderer,
	m *metrics.Metrics,
	errorHandler *apierrors.Handler,
	logger *zap.Logger,
	cfg config.PaginationConfig,
) *Handlers {
	return &Handlers{
		registry:       registry,
		resolver:       resolver,
		logos:          logos,
		renderer:       renderer,
		metrics:        m,
		errorHandler:   errorHandler,
		logger:         logger,
		defaultPerPage: cfg.DefaultPerPage,
	}
}

// Dashboard handles GET / requests.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	res := h.resolve(r)
	t, _ := h.registry.Tenant(res.Tenant)

	query := r.URL.Query()
	c := view.FromQuery(t.ID, query, h.defaultPerPage)
	win := c.Window(t.Orders)

	tenants := make([]model.Tenant, 0, h.registry.Len())
	for _, id := range h.registry.IDs() {
		other, _ := h.registry.Tenant(id)
		tenants = append(tenants, other)
	}

	page := render.BuildDashboard(render.Input{
		Tenant:     t,
		Logo:       h.logos.Lookup(t.ID),
		Tenants:    tenants,
		Window:     win,
		Query:      c.Query(query),
		Switchable: h.resolver.IsDevelopmentHost(tenant.Hostname(r.Host)),
	})

	var buf bytes.Buffer
	if err := h.renderer.Dashboard(&buf, page); err != nil {
		h.logger.Error("failed to render dashboard",
			zap.String("tenant", t.ID),
			zap.String("request_id", requestID),
			zap.Error(err))
		h.errorHandler.WriteInternalError(w, "failed to render dashboard", requestID)
		return
	}

	h.metrics.RecordDashboardView(t.ID, "html")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write dashboard", zap.Error(err))
	}
}

// SwitchTenant handles GET /switch/{company} requests. A known tenant
// redirects to the dashboard with the company parameter rewritten and the
// page reset; an unknown one is rejected and nothing changes. Only
// development hosts honour the company parameter, so production hosts
// reject every switch.
func (h *Handlers) SwitchTenant(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	target := mux.Vars(r)["company"]
	current := h.resolve(r).Tenant

	if hostname := tenant.Hostname(r.Host); !h.resolver.IsDevelopmentHost(hostname) {
		h.metrics.RecordTenantSwitch(false)
		h.logger.Info("tenant switch unavailable on production host",
			zap.String("host", hostname),
			zap.String("current", current),
			zap.String("target", target),
			zap.String("request_id", requestID))
		h.errorHandler.WriteSwitchUnavailable(w, hostname, requestID)
		return
	}

	query := r.URL.Query()
	sel := tenant.NewSelection(h.registry, current, query)
	if !sel.Switch(target) {
		h.metrics.RecordTenantSwitch(false)
		h.logger.Info("tenant switch rejected",
			zap.String("current", current),
			zap.String("target", target),
			zap.String("request_id", requestID))
		h.errorHandler.WriteTenantNotFound(w, target, requestID)
		return
	}
	h.metrics.RecordTenantSwitch(true)

	c := view.FromQuery(current, query, h.defaultPerPage)
	c.SetTenant(sel.Current())

	http.Redirect(w, r, "/?"+c.Query(sel.Query()).Encode(), http.StatusSeeOther)
}

// SetPerPage handles POST /per-page requests. The current view comes from
// the query string and the edit from the perPage form field. An invalid
// edit redirects back to the unchanged view.
func (h *Handlers) SetPerPage(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if err := r.ParseForm(); err != nil {
		h.errorHandler.WriteValidationError(w, "invalid form body", requestID)
		return
	}

	res := h.resolve(r)
	query := r.URL.Query()
	c := view.FromQuery(res.Tenant, query, h.defaultPerPage)

	raw := r.PostForm.Get(view.PerPageParam)
	accepted := c.SetPageSize(raw)
	h.metrics.RecordPageSizeEdit(accepted)
	if !accepted {
		h.logger.Debug("ignoring invalid page size",
			zap.String("value", raw),
			zap.String("request_id", requestID))
	}

	http.Redirect(w, r, "/?"+c.Query(query).Encode(), http.StatusSeeOther)
}

// resolve returns the tenant stored by the tenant middleware, resolving it
// here when the handler runs without it.
func (h *Handlers) resolve(r *http.Request) tenant.Resolution {
	if res, ok := middleware.TenantFromContext(r.Context()); ok {
		return res
	}
	return h.resolver.Resolve(r.Host, r.URL.Query())
}

// writeJSONResponse writes a JSON response to the HTTP response writer.
func (h *Handlers) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
