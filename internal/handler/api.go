package handler

import (
	"net/http"

	"github.com/devrev/ordermade/internal/model"
	"github.com/devrev/ordermade/internal/render"
	"github.com/devrev/ordermade/internal/tenant"
	"github.com/devrev/ordermade/internal/view"
)

// OrderView is one order in an API response.
type OrderView struct {
	Index        int               `json:"index"`
	OrderID      string            `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	Amount       string            `json:"amount"`
	Status       model.OrderStatus `json:"status"`
	Badge        model.Badge       `json:"badge"`
}

// OrdersResponse is the visible order window of the resolved tenant.
type OrdersResponse struct {
	Tenant       string      `json:"tenant"`
	TenantSource string      `json:"tenant_source"`
	DisplayName  string      `json:"display_name"`
	Logo         string      `json:"logo"`
	Page         int         `json:"page"`
	PerPage      int         `json:"per_page"`
	TotalPages   int         `json:"total_pages"`
	TotalOrders  int         `json:"total_orders"`
	Query        string      `json:"query"`
	Orders       []OrderView `json:"orders"`
}

// TenantView is one tenant in the tenant list.
type TenantView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	OrderCount int    `json:"order_count"`
	Active     bool   `json:"active"`
}

// TenantsResponse lists the known tenants.
type TenantsResponse struct {
	Current    string       `json:"current"`
	Default    string       `json:"default"`
	Switchable bool         `json:"switchable"`
	Tenants    []TenantView `json:"tenants"`
}

// ListOrders handles GET /api/v1/orders requests.
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	res := h.resolve(r)
	t, _ := h.registry.Tenant(res.Tenant)

	query := r.URL.Query()
	c := view.FromQuery(t.ID, query, h.defaultPerPage)
	win := c.Window(t.Orders)

	orders := make([]OrderView, 0, len(win.Orders))
	for i, o := range win.Orders {
		orders = append(orders, OrderView{
			Index:        win.Index(i),
			OrderID:      o.OrderID,
			CustomerName: o.CustomerName,
			Amount:       render.FormatAmount(o.Amount),
			Status:       o.Status,
			Badge:        o.Status.Badge(),
		})
	}

	h.metrics.RecordDashboardView(t.ID, "json")

	h.writeJSONResponse(w, http.StatusOK, OrdersResponse{
		Tenant:       t.ID,
		TenantSource: string(res.Source),
		DisplayName:  t.Name,
		Logo:         h.logos.Lookup(t.ID),
		Page:         win.Page,
		PerPage:      win.PageSize,
		TotalPages:   win.TotalPages,
		TotalOrders:  win.TotalOrders,
		Query:        c.Query(query).Encode(),
		Orders:       orders,
	})
}

// ListTenants handles GET /api/v1/tenants requests.
func (h *Handlers) ListTenants(w http.ResponseWriter, r *http.Request) {
	current := h.resolve(r).Tenant

	resp := TenantsResponse{
		Current:    current,
		Default:    h.resolver.Default(),
		Switchable: h.resolver.IsDevelopmentHost(tenant.Hostname(r.Host)),
		Tenants:    make([]TenantView, 0, h.registry.Len()),
	}
	for _, id := range h.registry.IDs() {
		t, _ := h.registry.Tenant(id)
		resp.Tenants = append(resp.Tenants, TenantView{
			ID:         t.ID,
			Name:       t.Name,
			Logo:       h.logos.Lookup(t.ID),
			OrderCount: t.OrderCount(),
			Active:     t.ID == current,
		})
	}

	h.writeJSONResponse(w, http.StatusOK, resp)
}
