// Package render turns a tenant's order window into the dashboard page.
package render

import (
	"net/url"
	"strconv"

	"github.com/devrev/ordermade/internal/model"
	"github.com/devrev/ordermade/internal/tenant"
	"github.com/devrev/ordermade/internal/view"
	"github.com/shopspring/decimal"
)

// pageSiblings is how many page links are shown on each side of the current page.
const pageSiblings = 2

// Chip is a tenant shortcut in the header. Href is empty when switching is
// unavailable.
type Chip struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// Row is one rendered order.
type Row struct {
	Index        int
	OrderID      string
	CustomerName string
	Amount       string
	Status       model.OrderStatus
	Badge        model.Badge
}

// PageLink is a numbered pagination link.
type PageLink struct {
	Number  int
	Href    string
	Current bool
}

// Pagination holds the pagination control. Empty hrefs mean the control is disabled.
type Pagination struct {
	First string
	Prev  string
	Next  string
	Last  string
	Pages []PageLink
}

// Dashboard is the template model of the order dashboard.
type Dashboard struct {
	Title         string
	TenantID      string
	TenantName    string
	Logo          string
	Chips         []Chip
	Rows          []Row
	PerPage       int
	PerPageAction string
	Pagination    Pagination
	CanonicalURL  string
}

// Input is everything needed to build a Dashboard.
type Input struct {
	Tenant  model.Tenant
	Logo    string
	Tenants []model.Tenant
	Window  view.Window
	// Query is the canonical query string of the current view.
	Query url.Values
	// Switchable enables the chip links to the manual switch route.
	Switchable bool
}

// BuildDashboard assembles the template model.
func BuildDashboard(in Input) Dashboard {
	d := Dashboard{
		Title:         in.Tenant.Name + " Orders",
		TenantID:      in.Tenant.ID,
		TenantName:    in.Tenant.Name,
		Logo:          in.Logo,
		PerPage:       in.Window.PageSize,
		PerPageAction: "/per-page?" + in.Query.Encode(),
		CanonicalURL:  "/?" + in.Query.Encode(),
	}

	switchQuery := cloneQuery(in.Query)
	switchQuery.Del(tenant.QueryParam)
	switchQuery.Del(view.PageParam)
	for _, t := range in.Tenants {
		chip := Chip{
			ID:     t.ID,
			Label:  t.ID + " (" + strconv.Itoa(t.OrderCount()) + ")",
			Active: t.ID == in.Tenant.ID,
		}
		if in.Switchable {
			chip.Href = SwitchURL(t.ID, switchQuery)
		}
		d.Chips = append(d.Chips, chip)
	}

	for i, o := range in.Window.Orders {
		d.Rows = append(d.Rows, Row{
			Index:        in.Window.Index(i),
			OrderID:      o.OrderID,
			CustomerName: o.CustomerName,
			Amount:       FormatAmount(o.Amount),
			Status:       o.Status,
			Badge:        o.Status.Badge(),
		})
	}

	w := in.Window
	if w.HasPrev() {
		d.Pagination.First = PageURL(in.Query, 1)
		d.Pagination.Prev = PageURL(in.Query, w.Page-1)
	}
	if w.HasNext() {
		d.Pagination.Next = PageURL(in.Query, w.Page+1)
		d.Pagination.Last = PageURL(in.Query, w.TotalPages)
	}
	for _, n := range w.Pages(pageSiblings) {
		d.Pagination.Pages = append(d.Pagination.Pages, PageLink{
			Number:  n,
			Href:    PageURL(in.Query, n),
			Current: n == w.Page,
		})
	}

	return d
}

// PageURL returns the dashboard URL for page n of query.
func PageURL(query url.Values, n int) string {
	q := cloneQuery(query)
	if n > 1 {
		q.Set(view.PageParam, strconv.Itoa(n))
	} else {
		q.Del(view.PageParam)
	}
	return "/?" + q.Encode()
}

// SwitchURL returns the manual tenant switch URL carrying query.
func SwitchURL(tenantID string, query url.Values) string {
	u := "/switch/" + url.PathEscape(tenantID)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// FormatAmount renders an order amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func cloneQuery(query url.Values) url.Values {
	q := make(url.Values, len(query))
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	return q
}
