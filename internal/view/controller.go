// Package view holds the per-request dashboard view state: which page of
// the tenant's orders is shown and how many orders fit on a page.
package view

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/devrev/ordermade/internal/model"
	"github.com/devrev/ordermade/internal/tenant"
)

const (
	// PerPageParam is the query parameter mirroring the page size.
	PerPageParam = "perPage"
	// PageParam is the query parameter carrying the 1-based page number.
	PageParam = "page"
	// DefaultPageSize is used when no valid page size is configured or requested.
	DefaultPageSize = 10
)

// Controller owns page and page size for one tenant's order list.
// Page is always >= 1 and reset to 1 whenever the page size or tenant changes.
type Controller struct {
	tenant   string
	page     int
	pageSize int
}

// New creates a controller on page 1. A non-positive pageSize means DefaultPageSize.
func New(tenantID string, pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		tenant:   tenantID,
		page:     1,
		pageSize: pageSize,
	}
}

// FromQuery restores a controller from perPage and page query parameters.
// Missing or invalid values fall back to defaultPageSize and page 1.
func FromQuery(tenantID string, query url.Values, defaultPageSize int) *Controller {
	c := New(tenantID, defaultPageSize)
	if size, ok := parsePositive(query.Get(PerPageParam)); ok {
		c.pageSize = size
	}
	if page, ok := parsePositive(query.Get(PageParam)); ok {
		c.page = page
	}
	return c
}

// Tenant returns the tenant the state belongs to.
func (c *Controller) Tenant() string { return c.tenant }

// Page returns the current 1-based page.
func (c *Controller) Page() int { return c.page }

// PageSize returns the number of orders per page.
func (c *Controller) PageSize() int { return c.pageSize }

// SetPage moves to page n. Values below 1 are ignored.
func (c *Controller) SetPage(n int) bool {
	if n < 1 {
		return false
	}
	c.page = n
	return true
}

// SetPageSize applies a user edit of the page size. Only positive integers
// are accepted; anything else leaves page and page size unchanged.
func (c *Controller) SetPageSize(raw string) bool {
	size, ok := parsePositive(raw)
	if !ok {
		return false
	}
	c.pageSize = size
	c.page = 1
	return true
}

// SetTenant switches the tenant, returning to page 1 if it changed.
func (c *Controller) SetTenant(id string) {
	if id == c.tenant {
		return
	}
	c.tenant = id
	c.page = 1
}

// Window computes the visible slice of orders. The current page is clamped
// into [1, TotalPages] first.
func (c *Controller) Window(orders []model.Order) Window {
	total := TotalPages(len(orders), c.pageSize)
	if c.page > total {
		c.page = total
	}
	if c.page < 1 {
		c.page = 1
	}

	start := (c.page - 1) * c.pageSize
	if start > len(orders) {
		start = len(orders)
	}
	end := len(orders)
	if rest := end - start; c.pageSize < rest {
		end = start + c.pageSize
	}

	return Window{
		Orders:      orders[start:end:end],
		Offset:      start,
		Page:        c.page,
		PageSize:    c.pageSize,
		TotalPages:  total,
		TotalOrders: len(orders),
	}
}

// Query mirrors the state into base. perPage is always written, page only
// when past the first page, and company only when base does not already
// carry one.
func (c *Controller) Query(base url.Values) url.Values {
	q := make(url.Values, len(base)+2)
	for k, v := range base {
		q[k] = append([]string(nil), v...)
	}
	q.Set(PerPageParam, strconv.Itoa(c.pageSize))
	if c.page > 1 {
		q.Set(PageParam, strconv.Itoa(c.page))
	} else {
		q.Del(PageParam)
	}
	if !q.Has(tenant.QueryParam) && c.tenant != "" {
		q.Set(tenant.QueryParam, c.tenant)
	}
	return q
}

// TotalPages returns ceil(n / pageSize), or 0 for an invalid page size.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 || n <= 0 {
		return 0
	}
	pages := n / pageSize
	if n%pageSize != 0 {
		pages++
	}
	return pages
}

func parsePositive(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
