package model

// Tenant is a company whose orders are displayed.
type Tenant struct {
	ID     string
	Name   string
	Logo   string
	Orders []Order
}

// OrderCount returns the number of orders the tenant owns.
func (t Tenant) OrderCount() int {
	return len(t.Orders)
}
