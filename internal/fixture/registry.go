// Package fixture loads the static tenant → orders registry the dashboard reads from.
package fixture

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/devrev/ordermade/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/orders.yaml
var embeddedOrders []byte

// document is the on-disk fixture layout.
type document struct {
	Tenants []tenantEntry `yaml:"tenants"`
}

type tenantEntry struct {
	ID     string        `yaml:"id"`
	Name   string        `yaml:"name"`
	Logo   string        `yaml:"logo"`
	Orders []model.Order `yaml:"orders"`
}

// Registry is an immutable mapping from tenant id to its ordered orders.
// It is safe for concurrent use once loaded.
type Registry struct {
	tenants map[string]model.Tenant
	ids     []string
}

// Load reads the fixture at path, or the embedded fixture when path is empty.
func Load(path string) (*Registry, error) {
	data := embeddedOrders
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a YAML fixture document.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if len(doc.Tenants) == 0 {
		return nil, fmt.Errorf("fixture contains no tenants")
	}

	title := cases.Title(language.English)
	r := &Registry{
		tenants: make(map[string]model.Tenant, len(doc.Tenants)),
		ids:     make([]string, 0, len(doc.Tenants)),
	}
	for i, entry := range doc.Tenants {
		id := normalize(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("tenant at position %d has an empty id", i)
		}
		if _, dup := r.tenants[id]; dup {
			return nil, fmt.Errorf("duplicate tenant id: %s", id)
		}

		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = title.String(id)
		}
		r.tenants[id] = model.Tenant{
			ID:     id,
			Name:   name,
			Logo:   entry.Logo,
			Orders: entry.Orders,
		}
		r.ids = append(r.ids, id)
	}

	return r, nil
}

// Has reports whether id names a known tenant. The comparison is case-insensitive.
func (r *Registry) Has(id string) bool {
	_, ok := r.tenants[normalize(id)]
	return ok
}

// Tenant returns the tenant for id.
func (r *Registry) Tenant(id string) (model.Tenant, bool) {
	t, ok := r.tenants[normalize(id)]
	return t, ok
}

// Orders returns the tenant's orders, or nil for an unknown tenant.
// Callers must not modify the returned slice.
func (r *Registry) Orders(id string) []model.Order {
	return r.tenants[normalize(id)].Orders
}

// Count returns how many orders the tenant has.
func (r *Registry) Count(id string) int {
	return len(r.Orders(id))
}

// IDs returns tenant ids in fixture order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// First returns the first tenant in fixture order.
func (r *Registry) First() string {
	return r.ids[0]
}

// Len returns the number of tenants.
func (r *Registry) Len() int {
	return len(r.ids)
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
