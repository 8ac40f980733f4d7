// Package logo maps tenants to their logo image URLs.
package logo

import (
	"strings"
)

// DefaultLogo is served for tenants without a dedicated logo.
const DefaultLogo = "/logos/default-logo.png"

// Service resolves logo URLs with a default fallback.
type Service struct {
	logos    map[string]string
	fallback string
}

// NewService creates a logo service from a tenant → URL map.
// Keys are matched case-insensitively. An empty fallback means DefaultLogo.
func NewService(logos map[string]string, fallback string) *Service {
	if fallback == "" {
		fallback = DefaultLogo
	}
	m := make(map[string]string, len(logos))
	for tenant, url := range logos {
		if url == "" {
			continue
		}
		m[strings.ToLower(tenant)] = url
	}
	return &Service{logos: m, fallback: fallback}
}

// Lookup returns the logo URL for tenant, or the fallback.
func (s *Service) Lookup(tenant string) string {
	if url, ok := s.logos[strings.ToLower(tenant)]; ok {
		return url
	}
	return s.fallback
}

// Default returns the fallback logo URL.
func (s *Service) Default() string {
	return s.fallback
}
