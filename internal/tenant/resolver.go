// Package tenant resolves which company's orders a request should see.
//
// Resolution never fails: a missing, malformed or unknown tenant always
// degrades to the default tenant so the dashboard can render something.
package tenant

import (
	"net"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// QueryParam is the query parameter carrying a tenant override on development hosts.
const QueryParam = "company"

// Directory is the set of known tenants.
type Directory interface {
	Has(id string) bool
	First() string
}

// Source records how a tenant was chosen.
type Source string

const (
	// SourceQuery means the tenant came from the company query parameter
	SourceQuery Source = "query"
	// SourceSubdomain means the tenant came from the first host label
	SourceSubdomain Source = "subdomain"
	// SourceDefault means no valid tenant was found and the default was used
	SourceDefault Source = "default"
)

// Resolution is the outcome of resolving a request's tenant.
type Resolution struct {
	Tenant string
	Source Source
}

// Resolver derives a tenant id from a host name and query string.
type Resolver struct {
	known         Directory
	defaultTenant string
	devHosts      map[string]struct{}
	logger        *zap.Logger
}

// NewResolver creates a resolver. If defaultTenant is not known, the first
// tenant of the directory becomes the default. devHosts are additional host
// names treated like localhost.
func NewResolver(known Directory, defaultTenant string, devHosts []string, logger *zap.Logger) *Resolver {
	def := strings.ToLower(strings.TrimSpace(defaultTenant))
	if !known.Has(def) {
		first := known.First()
		logger.Warn("default tenant is unknown, falling back to first fixture tenant",
			zap.String("configured", defaultTenant),
			zap.String("fallback", first))
		def = first
	}

	hosts := make(map[string]struct{}, len(devHosts))
	for _, h := range devHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			hosts[h] = struct{}{}
		}
	}

	return &Resolver{
		known:         known,
		defaultTenant: def,
		devHosts:      hosts,
		logger:        logger,
	}
}

// Default returns the tenant used when nothing else matches.
func (r *Resolver) Default() string {
	return r.defaultTenant
}

// Resolve picks the tenant for host and query.
//
// On development hosts only the company query parameter is consulted. On
// any other host with more than two labels the first label is used as the
// subdomain. Unknown candidates fall back to the default tenant.
func (r *Resolver) Resolve(host string, query url.Values) Resolution {
	hostname := Hostname(host)

	if r.IsDevelopmentHost(hostname) {
		candidate := strings.ToLower(strings.TrimSpace(query.Get(QueryParam)))
		if candidate != "" && r.known.Has(candidate) {
			return Resolution{Tenant: candidate, Source: SourceQuery}
		}
		if candidate != "" {
			r.logger.Debug("ignoring unknown company parameter",
				zap.String("host", hostname),
				zap.String("company", candidate))
		}
		return Resolution{Tenant: r.defaultTenant, Source: SourceDefault}
	}

	parts := strings.Split(hostname, ".")
	if len(parts) > 2 {
		subdomain := parts[0]
		if r.known.Has(subdomain) {
			return Resolution{Tenant: subdomain, Source: SourceSubdomain}
		}
		r.logger.Debug("ignoring unknown subdomain",
			zap.String("host", hostname),
			zap.String("subdomain", subdomain))
	}

	return Resolution{Tenant: r.defaultTenant, Source: SourceDefault}
}

// IsDevelopmentHost reports whether hostname is a loopback or configured development host.
func (r *Resolver) IsDevelopmentHost(hostname string) bool {
	if hostname == "localhost" || hostname == "::1" || strings.Contains(hostname, "127.0.0.1") {
		return true
	}
	_, ok := r.devHosts[hostname]
	return ok
}

// Hostname strips any port and brackets from a Host header value and lower-cases it.
func Hostname(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimPrefix(strings.TrimSuffix(host, "]"), "[")
	return strings.ToLower(strings.TrimSuffix(host, "."))
}
