package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/devrev/ordermade/internal/tenant"
)

// TenantResolver picks the tenant for a host and query string.
type TenantResolver interface {
	Resolve(host string, query url.Values) tenant.Resolution
}

// Tenant resolves the request's tenant once and stores it in the context.
// observe, when set, is called with every resolution.
func Tenant(resolver TenantResolver, observe func(tenant.Resolution)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := resolver.Resolve(r.Host, r.URL.Query())
			if observe != nil {
				observe(res)
			}
			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), res)))
		})
	}
}

// WithTenant returns a copy of ctx carrying res.
func WithTenant(ctx context.Context, res tenant.Resolution) context.Context {
	return context.WithValue(ctx, TenantKey, res)
}

// TenantFromContext returns the resolution stored by Tenant.
func TenantFromContext(ctx context.Context) (tenant.Resolution, bool) {
	res, ok := ctx.Value(TenantKey).(tenant.Resolution)
	return res, ok
}
