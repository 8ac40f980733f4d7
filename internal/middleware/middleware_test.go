package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apierrors "github.com/devrev/ordermade/internal/errors"
	"github.com/devrev/ordermade/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates request ID if not present", func(t *testing.T) {
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			assert.Equal(t, r.Header.Get("X-Request-ID"), r.Context().Value(RequestIDKey))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("preserves existing request ID", func(t *testing.T) {
		existingID := "my-custom-id-123"

		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, existingID, r.Header.Get("X-Request-ID"))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", existingID)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, existingID, w.Header().Get("X-Request-ID"))
	})

	t.Run("replaces malformed request ID", func(t *testing.T) {
		for _, id := range []string{"has space", "line\nbreak", strings.Repeat("a", maxRequestIDLength+1)} {
			var seen string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", id)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.NotEqual(t, id, seen)
			assert.Len(t, seen, 36)
			assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
		}
	})
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestLoggingMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("captures status code", func(t *testing.T) {
		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotNil(t, r.Context().Value(StartTimeKey))
			w.WriteHeader(http.StatusNotFound)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("logs with tenant in context", func(t *testing.T) {
		handler := Logging(logger)(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithTenant(req.Context(), tenant.Resolution{Tenant: "amazon", Source: tenant.SourceQuery}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	errorHandler := apierrors.NewHandler(logger)

	t.Run("recovers from panic", func(t *testing.T) {
		handler := Recovery(errorHandler, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("unexpected error")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp apierrors.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, apierrors.ErrorCodeInternalError, resp.ErrorCode)
		assert.Equal(t, "req-42", resp.RequestID)
	})

	t.Run("passes through normal requests", func(t *testing.T) {
		handler := Recovery(errorHandler, logger)(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("adds CORS headers for allowed origin", func(t *testing.T) {
		handler := CORS([]string{"https://example.com"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("wildcard echoes the request origin", func(t *testing.T) {
		handler := CORS([]string{"*"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://daraz.ordermade.app")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "https://daraz.ordermade.app", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ignores other origins", func(t *testing.T) {
		handler := CORS([]string{"https://example.com"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("handles OPTIONS preflight", func(t *testing.T) {
		handler := CORS([]string{"*"})(okHandler())

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	logger := zap.NewNop()
	rl := NewRateLimiter(1, 1, apierrors.NewHandler(logger), logger)
	handler := rl.Limit(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestAPIHeadersMiddleware(t *testing.T) {
	handler := APIHeaders(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "Host", w.Header().Get("Vary"))
}

func TestChainMiddleware(t *testing.T) {
	var order []string

	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m1-before")
			next.ServeHTTP(w, r)
			order = append(order, "m1-after")
		})
	}

	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m2-before")
			next.ServeHTTP(w, r)
			order = append(order, "m2-after")
		})
	}

	handler := Chain(m1, m2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"m1-before", "m2-before", "handler", "m2-after", "m1-after"}, order)
}

type stubResolver struct {
	host  string
	query url.Values
}

func (s *stubResolver) Resolve(host string, query url.Values) tenant.Resolution {
	s.host = host
	s.query = query
	return tenant.Resolution{Tenant: "foodpanda", Source: tenant.SourceSubdomain}
}

func TestTenantMiddleware(t *testing.T) {
	resolver := &stubResolver{}
	var observed []tenant.Resolution

	handler := Tenant(resolver, func(res tenant.Resolution) {
		observed = append(observed, res)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := TenantFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "foodpanda", res.Tenant)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://foodpanda.ordermade.com/?perPage=5", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "foodpanda.ordermade.com", resolver.host)
	assert.Equal(t, "5", resolver.query.Get("perPage"))
	require.Len(t, observed, 1)
	assert.Equal(t, tenant.SourceSubdomain, observed[0].Source)
}

func TestTenantFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := TenantFromContext(req.Context())
	assert.False(t, ok)
}
