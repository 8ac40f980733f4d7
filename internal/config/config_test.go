package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Tenants: TenantsConfig{
			Default: "daraz",
		},
		Pagination: PaginationConfig{
			DefaultPerPage: 10,
		},
		RateLimiter: RateLimiterConfig{
			Enabled:           true,
			RequestsPerSecond: 200,
			BurstSize:         50,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "daraz", cfg.Tenants.Default)
	assert.Empty(t, cfg.Tenants.FixturePath)
	assert.Equal(t, "/logos/default-logo.png", cfg.Tenants.DefaultLogo)
	assert.Equal(t, 10, cfg.Pagination.DefaultPerPage)

	assert.True(t, cfg.RateLimiter.Enabled)
	assert.Equal(t, 200.0, cfg.RateLimiter.RequestsPerSecond)
	assert.Equal(t, 50, cfg.RateLimiter.BurstSize)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ORDERMADE_SERVER_PORT", "9000")
	t.Setenv("ORDERMADE_TENANTS_DEFAULT", "amazon")
	t.Setenv("ORDERMADE_PAGINATION_DEFAULT_PER_PAGE", "25")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "amazon", cfg.Tenants.Default)
	assert.Equal(t, 25, cfg.Pagination.DefaultPerPage)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8181
tenants:
  default: foodpanda
  dev_hosts:
    - dev.ordermade.test
  logos:
    foodpanda: /logos/fp.png
pagination:
  default_per_page: 5
metrics:
  enabled: false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "foodpanda", cfg.Tenants.Default)
	assert.Equal(t, []string{"dev.ordermade.test"}, cfg.Tenants.DevHosts)
	assert.Equal(t, "/logos/fp.png", cfg.Tenants.Logos["foodpanda"])
	assert.Equal(t, 5, cfg.Pagination.DefaultPerPage)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [port"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ValidationFailure(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ORDERMADE_PAGINATION_DEFAULT_PER_PAGE", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid server port", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
		{"empty default tenant", func(c *Config) { c.Tenants.Default = " " }, "default tenant is required"},
		{"non-positive per page", func(c *Config) { c.Pagination.DefaultPerPage = 0 }, "default per page must be positive"},
		{"invalid rate", func(c *Config) { c.RateLimiter.RequestsPerSecond = 0 }, "requests per second must be positive"},
		{"invalid burst", func(c *Config) { c.RateLimiter.BurstSize = 0 }, "burst size must be positive"},
		{"rate limiter disabled", func(c *Config) {
			c.RateLimiter = RateLimiterConfig{Enabled: false}
		}, ""},
		{"invalid metrics port", func(c *Config) { c.Metrics.Port = 70000 }, "invalid metrics port"},
		{"metrics port clash", func(c *Config) { c.Metrics.Port = 8080 }, "must differ from server port"},
		{"metrics disabled", func(c *Config) {
			c.Metrics = MetricsConfig{Enabled: false}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
