// Package main provides the entry point for the order dashboard server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/devrev/ordermade/internal/config"
	"github.com/devrev/ordermade/internal/fixture"
	"github.com/devrev/ordermade/internal/metrics"
	"github.com/devrev/ordermade/internal/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)

	var logging config.LoggingConfig
	if cfg != nil {
		logging = cfg.Logging
	}
	logger := initLogger(logging)
	defer logger.Sync()

	if cfgErr != nil {
		logger.Fatal("failed to load configuration", zap.Error(cfgErr))
	}

	logger.Info("configuration loaded",
		zap.Int("server_port", cfg.Server.Port),
		zap.String("default_tenant", cfg.Tenants.Default),
		zap.Strings("dev_hosts", cfg.Tenants.DevHosts),
	)

	registry, err := fixture.Load(cfg.Tenants.FixturePath)
	if err != nil {
		logger.Fatal("failed to load order fixture", zap.Error(err))
	}

	logger.Info("order fixture loaded",
		zap.Int("tenants", registry.Len()),
		zap.Strings("tenant_ids", registry.IDs()),
	)

	m := metrics.NewMetrics()
	m.SetHealthStatus(true)

	httpServer, err := server.NewServer(cfg, registry, logger)
	if err != nil {
		logger.Fatal("failed to create HTTP server", zap.Error(err))
	}
	httpServer.SetupRoutes()

	var metricsServer *metrics.MetricsServer
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(httpServer.Start)
	if metricsServer != nil {
		g.Go(metricsServer.Start)
		logger.Info("metrics server started",
			zap.Int("port", cfg.Metrics.Port),
			zap.String("path", cfg.Metrics.Path),
		)
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", zap.Error(err))
		}
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown metrics server", zap.Error(err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("order dashboard shutdown complete")
}

// initLogger initializes the zap logger. LOG_LEVEL and LOG_FORMAT override
// the configured values.
func initLogger(cfg config.LoggingConfig) *zap.Logger {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = cfg.Level
	}

	var level zapcore.Level
	switch logLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = cfg.Format
	}

	var zapConfig zap.Config
	if logFormat == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		// Fallback to basic logger
		logger, _ = zap.NewProduction()
	}

	return logger
}
