// Package main is the entry point for the ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/broker"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store", cfg.Store.Driver,
	)

	// Open the ledger store
	store, err := dependency.OpenLedgerStore(&cfg.Store)
	if err != nil {
		slog.Error("Failed to open ledger store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close ledger store", "error", err)
		}
	}()

	// Connect to Redis when change relay is enabled
	var redisClient *redis.Client
	var brokerHealthChecker func() bool
	if cfg.Redis.Enabled {
		client, err := broker.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, changes will not be relayed",
				"error", err,
			)
			brokerHealthChecker = func() bool { return false }
		} else {
			redisClient = client.Redis()
			brokerHealthChecker = client.HealthCheck
			defer func() {
				if err := client.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	injector := dependency.NewInjector(cfg, store, redisClient, brokerHealthChecker)

	// Start background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if injector.Relay != nil {
		go injector.Relay.Start(workerCtx)
	}

	cleanupStop := make(chan struct{})
	go injector.RateLimiter.StartCleanup(cleanupStop)

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	// Flush queued change events before the broker connection closes
	close(cleanupStop)
	stopWorkers()
	if injector.Relay != nil {
		select {
		case <-injector.Relay.Done():
		case <-ctx.Done():
			slog.Warn("Change relay did not drain before shutdown", "pending", injector.Relay.Pending())
		}
	}

	slog.Info("Server exited properly")
}

// parseLogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
