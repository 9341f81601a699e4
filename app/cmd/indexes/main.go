package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"session-gateway/app/config"
	"session-gateway/app/driver/mongodb"
	"session-gateway/app/utils/logger"
)

// indexes creates the MongoDB indexes the gateway relies on. Run once per
// environment before first deploy; re-running is harmless.
func main() {
	var (
		timeout = flag.Duration("timeout", 30*time.Second, "Overall operation timeout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	store, err := mongodb.NewStore(cfg, logger.StoreLogger(appLogger))
	if err != nil {
		appLogger.Error("Failed to create store", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := store.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer store.Disconnect(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		appLogger.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Indexes ensured", "database", cfg.MongoDatabase)
}
