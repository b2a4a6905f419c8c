package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syriandeal/deal-server-go/internal/config"
	"github.com/syriandeal/deal-server-go/internal/game"
	"github.com/syriandeal/deal-server-go/internal/repository"
	"github.com/syriandeal/deal-server-go/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting Syrian Deal server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// The results database is optional; without it finished games are simply
	// not recorded.
	var results *repository.ResultRepository
	if cfg.Database.URL != "" {
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()

		stats := db.Stats()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)

		results = repository.NewResultRepository(db)
		if schemaErr := results.EnsureSchema(ctx); schemaErr != nil {
			logger.Fatal("failed to ensure results schema", zap.Error(schemaErr))
		}
	} else {
		logger.Warn("no database configured; game results will not be recorded")
	}

	engine := game.NewEngine(logger)
	logger.Info("game engine initialized")

	gateway := server.NewGateway(engine, results, cfg.Bot.ActionDelay, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.StartWebSocketServer(cfg.Server.WebSocket, gateway, logger)
	}()

	logger.Info("Syrian Deal server initialized",
		zap.String("version", version),
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
		zap.Duration("bot_action_delay", cfg.Bot.ActionDelay),
	)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case serveErr := <-errChan:
		if serveErr != nil {
			logger.Error("WebSocket server error", zap.Error(serveErr))
		}
	}

	logger.Info("shutting down gracefully...")
	cancel()
	logger.Info("Syrian Deal server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
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

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
