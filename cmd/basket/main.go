package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/basket/internal/analysis"
	corecfg "github.com/aevon-lab/basket/internal/core/config"
	"github.com/aevon-lab/basket/internal/core/storage/postgres"
	"github.com/aevon-lab/basket/internal/ingestion"
	"github.com/aevon-lab/basket/internal/migrations"
	"github.com/aevon-lab/basket/internal/server"
)

func main() {
	configPath := flag.String("config", "basket.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"server", cfg.Server,
		"mining", cfg.Mining,
		"loader", cfg.Loader,
		"metrics", cfg.Metrics)

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations, then prepare statements against the final schema
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := dbAdapter.Prepare(); err != nil {
		slog.Error("Failed to prepare database adapter", "error", err)
		os.Exit(1)
	}

	// 3. Initialize Ingestion (uploads write straight to the transaction store)
	ingestionSvc := ingestion.NewService(dbAdapter, cfg.Loader.LoaderOptions(), cfg.Server.MaxBodySizeMB)

	// 4. Initialize Analysis (mining runs on demand, nothing is cached)
	analysisSvc := analysis.NewService(dbAdapter, analysis.Thresholds{
		MinSupport:    cfg.Mining.MinSupport,
		MinConfidence: cfg.Mining.MinConfidence,
	})

	// 5. Initialize Server
	opts := server.Options{
		Addr: fmtAddr(cfg.Server.Host, cfg.Server.Port),
		Mode: cfg.Server.Mode,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
	}
	srv := server.New(opts, dbAdapter.DB())
	ingestionSvc.RegisterRoutes(srv.Engine)
	analysisSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
