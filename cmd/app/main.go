package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CraftMarket_Go/internal/bootstrap"
	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/server"
)

// @title CraftMarket API
// @version 1.0
// @description Marketplace prices and recursive craft-cost resolution per game server.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	if cfg.SeedFile != "" {
		if _, err := bootstrap.SyncSeed(ctx, cfg.SeedFile, repos); err != nil {
			dbPool.Close()
			return err
		}
	}

	services, err := bootstrap.InitializeServices(ctx, cfg, repos)
	if err != nil {
		dbPool.Close()
		return err
	}

	notifier, err := bootstrap.NewReloadNotifier(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}
	background := bootstrap.StartBackground(services.Catalog, notifier, cfg.CatalogReloadInterval)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Dependencies{
		DB:      dbPool,
		Catalog: services.Catalog,
		Servers: repos.Servers,
		Costing: services.Costing,
		Pricing: services.Pricing,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Background: background,
		DB:         dbPool,
	})
	return err
}
