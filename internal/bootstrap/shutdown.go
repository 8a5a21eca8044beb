package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftMarket_Go/internal/database"
	"github.com/osse101/CraftMarket_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Background *Background
	DB         database.Pool
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background jobs (finish a running reload)
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Background != nil {
		slog.Info(LogMsgStoppingBackground)
		components.Background.Stop()
	}

	if components.DB != nil {
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
