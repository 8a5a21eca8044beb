package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/database"
)

// OpenPool connects to the configured database without touching the schema.
func OpenPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdle:     cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		ApplicationName: ApplicationName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	return pool, nil
}

// ConnectDatabase opens the pool and applies pending migrations unless disabled.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := OpenPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.RunMigrations {
		slog.Info(LogMsgMigrationsSkipped)
		return pool, nil
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	return pool, nil
}
