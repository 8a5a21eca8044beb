package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the slice of *pgxpool.Pool that health checks and shutdown need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig sizes the PostgreSQL connection pool
type PoolConfig struct {
	ConnString      string
	MaxConns        int32
	MaxConnIdle     time.Duration
	MaxConnLifetime time.Duration
	// ApplicationName is reported to pg_stat_activity
	ApplicationName string
}

// NewPool opens a pool and verifies it can reach the server within PingTimeout.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pgCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	pgCfg.MaxConns = max(cfg.MaxConns, MinConnections)
	pgCfg.MinConns = MinConnections
	pgCfg.MaxConnIdleTime = cfg.MaxConnIdle
	pgCfg.MaxConnLifetime = cfg.MaxConnLifetime
	if cfg.ApplicationName != "" {
		pgCfg.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgConnected,
		"max_conns", pgCfg.MaxConns,
		"host", pgCfg.ConnConfig.Host,
		"database", pgCfg.ConnConfig.Database)
	return pool, nil
}
