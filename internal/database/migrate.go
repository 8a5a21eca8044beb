package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending migration embedded in the binary.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := prepare(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err == nil {
		slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	}
	return nil
}

// Rollback reverts the most recent migration.
func Rollback(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := prepare(); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollback, err)
	}
	return nil
}

// Status logs the state of every embedded migration.
func Status(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := prepare(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetStatus, err)
	}
	return nil
}

func prepare() error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(MigrationsDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return nil
}
