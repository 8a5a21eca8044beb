package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/osse101/CraftMarket_Go/internal/bootstrap"
	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string
}

// NewRootCommand creates the root command for craftctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "craftctl",
		Short: "CraftMarket operator CLI",
		Long:  "Run migrations, seed the recipe catalog and query craft costs against the CraftMarket database.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := logger.LogLevelWarn
			if opts.Verbose {
				level = logger.LogLevelDebug
			}
			cfg := logger.NewConfig(level, logger.LogFormatText, "craftctl", logger.DefaultVersion, logger.EnvironmentDev, false)
			logger.InitLoggerWithWriter(cfg, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewCostCommand(opts))
	cmd.AddCommand(NewBreakdownCommand(opts))
	cmd.AddCommand(NewRankCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openPool connects with the environment configuration, without running migrations.
func openPool(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	pool, err := bootstrap.OpenPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

// openServices connects and loads the recipe catalog for read commands.
func openServices(ctx context.Context) (*bootstrap.Services, *pgxpool.Pool, error) {
	cfg, pool, err := openPool(ctx)
	if err != nil {
		return nil, nil, err
	}
	services, err := bootstrap.InitializeServices(ctx, cfg, bootstrap.InitializeRepositories(pool))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Debug("Catalog loaded", "items", services.Catalog.Current().Stats().Items)
	return services, pool, nil
}

// printer writes command results in the selected format.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(opts *RootOptions, cmd *cobra.Command) *printer {
	return &printer{format: opts.Format, w: cmd.OutOrStdout()}
}
