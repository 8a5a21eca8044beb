package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/CraftMarket_Go/internal/database"
)

// NewMigrateCommand creates the migrate command and its up/down/status subcommands.
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	steps := []struct {
		use   string
		short string
		run   func(cmd *cobra.Command) error
	}{
		{"up", "Apply all pending migrations", func(cmd *cobra.Command) error {
			_, pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := database.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		}},
		{"down", "Roll back the most recent migration", func(cmd *cobra.Command) error {
			_, pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := database.Rollback(cmd.Context(), pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "rolled back one migration")
			return nil
		}},
		{"status", "Show applied and pending migrations", func(cmd *cobra.Command) error {
			_, pool, err := openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			return database.Status(cmd.Context(), pool)
		}},
	}

	for _, step := range steps {
		run := step.run
		cmd.AddCommand(&cobra.Command{
			Use:   step.use,
			Short: step.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd)
			},
		})
	}
	return cmd
}
