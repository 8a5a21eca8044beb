package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// NewRankCommand creates the rank command.
func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		serverID   int
		profession string
		minLevel   int
		maxLevel   int
		sortBy     string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the profitable recipes of a profession",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.RankingFilter{
				Profession: profession,
				SortBy:     domain.SortMetric(sortBy),
				Limit:      limit,
			}
			if cmd.Flags().Changed("min-level") {
				filter.MinLevel = &minLevel
			}
			if cmd.Flags().Changed("max-level") {
				filter.MaxLevel = &maxLevel
			}

			services, pool, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			ranked, err := services.Costing.RankRecipes(cmd.Context(), serverID, filter)
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd).ranking(ranked)
		},
	}

	cmd.Flags().IntVarP(&serverID, "server", "s", 0, "server ID")
	cmd.Flags().StringVarP(&profession, "profession", "p", "", "profession (case-insensitive)")
	cmd.Flags().IntVar(&minLevel, "min-level", 0, "minimum profession level")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "maximum profession level")
	cmd.Flags().StringVar(&sortBy, "sort", string(domain.SortByProfit), "profit, profit_margin, revenue or cost")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum rows (capped by RANKING_LIMIT)")
	_ = cmd.MarkFlagRequired("server")
	_ = cmd.MarkFlagRequired("profession")
	return cmd
}
