package main

import (
	"github.com/spf13/cobra"
)

// itemFlags are shared by the item-level queries
type itemFlags struct {
	serverID int
	itemID   int
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.serverID, "server", "s", 0, "server ID")
	cmd.Flags().IntVarP(&f.itemID, "item", "i", 0, "item ID")
	_ = cmd.MarkFlagRequired("server")
	_ = cmd.MarkFlagRequired("item")
}

// NewCostCommand creates the cost command.
func NewCostCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Show the direct price, craft cost and optimal cost of an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, pool, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			summary, err := services.Costing.Summarize(cmd.Context(), flags.itemID, flags.serverID)
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd).summary(summary)
		},
	}
	flags.register(cmd)
	return cmd
}

// NewBreakdownCommand creates the breakdown command.
func NewBreakdownCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Print the buy/craft decision tree behind an item's optimal cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, pool, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			tree, err := services.Costing.BuildCostBreakdown(cmd.Context(), flags.itemID, flags.serverID)
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd).breakdown(tree)
		},
	}
	flags.register(cmd)
	return cmd
}
