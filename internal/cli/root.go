// Package cli implements basket-mine, the offline miner that reads a CSV
// export and prints frequent itemsets and association rules without a
// database.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the basket-mine command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "basket-mine",
		Short: "Mine frequent itemsets and association rules from a CSV file",
		Long: `basket-mine runs the Apriori algorithm over a point-of-sale CSV export
and prints every frequent itemset with its support, followed by the
association rules that meet the confidence threshold.

Examples:
  # Mine the full file with the default thresholds
  basket-mine mine --file bread_basket.csv

  # Use the first 10% of rows and a lower support threshold
  basket-mine mine --file bread_basket.csv --percentage 10 --min-support 20

  # Machine-readable output
  basket-mine mine --file bread_basket.csv --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	root.SuggestionsMinimumDistance = 2

	root.AddCommand(newMineCmd())
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCmd()
	root.SetOut(os.Stdout)
	return root.Execute()
}
