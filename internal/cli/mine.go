package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aevon-lab/basket/internal/core/mining"
	"github.com/aevon-lab/basket/internal/loader"
	"github.com/aevon-lab/basket/internal/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	defaultMinSupport    = 50
	defaultMinConfidence = 0.5
)

type mineOptions struct {
	file          string
	minSupport    float64
	minConfidence float64
	format        string
	noColor       bool
	csv           loader.Options
}

func newMineCmd() *cobra.Command {
	opts := mineOptions{csv: loader.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine a CSV export and print itemsets and rules",
		Long: `Load transactions from a CSV file, find every itemset bought together in
at least --min-support transactions, and derive rules whose confidence is at
least --min-confidence.

Thresholds are taken literally: --min-support is an absolute transaction
count and a --min-confidence above 1 yields no rules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMine(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "CSV file to mine (required)")
	f.Float64Var(&opts.minSupport, "min-support", defaultMinSupport, "minimum number of transactions an itemset must appear in")
	f.Float64Var(&opts.minConfidence, "min-confidence", defaultMinConfidence, "minimum rule confidence")
	f.IntVar(&opts.csv.Percentage, "percentage", loader.DefaultPercentage, "use only the first N percent of data rows (1-100)")
	f.StringVar(&opts.format, "format", report.FormatText, "output format: text, json or yaml")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored confidence values")
	f.StringVar(&opts.csv.TransactionColumn, "transaction-column", loader.DefaultTransactionColumn, "header of the transaction id column")
	f.StringVar(&opts.csv.ItemsColumn, "items-column", loader.DefaultItemsColumn, "header of the item column")
	f.StringVar(&opts.csv.ItemSeparator, "separator", loader.DefaultItemSeparator, "separator between several items in one cell")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runMine(cmd *cobra.Command, opts mineOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.minSupport < 0 {
		return fmt.Errorf("--min-support must be >= 0, got %v", opts.minSupport)
	}

	start := time.Now()
	ts, stats, err := loader.LoadFile(opts.file, opts.csv)
	if err != nil {
		return err
	}
	slog.Debug("Loaded transactions",
		"file", opts.file,
		"rows_read", stats.RowsRead,
		"rows_used", stats.RowsUsed,
		"transactions", stats.Transactions)

	table := mining.Mine(ts, opts.minSupport)
	rules := mining.DeriveRules(table, opts.minConfidence)
	slog.Debug("Mining complete",
		"last_level", table.LastPopulatedLevel(),
		"itemsets", table.Count(),
		"rules", len(rules),
		"duration", time.Since(start))

	r := report.Build(report.Meta{
		RunID:         uuid.NewString(),
		MinSupport:    opts.minSupport,
		MinConfidence: opts.minConfidence,
		Transactions:  len(ts),
	}, table, rules)

	out := cmd.OutOrStdout()
	color := false
	if f, ok := out.(*os.File); ok && format == report.FormatText && !opts.noColor {
		color = report.IsColorEnabled(f)
	}
	return report.Write(out, format, r, color)
}
