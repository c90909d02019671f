package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopsmart/shopsmart-etl/internal/logging"
	"github.com/shopsmart/shopsmart-etl/internal/seed"
)

var (
	seedTransactions int
	seedProducts     int
	seedDays         int
	seedSeed         uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate sample input files",
	Long: `Generate sample ShopSmart input files at the configured input
locations. The generated catalog includes duplicate product IDs, invalid
prices, and missing names so that a subsequent run exercises the
data-quality warnings.

Example:
  shopsmart-etl seed --transactions-count 1000 --products-count 80`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedTransactions, "transactions-count", 0,
		"number of transaction records to generate")
	seedCmd.Flags().IntVar(&seedProducts, "products-count", 0,
		"number of product catalog rows to generate")
	seedCmd.Flags().IntVar(&seedDays, "days", 0,
		"calendar span of generated transactions, in days")
	seedCmd.Flags().Uint64Var(&seedSeed, "seed", 0,
		"random seed for reproducible output (0 = random)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := seed.DefaultOptions()
	if seedTransactions > 0 {
		opts.Transactions = seedTransactions
	}
	if seedProducts > 0 {
		opts.Products = seedProducts
	}
	if seedDays > 0 {
		opts.Days = seedDays
	}
	opts.Seed = seedSeed

	gen := seed.NewGenerator(opts)

	logging.Info().
		Int("transactions", opts.Transactions).
		Int("products", opts.Products).
		Msg("Generating sample input files")

	if err := gen.WriteTransactions(cfg.Transactions); err != nil {
		return fmt.Errorf("seed transactions: %w", err)
	}
	if err := gen.WriteProducts(cfg.Products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	logging.Info().
		Str("transactions", cfg.Transactions).
		Str("products", cfg.Products).
		Msg("Sample input files written")

	return nil
}
