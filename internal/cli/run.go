package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopsmart/shopsmart-etl/internal/db"
	"github.com/shopsmart/shopsmart-etl/internal/logging"
	"github.com/shopsmart/shopsmart-etl/internal/source"
	"github.com/shopsmart/shopsmart-etl/internal/warehouse"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one full ETL batch into the warehouse",
	Long: `Run one complete batch: read the transaction and product sources,
clean the catalog, reconcile the two sources, derive the dimension and fact
tables, and load them into the warehouse. Each destination table is replaced
wholesale.

Example:
  DB_PROTOCOL=postgres DB_HOST=localhost DB_PORT=5432 \
  DB_NAME=shopsmart DB_USER=etl DB_PASSWORD=secret \
  shopsmart-etl run --transactions data/customer_transactions.json \
                    --products data/product_catalog.csv`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	ctx := context.Background()
	logging.Info().Msg("Starting ShopSmart ETL run")

	logging.Info().Str("path", cfg.Transactions).Msg("Reading transactions")
	txns, err := source.ReadTransactions(cfg.Transactions)
	if err != nil {
		return fmt.Errorf("read transactions: %w", err)
	}

	logging.Info().Str("path", cfg.Products).Msg("Reading product catalog")
	rawProducts, err := source.ReadProducts(cfg.Products)
	if err != nil {
		return fmt.Errorf("read products: %w", err)
	}

	catalog, stats := warehouse.CleanCatalog(rawProducts)
	if stats.DuplicateIDs > 0 {
		logging.Warn().
			Int("count", stats.DuplicateIDs).
			Msg("Duplicate product IDs dropped")
	}
	if stats.InvalidPrices > 0 {
		logging.Warn().
			Int("count", stats.InvalidPrices).
			Msg("Invalid prices nulled")
	}
	if stats.MissingNames > 0 {
		logging.Warn().
			Int("count", stats.MissingNames).
			Msg("Missing product names defaulted")
	}

	reconciled := warehouse.Reconcile(catalog, txns)

	tables := warehouse.Tables{
		Customers: warehouse.BuildCustomerDim(txns),
		Products:  warehouse.BuildProductDim(reconciled),
		Time:      warehouse.BuildTimeDim(txns),
		Sales:     warehouse.BuildSaleFacts(txns),
	}

	pool, err := db.Connect(ctx, cfg.DB.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	logging.Info().Msg("Loading warehouse tables")
	if err := warehouse.NewLoader().Load(ctx, pool, tables); err != nil {
		logging.Error().Err(err).Msg("Warehouse load failed; run is incomplete")
		return err
	}

	logging.Info().
		Int("customers", len(tables.Customers)).
		Int("products", len(tables.Products)).
		Int("dates", len(tables.Time)).
		Int("sales", len(tables.Sales)).
		Msg("ETL run completed")

	return nil
}
