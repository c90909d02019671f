//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopsmart/shopsmart-etl/internal/logging"
)

// Loader writes the derived tables into the warehouse, replacing any
// previous contents. All four writes happen on one acquired connection,
// which is released unconditionally when Load returns. The writes are not
// transactional across tables: a failure mid-run leaves already written
// tables at the new generation.
type Loader struct {
	batchSize int
}

// NewLoader creates a Loader with the default batch size.
func NewLoader() *Loader {
	return &Loader{batchSize: 1000}
}

// Load replaces the customer, product, time, and sale tables. The first
// failed write aborts the load and is returned to the caller.
func (l *Loader) Load(ctx context.Context, pool *pgxpool.Pool, t Tables) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if err := l.loadCustomers(ctx, conn.Conn(), t.Customers); err != nil {
		return fmt.Errorf("load customer: %w", err)
	}
	if err := l.loadProducts(ctx, conn.Conn(), t.Products); err != nil {
		return fmt.Errorf("load product: %w", err)
	}
	if err := l.loadTime(ctx, conn.Conn(), t.Time); err != nil {
		return fmt.Errorf("load time: %w", err)
	}
	if err := l.loadSales(ctx, conn.Conn(), t.Sales); err != nil {
		return fmt.Errorf("load sale: %w", err)
	}

	return nil
}

// replaceTable drops and recreates a destination table.
func replaceTable(ctx context.Context, conn *pgx.Conn, table, ddl string) error {
	if _, err := conn.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	if _, err := conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

// insertRows bulk-inserts rows in batches.
func (l *Loader) insertRows(ctx context.Context, conn *pgx.Conn, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += l.batchSize {
		end := min(start+l.batchSize, len(rows))
		sql, args := buildInsertSQL(table, columns, rows[start:end])
		if _, err := conn.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}

	logging.Info().
		Str("table", table).
		Int("rows", len(rows)).
		Msg("Table loaded")
	return nil
}

func (l *Loader) loadCustomers(ctx context.Context, conn *pgx.Conn, dims []CustomerDim) error {
	if err := replaceTable(ctx, conn, "customer", createCustomerSQL); err != nil {
		return err
	}
	rows := make([][]any, 0, len(dims))
	for _, d := range dims {
		rows = append(rows, []any{d.CustomerID})
	}
	return l.insertRows(ctx, conn, "customer", []string{"customer_id"}, rows)
}

func (l *Loader) loadProducts(ctx context.Context, conn *pgx.Conn, dims []ProductDim) error {
	if err := replaceTable(ctx, conn, "product", createProductSQL); err != nil {
		return err
	}
	rows := make([][]any, 0, len(dims))
	for _, d := range dims {
		rows = append(rows, []any{d.ProductID, d.ProductName, d.Category, d.Price})
	}
	return l.insertRows(ctx, conn, "product",
		[]string{"product_id", "product_name", "category", "price"}, rows)
}

func (l *Loader) loadTime(ctx context.Context, conn *pgx.Conn, dims []TimeDim) error {
	if err := replaceTable(ctx, conn, "time", createTimeSQL); err != nil {
		return err
	}
	rows := make([][]any, 0, len(dims))
	for _, d := range dims {
		rows = append(rows, []any{d.Date, d.Year, d.Quarter, d.Month, d.Day})
	}
	return l.insertRows(ctx, conn, "time",
		[]string{"date", "year", "quarter", "month", "day"}, rows)
}

func (l *Loader) loadSales(ctx context.Context, conn *pgx.Conn, facts []SaleFact) error {
	if err := replaceTable(ctx, conn, "sale", createSaleSQL); err != nil {
		return err
	}
	rows := make([][]any, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, []any{
			f.Date, f.TransactionID, f.CustomerID, f.ProductID,
			f.Quantity, f.Price, f.TotalSales,
		})
	}
	return l.insertRows(ctx, conn, "sale",
		[]string{"date", "transaction_id", "customer_id", "product_id", "quantity", "price", "total_sales"}, rows)
}
