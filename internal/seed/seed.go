//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seed generates sample ShopSmart input files: a customer
// transactions JSON file and a product catalog CSV file. The generated
// catalog deliberately contains the defect classes the pipeline cleans
// (duplicate product IDs, invalid prices, missing names) so that a seeded
// run exercises the data-quality warnings.
package seed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Options controls sample data generation.
type Options struct {
	// Transactions is the number of transaction records to generate.
	Transactions int

	// Products is the number of clean catalog rows to generate; defect rows
	// are added on top.
	Products int

	// Seed makes generation reproducible when non-zero.
	Seed uint64

	// Days is the span of calendar days transactions are spread over,
	// ending today.
	Days int
}

// DefaultOptions returns generation defaults.
func DefaultOptions() Options {
	return Options{
		Transactions: 500,
		Products:     50,
		Days:         30,
	}
}

// Generator produces sample input files.
type Generator struct {
	faker *gofakeit.Faker
	opts  Options
}

// NewGenerator creates a Generator for the given options.
func NewGenerator(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		faker: gofakeit.New(seed),
		opts:  opts,
	}
}

// transactionRecord is the on-disk shape of one transaction.
type transactionRecord struct {
	TransactionID string   `json:"transaction_id"`
	CustomerID    string   `json:"customer_id"`
	ProductID     string   `json:"product_id"`
	Timestamp     string   `json:"timestamp"`
	Quantity      int64    `json:"quantity"`
	Price         *float64 `json:"price"`
}

// WriteTransactions writes the transactions JSON file.
func (g *Generator) WriteTransactions(path string) error {
	customers := max(1, g.opts.Transactions/5)
	days := max(1, g.opts.Days)

	// Anchor at midnight so a fixed seed yields identical files within a day.
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -days+1)

	records := make([]transactionRecord, 0, g.opts.Transactions)
	for i := 0; i < g.opts.Transactions; i++ {
		ts := start.Add(time.Duration(g.faker.IntRange(0, days*24*3600-1)) * time.Second)

		rec := transactionRecord{
			TransactionID: fmt.Sprintf("T%06d", i+1),
			CustomerID:    fmt.Sprintf("C%04d", g.faker.IntRange(1, customers)),
			ProductID:     g.productID(g.faker.IntRange(1, max(1, g.opts.Products))),
			Timestamp:     ts.Format(time.RFC3339),
			Quantity:      int64(g.faker.IntRange(1, 10)),
		}
		// Most transactions carry their own price; some defer to the catalog.
		if g.faker.IntRange(1, 10) > 2 {
			price := g.faker.Price(1, 500)
			rec.Price = &price
		}
		records = append(records, rec)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transactions file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write transactions file: %w", err)
	}
	return nil
}

// WriteProducts writes the product catalog CSV file, defects included.
func (g *Generator) WriteProducts(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create products file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"product_id", "product_name", "category", "price"}); err != nil {
		return fmt.Errorf("write products header: %w", err)
	}

	for i := 0; i < g.opts.Products; i++ {
		id := g.productID(i + 1)
		name := g.faker.ProductName()
		category := g.faker.ProductCategory()
		price := fmt.Sprintf("%.2f", g.faker.Price(1, 500))

		// Inject the defect classes the cleaner handles.
		switch g.faker.IntRange(1, 20) {
		case 1:
			name = ""
		case 2:
			price = fmt.Sprintf("-%s", price)
		case 3:
			price = "n/a"
		}

		if err := w.Write([]string{id, name, category, price}); err != nil {
			return fmt.Errorf("write products row: %w", err)
		}

		// Occasional duplicate of the same product ID with a skewed price.
		if g.faker.IntRange(1, 20) == 1 {
			dup := []string{id, name + " (dup)", category, fmt.Sprintf("%.2f", g.faker.Price(1, 500))}
			if err := w.Write(dup); err != nil {
				return fmt.Errorf("write products row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush products file: %w", err)
	}
	return nil
}

func (g *Generator) productID(n int) string {
	return fmt.Sprintf("P%04d", n)
}
