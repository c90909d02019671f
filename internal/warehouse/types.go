//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse implements the star-schema derivation for shopsmart-etl:
// product catalog cleaning, transaction/catalog reconciliation, dimension and
// fact table construction, and the Postgres loader.
//
// Every table is derived in full on each run; nothing is computed
// incrementally. Optional values are represented as pointers and loaded as
// SQL NULLs when nil.
package warehouse

import "time"

// Transaction is a single raw sales event from the transaction source.
// Price may be absent when the source did not carry one.
type Transaction struct {
	TransactionID string
	CustomerID    string
	ProductID     string
	Timestamp     time.Time
	Quantity      int64
	Price         *float64
}

// RawProduct is a catalog row as read from the product source. Price is kept
// as raw text; coercion happens during cleaning so that garbage values can be
// counted rather than lost at parse time.
type RawProduct struct {
	ProductID   string
	ProductName string
	Category    string
	Price       string
}

// CatalogProduct is a cleaned catalog row: ProductID is unique within the
// catalog, ProductName is never empty, and Price is either non-negative
// or nil.
type CatalogProduct struct {
	ProductID   string
	ProductName string
	Category    string
	Price       *float64
}

// ReconciledRow is one row of the full outer join between transactions and
// the cleaned catalog. ProductName and Category are nil when the transaction
// references a product missing from the catalog; Transaction is nil for
// catalog products that were never sold. Price is the effective price:
// the transaction price when present, the catalog price otherwise.
type ReconciledRow struct {
	ProductID   string
	ProductName *string
	Category    *string
	Price       *float64
	Transaction *Transaction
}

// CustomerDim is a customer dimension row.
type CustomerDim struct {
	CustomerID string
}

// ProductDim is a product dimension row. Name and category are nil for
// products observed only in transactions.
type ProductDim struct {
	ProductID   string
	ProductName *string
	Category    *string
	Price       *float64
}

// TimeDim is a time dimension row for one calendar date. Date is midnight
// UTC; Quarter is formatted like "2024Q1".
type TimeDim struct {
	Date    time.Time
	Year    int
	Quarter string
	Month   int
	Day     int
}

// SaleFact is a sale fact row at the (date, transaction, customer, product)
// grain. TotalSales is nil when no row in the group carried a price.
type SaleFact struct {
	Date          time.Time
	TransactionID string
	CustomerID    string
	ProductID     string
	Quantity      int64
	Price         *float64
	TotalSales    *float64
}

// Tables bundles the four derived warehouse tables for loading.
type Tables struct {
	Customers []CustomerDim
	Products  []ProductDim
	Time      []TimeDim
	Sales     []SaleFact
}

// dateOf truncates a timestamp to its calendar date at midnight UTC.
func dateOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
