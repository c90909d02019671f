//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package source reads the raw ShopSmart inputs: the customer transactions
// JSON file and the product catalog CSV file. Readers fail loudly on
// unreadable or malformed input; the pipeline never continues with partial
// data.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopsmart/shopsmart-etl/internal/warehouse"
)

// rawTransaction mirrors one element of the transactions JSON array.
type rawTransaction struct {
	TransactionID string   `json:"transaction_id"`
	CustomerID    string   `json:"customer_id"`
	ProductID     string   `json:"product_id"`
	Timestamp     string   `json:"timestamp"`
	Quantity      int64    `json:"quantity"`
	Price         *float64 `json:"price"`
}

// timestampLayouts are tried in order when parsing transaction timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ReadTransactions loads the transaction source: a JSON array of transaction
// records with a parseable timestamp on each.
func ReadTransactions(path string) ([]warehouse.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()

	var raw []rawTransaction
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse transactions file %s: %w", path, err)
	}

	out := make([]warehouse.Transaction, 0, len(raw))
	for i, r := range raw {
		ts, err := parseTimestamp(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("transaction %d (%s): %w", i, r.TransactionID, err)
		}
		out = append(out, warehouse.Transaction{
			TransactionID: r.TransactionID,
			CustomerID:    r.CustomerID,
			ProductID:     r.ProductID,
			Timestamp:     ts,
			Quantity:      r.Quantity,
			Price:         r.Price,
		})
	}
	return out, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
