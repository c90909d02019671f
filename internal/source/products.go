//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopsmart/shopsmart-etl/internal/warehouse"
)

// catalogColumns are the product catalog columns in output order.
var catalogColumns = []string{"product_id", "product_name", "category", "price"}

// ReadProducts loads the product catalog source: a delimited file with one
// header row. Columns are matched by normalized header name, so column order
// in the file does not matter. Price is kept as raw text; the cleaner owns
// coercion so that invalid values are counted, not silently dropped here.
func ReadProducts(path string) ([]warehouse.RawProduct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read products header %s: %w", path, err)
	}

	colIx := make([]int, len(catalogColumns))
	for i := range colIx {
		colIx[i] = -1
	}
	for i, h := range hdr {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
		for t, target := range catalogColumns {
			if h == target {
				colIx[t] = i
			}
		}
	}
	for t, target := range catalogColumns {
		if colIx[t] < 0 {
			return nil, fmt.Errorf("products file %s: missing column %q", path, target)
		}
	}

	var out []warehouse.RawProduct
	line := 1
	for {
		rec, err := cr.Read()
		line++
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("products file %s line %d: %w", path, line, err)
		}

		field := func(t int) string {
			i := colIx[t]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		out = append(out, warehouse.RawProduct{
			ProductID:   field(0),
			ProductName: field(1),
			Category:    field(2),
			Price:       field(3),
		})
	}
}
