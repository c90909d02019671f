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
	"math"
	"strconv"
	"strings"
)

// UnknownProductName is substituted for missing product names.
const UnknownProductName = "Unknown Product"

// CleanStats counts the data-quality anomalies corrected during catalog
// cleaning. These are warnings, not errors; the caller is expected to log
// any non-zero counts.
type CleanStats struct {
	DuplicateIDs  int
	InvalidPrices int
	MissingNames  int
}

// CleanCatalog sanitizes a raw product catalog:
//
//  1. Rows repeating an earlier product_id are dropped (first occurrence
//     wins) and counted.
//  2. Prices are coerced to numbers; values that fail coercion or are
//     negative become nil and are counted. No clamping to zero.
//  3. Missing product names are counted, then replaced with
//     UnknownProductName.
//
// Deduplication happens before price validation, so a surviving row's price
// is judged on its own: a dropped duplicate never contributes its price to
// the kept row.
func CleanCatalog(raw []RawProduct) ([]CatalogProduct, CleanStats) {
	var stats CleanStats

	seen := make(map[string]bool, len(raw))
	out := make([]CatalogProduct, 0, len(raw))

	for _, r := range raw {
		if seen[r.ProductID] {
			stats.DuplicateIDs++
			continue
		}
		seen[r.ProductID] = true

		p := CatalogProduct{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Category:    r.Category,
		}

		if price, ok := coercePrice(r.Price); ok {
			p.Price = &price
		} else {
			stats.InvalidPrices++
		}

		if p.ProductName == "" {
			stats.MissingNames++
			p.ProductName = UnknownProductName
		}

		out = append(out, p)
	}

	return out, stats
}

// coercePrice parses a raw price value. It reports false for empty input,
// unparseable text, NaN, and negative values.
func coercePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0, false
	}
	return v, true
}
