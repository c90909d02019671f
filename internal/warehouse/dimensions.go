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
	"fmt"
	"sort"
	"time"
)

// BuildCustomerDim projects transactions to the distinct customer_id values,
// in first-seen order.
func BuildCustomerDim(txns []Transaction) []CustomerDim {
	seen := make(map[string]bool, len(txns))
	out := make([]CustomerDim, 0, len(txns))
	for _, t := range txns {
		if seen[t.CustomerID] {
			continue
		}
		seen[t.CustomerID] = true
		out = append(out, CustomerDim{CustomerID: t.CustomerID})
	}
	return out
}

// productKey identifies a product dimension row for deduplication. Nil name
// and category are kept distinct from empty strings.
type productKey struct {
	id           string
	name         string
	nameNull     bool
	category     string
	categoryNull bool
}

func keyOf(d ProductDim) productKey {
	k := productKey{id: d.ProductID}
	if d.ProductName == nil {
		k.nameNull = true
	} else {
		k.name = *d.ProductName
	}
	if d.Category == nil {
		k.categoryNull = true
	} else {
		k.category = *d.Category
	}
	return k
}

// BuildProductDim derives the product dimension from reconciled rows:
// project to (product_id, product_name, category, effective price), sort by
// descending price with absent prices last, then deduplicate on
// (product_id, product_name, category) keeping the first occurrence. Sorting
// before deduplication means a product seen at several effective prices
// deterministically keeps the highest one.
func BuildProductDim(rows []ReconciledRow) []ProductDim {
	dims := make([]ProductDim, 0, len(rows))
	for _, r := range rows {
		dims = append(dims, ProductDim{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Category:    r.Category,
			Price:       r.Price,
		})
	}

	sort.SliceStable(dims, func(i, j int) bool {
		pi, pj := dims[i].Price, dims[j].Price
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return *pi > *pj
		}
	})

	seen := make(map[productKey]bool, len(dims))
	out := dims[:0]
	for _, d := range dims {
		k := keyOf(d)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

// BuildTimeDim generates one row per calendar date over the closed interval
// from the earliest to the latest transaction date, including dates with no
// transactions. An empty transaction set yields an empty dimension.
func BuildTimeDim(txns []Transaction) []TimeDim {
	if len(txns) == 0 {
		return nil
	}

	minDate := dateOf(txns[0].Timestamp)
	maxDate := minDate
	for _, t := range txns[1:] {
		d := dateOf(t.Timestamp)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	var out []TimeDim
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		out = append(out, TimeDim{
			Date:    d,
			Year:    d.Year(),
			Quarter: quarterName(d),
			Month:   int(d.Month()),
			Day:     d.Day(),
		})
	}
	return out
}

func quarterName(d time.Time) string {
	q := (int(d.Month())-1)/3 + 1
	return fmt.Sprintf("%dQ%d", d.Year(), q)
}
