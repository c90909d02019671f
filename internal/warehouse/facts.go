//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import "time"

// factKey is the fact grain: one row per (date, transaction, customer,
// product) combination.
type factKey struct {
	date          string
	transactionID string
	customerID    string
	productID     string
}

// BuildSaleFacts aggregates raw transactions to the fact grain, in
// first-seen group order. Facts come strictly from transactions, never from
// the reconciled set; a sale cannot exist without a transaction.
//
// Within a group the price is taken from the first row (rows in a group are
// expected to agree on price; this is an aggregation safety net, not
// conflict resolution), quantity is summed, and total_sales is the sum of
// quantity times price over the rows that carry a price. A group with no
// priced rows has a nil total.
func BuildSaleFacts(txns []Transaction) []SaleFact {
	index := make(map[factKey]int, len(txns))
	out := make([]SaleFact, 0, len(txns))

	for _, t := range txns {
		date := dateOf(t.Timestamp)
		k := factKey{
			date:          date.Format(time.DateOnly),
			transactionID: t.TransactionID,
			customerID:    t.CustomerID,
			productID:     t.ProductID,
		}

		if i, ok := index[k]; ok {
			f := &out[i]
			f.Quantity += t.Quantity
			addSales(f, t)
			continue
		}

		f := SaleFact{
			Date:          date,
			TransactionID: t.TransactionID,
			CustomerID:    t.CustomerID,
			ProductID:     t.ProductID,
			Quantity:      t.Quantity,
			Price:         t.Price,
		}
		addSales(&f, t)
		index[k] = len(out)
		out = append(out, f)
	}

	return out
}

// addSales accrues one raw row's quantity×price into the fact's total.
func addSales(f *SaleFact, t Transaction) {
	if t.Price == nil {
		return
	}
	amount := float64(t.Quantity) * *t.Price
	if f.TotalSales == nil {
		f.TotalSales = &amount
		return
	}
	*f.TotalSales += amount
}
