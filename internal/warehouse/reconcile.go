//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

// Reconcile performs a full outer join of transactions against the cleaned
// catalog on product_id. Transactions referencing unknown products are
// retained with nil catalog fields, and catalog products never transacted
// are appended after the transaction rows, in catalog order.
//
// The effective price on each row is the transaction price when present,
// falling back to the catalog price. The transaction price always wins when
// both exist, never the reverse.
func Reconcile(catalog []CatalogProduct, txns []Transaction) []ReconciledRow {
	byID := make(map[string]*CatalogProduct, len(catalog))
	for i := range catalog {
		byID[catalog[i].ProductID] = &catalog[i]
	}

	rows := make([]ReconciledRow, 0, len(txns)+len(catalog))
	matched := make(map[string]bool, len(catalog))

	for i := range txns {
		t := &txns[i]
		row := ReconciledRow{
			ProductID:   t.ProductID,
			Price:       t.Price,
			Transaction: t,
		}
		if p, ok := byID[t.ProductID]; ok {
			matched[t.ProductID] = true
			row.ProductName = &p.ProductName
			row.Category = &p.Category
			if row.Price == nil {
				row.Price = p.Price
			}
		}
		rows = append(rows, row)
	}

	for i := range catalog {
		p := &catalog[i]
		if matched[p.ProductID] {
			continue
		}
		rows = append(rows, ReconciledRow{
			ProductID:   p.ProductID,
			ProductName: &p.ProductName,
			Category:    &p.Category,
			Price:       p.Price,
		})
	}

	return rows
}
