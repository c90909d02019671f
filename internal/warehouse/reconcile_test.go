package warehouse

import (
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func txn(id, customer, product string, day int, qty int64, price *float64) Transaction {
	return Transaction{
		TransactionID: id,
		CustomerID:    customer,
		ProductID:     product,
		Timestamp:     time.Date(2024, 1, day, 10, 30, 0, 0, time.UTC),
		Quantity:      qty,
		Price:         price,
	}
}

func TestReconcileTransactionPriceWins(t *testing.T) {
	catalog := []CatalogProduct{
		{ProductID: "P1", ProductName: "Widget", Category: "Tools", Price: fptr(5)},
	}
	txns := []Transaction{txn("T1", "C1", "P1", 1, 2, fptr(9.99))}

	rows := Reconcile(catalog, txns)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Price == nil || *rows[0].Price != 9.99 {
		t.Errorf("Expected transaction price 9.99, got %v", rows[0].Price)
	}
}

func TestReconcileCatalogPriceFallback(t *testing.T) {
	catalog := []CatalogProduct{
		{ProductID: "P1", ProductName: "Widget", Category: "Tools", Price: fptr(5)},
	}
	txns := []Transaction{txn("T1", "C1", "P1", 1, 2, nil)}

	rows := Reconcile(catalog, txns)

	if rows[0].Price == nil || *rows[0].Price != 5 {
		t.Errorf("Expected catalog fallback price 5, got %v", rows[0].Price)
	}
	if rows[0].ProductName == nil || *rows[0].ProductName != "Widget" {
		t.Errorf("Expected catalog name joined in, got %v", rows[0].ProductName)
	}
}

func TestReconcileUnknownProduct(t *testing.T) {
	// A transaction referencing a product missing from the catalog is
	// retained with its own price and nil catalog fields.
	catalog := []CatalogProduct{
		{ProductID: "P1", ProductName: "Widget", Category: "Tools", Price: fptr(5)},
	}
	txns := []Transaction{txn("T1", "C1", "P9", 1, 1, fptr(3.25))}

	rows := Reconcile(catalog, txns)

	var p9 *ReconciledRow
	for i := range rows {
		if rows[i].ProductID == "P9" {
			p9 = &rows[i]
		}
	}
	if p9 == nil {
		t.Fatal("Transaction product P9 missing from reconciled rows")
	}
	if p9.Price == nil || *p9.Price != 3.25 {
		t.Errorf("Expected transaction price 3.25, got %v", p9.Price)
	}
	if p9.ProductName != nil || p9.Category != nil {
		t.Error("Expected nil catalog fields for unknown product")
	}
}

func TestReconcileNeverSoldProductRetained(t *testing.T) {
	catalog := []CatalogProduct{
		{ProductID: "P1", ProductName: "Widget", Category: "Tools", Price: fptr(5)},
		{ProductID: "P2", ProductName: "Gadget", Category: "Toys", Price: fptr(7)},
	}
	txns := []Transaction{txn("T1", "C1", "P1", 1, 1, nil)}

	rows := Reconcile(catalog, txns)

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	var p2 *ReconciledRow
	for i := range rows {
		if rows[i].ProductID == "P2" {
			p2 = &rows[i]
		}
	}
	if p2 == nil {
		t.Fatal("Never-sold catalog product P2 missing from reconciled rows")
	}
	if p2.Transaction != nil {
		t.Error("Expected nil transaction for never-sold product")
	}
	if p2.Price == nil || *p2.Price != 7 {
		t.Errorf("Expected catalog price 7, got %v", p2.Price)
	}
}

func TestReconcileOuterJoinCoverage(t *testing.T) {
	catalog := []CatalogProduct{
		{ProductID: "P1", ProductName: "A", Price: fptr(1)},
		{ProductID: "P2", ProductName: "B", Price: fptr(2)},
		{ProductID: "P3", ProductName: "C", Price: fptr(3)},
	}
	txns := []Transaction{
		txn("T1", "C1", "P1", 1, 1, nil),
		txn("T2", "C1", "P9", 1, 1, fptr(4)),
		txn("T3", "C2", "P1", 2, 2, fptr(1.5)),
	}

	rows := Reconcile(catalog, txns)

	// Row count must cover both sides of the join.
	txnIDs := map[string]bool{"P1": true, "P9": true}
	catIDs := map[string]bool{"P1": true, "P2": true, "P3": true}
	minRows := max(len(txnIDs), len(catIDs))
	if len(rows) < minRows {
		t.Errorf("Expected at least %d rows, got %d", minRows, len(rows))
	}

	got := make(map[string]bool)
	for _, r := range rows {
		got[r.ProductID] = true
	}
	for id := range txnIDs {
		if !got[id] {
			t.Errorf("Transaction product %s missing from reconciled rows", id)
		}
	}
	for id := range catIDs {
		if !got[id] {
			t.Errorf("Catalog product %s missing from reconciled rows", id)
		}
	}
}
