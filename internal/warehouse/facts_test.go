package warehouse

import (
	"testing"
	"time"
)

func TestBuildSaleFactsSplitLineItems(t *testing.T) {
	// Two raw rows sharing (date, transaction, customer, product) collapse
	// into one fact row with summed quantity and total_sales.
	txns := []Transaction{
		txn("T1", "C1", "P1", 1, 2, fptr(10)),
		txn("T1", "C1", "P1", 1, 3, fptr(10)),
	}

	facts := BuildSaleFacts(txns)

	if len(facts) != 1 {
		t.Fatalf("Expected 1 fact row, got %d", len(facts))
	}
	f := facts[0]
	if f.Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", f.Quantity)
	}
	if f.TotalSales == nil || *f.TotalSales != 50 {
		t.Errorf("Expected total_sales 50, got %v", f.TotalSales)
	}
	if f.Price == nil || *f.Price != 10 {
		t.Errorf("Expected first-row price 10, got %v", f.Price)
	}
}

func TestBuildSaleFactsGrain(t *testing.T) {
	// Any differing grain component produces a separate fact row.
	txns := []Transaction{
		txn("T1", "C1", "P1", 1, 1, fptr(1)),
		txn("T1", "C1", "P2", 1, 1, fptr(1)),
		txn("T1", "C2", "P1", 1, 1, fptr(1)),
		txn("T2", "C1", "P1", 1, 1, fptr(1)),
		txn("T1", "C1", "P1", 2, 1, fptr(1)),
	}

	facts := BuildSaleFacts(txns)

	if len(facts) != 5 {
		t.Errorf("Expected 5 fact rows, got %d", len(facts))
	}
}

func TestBuildSaleFactsTotalsProperty(t *testing.T) {
	txns := []Transaction{
		txn("T1", "C1", "P1", 1, 2, fptr(3.5)),
		txn("T1", "C1", "P1", 1, 4, fptr(3.5)),
		txn("T2", "C2", "P2", 2, 1, fptr(100)),
	}

	facts := BuildSaleFacts(txns)

	var factQty, rawQty int64
	var factTotal, rawTotal float64
	for _, f := range facts {
		factQty += f.Quantity
		if f.TotalSales != nil {
			factTotal += *f.TotalSales
		}
	}
	for _, tx := range txns {
		rawQty += tx.Quantity
		if tx.Price != nil {
			rawTotal += float64(tx.Quantity) * *tx.Price
		}
	}

	if factQty != rawQty {
		t.Errorf("Fact quantity sum %d != raw quantity sum %d", factQty, rawQty)
	}
	if factTotal != rawTotal {
		t.Errorf("Fact total_sales sum %v != raw total %v", factTotal, rawTotal)
	}
}

func TestBuildSaleFactsMissingPrice(t *testing.T) {
	txns := []Transaction{
		txn("T1", "C1", "P1", 1, 2, nil),
	}

	facts := BuildSaleFacts(txns)

	if facts[0].Price != nil {
		t.Errorf("Expected nil price, got %v", *facts[0].Price)
	}
	if facts[0].TotalSales != nil {
		t.Errorf("Expected nil total_sales, got %v", *facts[0].TotalSales)
	}
}

func TestBuildSaleFactsFirstRowPriceUnpriced(t *testing.T) {
	// The group's price comes from the first row even when a later row in
	// the group carries one; the later row still contributes to the total.
	txns := []Transaction{
		txn("T1", "C1", "P1", 1, 2, nil),
		txn("T1", "C1", "P1", 1, 3, fptr(4)),
	}

	facts := BuildSaleFacts(txns)

	if len(facts) != 1 {
		t.Fatalf("Expected 1 fact row, got %d", len(facts))
	}
	if facts[0].Price != nil {
		t.Errorf("Expected first-row nil price, got %v", *facts[0].Price)
	}
	if facts[0].TotalSales == nil || *facts[0].TotalSales != 12 {
		t.Errorf("Expected total_sales 12, got %v", facts[0].TotalSales)
	}
	if facts[0].Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", facts[0].Quantity)
	}
}

func TestBuildSaleFactsDateDerivation(t *testing.T) {
	txns := []Transaction{
		{TransactionID: "T1", CustomerID: "C1", ProductID: "P1",
			Timestamp: time.Date(2024, 3, 7, 23, 45, 12, 0, time.UTC), Quantity: 1, Price: fptr(1)},
	}

	facts := BuildSaleFacts(txns)

	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if !facts[0].Date.Equal(want) {
		t.Errorf("Expected date %v, got %v", want, facts[0].Date)
	}
}
