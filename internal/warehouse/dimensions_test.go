package warehouse

import (
	"testing"
	"time"
)

func sptr(s string) *string { return &s }

func TestBuildCustomerDim(t *testing.T) {
	txns := []Transaction{
		txn("T1", "C2", "P1", 1, 1, nil),
		txn("T2", "C1", "P1", 1, 1, nil),
		txn("T3", "C2", "P2", 2, 1, nil),
		txn("T4", "C3", "P1", 3, 1, nil),
	}

	dims := BuildCustomerDim(txns)

	want := []string{"C2", "C1", "C3"}
	if len(dims) != len(want) {
		t.Fatalf("Expected %d customers, got %d", len(want), len(dims))
	}
	for i, w := range want {
		if dims[i].CustomerID != w {
			t.Errorf("Position %d: expected %s, got %s", i, w, dims[i].CustomerID)
		}
	}
}

func TestBuildProductDimSortAndDedup(t *testing.T) {
	rows := []ReconciledRow{
		{ProductID: "P1", ProductName: sptr("Widget"), Category: sptr("Tools"), Price: fptr(5)},
		{ProductID: "P2", ProductName: sptr("Gadget"), Category: sptr("Toys"), Price: fptr(20)},
		// Same product at a higher effective price than the first row.
		{ProductID: "P1", ProductName: sptr("Widget"), Category: sptr("Tools"), Price: fptr(8)},
		{ProductID: "P3", ProductName: sptr("Thing"), Category: sptr("Misc"), Price: nil},
	}

	dims := BuildProductDim(rows)

	if len(dims) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(dims))
	}

	// Highest price first, nil price last.
	if dims[0].ProductID != "P2" {
		t.Errorf("Expected P2 first, got %s", dims[0].ProductID)
	}
	if dims[len(dims)-1].Price != nil {
		t.Error("Expected nil-price row last")
	}

	// Dedup keeps the highest observed price for P1.
	for _, d := range dims {
		if d.ProductID == "P1" {
			if d.Price == nil || *d.Price != 8 {
				t.Errorf("Expected P1 to keep price 8, got %v", d.Price)
			}
		}
	}

	ids := make(map[string]int)
	for _, d := range dims {
		ids[d.ProductID]++
	}
	if ids["P1"] != 1 {
		t.Errorf("Expected P1 deduplicated to one row, got %d", ids["P1"])
	}
}

func TestBuildProductDimNilNameDistinctFromEmpty(t *testing.T) {
	// An unknown product (nil name) and a catalog product with an empty
	// category must not collapse into each other.
	rows := []ReconciledRow{
		{ProductID: "P1", ProductName: nil, Category: nil, Price: fptr(3)},
		{ProductID: "P1", ProductName: sptr(""), Category: sptr(""), Price: fptr(3)},
	}

	dims := BuildProductDim(rows)
	if len(dims) != 2 {
		t.Errorf("Expected 2 distinct rows, got %d", len(dims))
	}
}

func TestBuildTimeDimFillsCalendarGaps(t *testing.T) {
	// Transactions on Jan 1 and Jan 3 only; Jan 2 must still appear.
	txns := []Transaction{
		txn("T1", "C1", "P1", 3, 1, nil),
		txn("T2", "C1", "P1", 1, 1, nil),
	}

	dims := BuildTimeDim(txns)

	if len(dims) != 3 {
		t.Fatalf("Expected 3 dates, got %d", len(dims))
	}
	for i, want := range []int{1, 2, 3} {
		if dims[i].Day != want {
			t.Errorf("Position %d: expected day %d, got %d", i, want, dims[i].Day)
		}
		if dims[i].Year != 2024 || dims[i].Month != 1 {
			t.Errorf("Position %d: unexpected year/month %d/%d", i, dims[i].Year, dims[i].Month)
		}
		if dims[i].Quarter != "2024Q1" {
			t.Errorf("Position %d: expected quarter 2024Q1, got %s", i, dims[i].Quarter)
		}
	}
}

func TestBuildTimeDimRowCountProperty(t *testing.T) {
	txns := []Transaction{
		{TransactionID: "T1", CustomerID: "C1", ProductID: "P1",
			Timestamp: time.Date(2023, 12, 28, 23, 59, 0, 0, time.UTC), Quantity: 1},
		{TransactionID: "T2", CustomerID: "C1", ProductID: "P1",
			Timestamp: time.Date(2024, 1, 5, 0, 1, 0, 0, time.UTC), Quantity: 1},
	}

	dims := BuildTimeDim(txns)

	// (max - min in days) + 1 = 9, spanning the year boundary.
	if len(dims) != 9 {
		t.Fatalf("Expected 9 dates, got %d", len(dims))
	}

	seen := make(map[string]bool)
	for _, d := range dims {
		key := d.Date.Format(time.DateOnly)
		if seen[key] {
			t.Errorf("Duplicate date %s", key)
		}
		seen[key] = true
	}

	if dims[0].Quarter != "2023Q4" {
		t.Errorf("Expected first quarter 2023Q4, got %s", dims[0].Quarter)
	}
	if dims[len(dims)-1].Quarter != "2024Q1" {
		t.Errorf("Expected last quarter 2024Q1, got %s", dims[len(dims)-1].Quarter)
	}
}

func TestBuildTimeDimSingleDate(t *testing.T) {
	txns := []Transaction{txn("T1", "C1", "P1", 15, 1, nil)}

	dims := BuildTimeDim(txns)

	if len(dims) != 1 {
		t.Fatalf("Expected 1 date, got %d", len(dims))
	}
	if dims[0].Day != 15 || dims[0].Month != 1 || dims[0].Year != 2024 {
		t.Errorf("Unexpected date row: %+v", dims[0])
	}
}

func TestBuildTimeDimEmpty(t *testing.T) {
	if dims := BuildTimeDim(nil); len(dims) != 0 {
		t.Errorf("Expected empty time dimension, got %d rows", len(dims))
	}
}
