package dataset

import (
	"errors"
	"testing"
	"time"

	"github.com/skuforge/skuforge/internal/datagen"
)

func TestGenerateDemandHistoryEmptyCatalog(t *testing.T) {
	s := datagen.New(42)
	sales, err := GenerateDemandHistory(s, nil, 365)
	if err != nil {
		t.Fatalf("Empty catalog should not error, got: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("Expected empty sales table, got %d rows", len(sales))
	}
}

func TestGenerateDemandHistoryNegativeDays(t *testing.T) {
	s := datagen.New(42)
	catalog, err := GenerateCatalog(s, 5)
	if err != nil {
		t.Fatalf("GenerateCatalog failed: %v", err)
	}

	_, err = GenerateDemandHistory(s, catalog, -1)
	if err == nil {
		t.Fatal("Expected error for negative days, got nil")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got: %v", err)
	}
}

func TestGenerateDemandHistoryReferentialIntegrity(t *testing.T) {
	s := datagen.New(42)
	catalog, err := GenerateCatalog(s, 20)
	if err != nil {
		t.Fatalf("GenerateCatalog failed: %v", err)
	}

	sales, err := GenerateDemandHistory(s, catalog, 90)
	if err != nil {
		t.Fatalf("GenerateDemandHistory failed: %v", err)
	}

	known := make(map[string]bool, len(catalog))
	for _, sku := range catalog {
		known[sku.ID] = true
	}

	for _, sale := range sales {
		if !known[sale.SKUID] {
			t.Errorf("Sale references unknown SKU: %s", sale.SKUID)
		}
	}
}

func TestGenerateDemandHistorySparsity(t *testing.T) {
	s := datagen.New(42)
	catalog, err := GenerateCatalog(s, 20)
	if err != nil {
		t.Fatalf("GenerateCatalog failed: %v", err)
	}

	sales, err := GenerateDemandHistory(s, catalog, 90)
	if err != nil {
		t.Fatalf("GenerateDemandHistory failed: %v", err)
	}

	for _, sale := range sales {
		if sale.QtySold <= 0 {
			t.Errorf("Zero or negative quantity survived filtering: %s %v %d",
				sale.SKUID, sale.Date, sale.QtySold)
		}
	}
}

func TestGenerateDemandHistoryCardinalityBound(t *testing.T) {
	s := datagen.New(42)
	catalog, err := GenerateCatalog(s, 20)
	if err != nil {
		t.Fatalf("GenerateCatalog failed: %v", err)
	}

	days := 90
	sales, err := GenerateDemandHistory(s, catalog, days)
	if err != nil {
		t.Fatalf("GenerateDemandHistory failed: %v", err)
	}

	max := len(catalog) * (days + 1)
	if len(sales) > max {
		t.Errorf("Sales table has %d rows, bound is %d", len(sales), max)
	}
}

func TestGenerateDemandHistorySingleSKUZeroDays(t *testing.T) {
	s := datagen.New(42)
	catalog, err := GenerateCatalog(s, 1)
	if err != nil {
		t.Fatalf("GenerateCatalog failed: %v", err)
	}
	if len(catalog) != 1 || catalog[0].ID != "SKU-001" {
		t.Fatalf("Expected single SKU-001 catalog, got %+v", catalog)
	}

	before := time.Now().UTC()
	sales, err := GenerateDemandHistory(s, catalog, 0)
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("GenerateDemandHistory failed: %v", err)
	}

	// The window has a single day, so at most one record exists
	if len(sales) > 1 {
		t.Fatalf("Expected 0 or 1 sales rows, got %d", len(sales))
	}
	if len(sales) == 1 {
		if sales[0].SKUID != "SKU-001" {
			t.Errorf("Expected SKU-001, got %s", sales[0].SKUID)
		}
		if sales[0].Date.Before(before) || sales[0].Date.After(after) {
			t.Errorf("Date %v outside the single-day window [%v, %v]",
				sales[0].Date, before, after)
		}
	}
}

func TestGenerateDemandHistoryDeterminism(t *testing.T) {
	run := func() ([]SKU, []Sale) {
		s := datagen.New(42)
		catalog, err := GenerateCatalog(s, 20)
		if err != nil {
			t.Fatalf("GenerateCatalog failed: %v", err)
		}
		sales, err := GenerateDemandHistory(s, catalog, 30)
		if err != nil {
			t.Fatalf("GenerateDemandHistory failed: %v", err)
		}
		return catalog, sales
	}

	_, s1 := run()
	_, s2 := run()

	// Dates are anchored at the wall clock, so compare the
	// deterministic columns only.
	if len(s1) != len(s2) {
		t.Fatalf("Row counts differ: %d != %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i].SKUID != s2[i].SKUID || s1[i].QtySold != s2[i].QtySold {
			t.Fatalf("Row %d differs: %+v != %+v", i, s1[i], s2[i])
		}
	}
}

func TestDateWindow(t *testing.T) {
	end := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "full year", days: 365, want: 366},
		{name: "single day", days: 0, want: 1},
		{name: "one week", days: 7, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := dateWindow(end, tt.days)
			if len(dates) != tt.want {
				t.Fatalf("Expected %d dates, got %d", tt.want, len(dates))
			}
			if !dates[0].Equal(end.AddDate(0, 0, -tt.days)) {
				t.Errorf("Window starts at %v, expected %v", dates[0], end.AddDate(0, 0, -tt.days))
			}
			if !dates[len(dates)-1].Equal(end) {
				t.Errorf("Window ends at %v, expected %v", dates[len(dates)-1], end)
			}
			for i := 1; i < len(dates); i++ {
				if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
					t.Errorf("Dates %d and %d are not consecutive days: %v, %v",
						i-1, i, dates[i-1], dates[i])
				}
			}
		})
	}
}

func TestGenerateDemandHistoryAllSKUsRepresented(t *testing.T) {
	// Over a long window every SKU should sell on at least one day;
	// a SKU with no row at all would mean its series was skipped.
	s := datagen.New(42)
	catalog, err := GenerateCatalog(s, 10)
	if err != nil {
		t.Fatalf("GenerateCatalog failed: %v", err)
	}

	sales, err := GenerateDemandHistory(s, catalog, 365)
	if err != nil {
		t.Fatalf("GenerateDemandHistory failed: %v", err)
	}

	sellers := make(map[string]bool)
	for _, sale := range sales {
		sellers[sale.SKUID] = true
	}

	for _, sku := range catalog {
		if !sellers[sku.ID] {
			t.Logf("SKU %s sold nothing over the whole window (possible but unlikely)", sku.ID)
		}
	}
	if len(sellers) == 0 {
		t.Error("No SKU sold anything over a 366-day window")
	}
}
