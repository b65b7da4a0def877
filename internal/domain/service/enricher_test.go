package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

func enrichInput(productIDs ...string) []entity.Transaction {
	out := make([]entity.Transaction, len(productIDs))
	for i, id := range productIDs {
		out[i] = entity.Transaction{
			TransactionID: "T1",
			ProductID:     id,
			CustomerID:    "C1",
			Region:        "North",
			Quantity:      2,
			UnitPrice:     100,
			Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount:        200,
		}
	}
	return out
}

func TestEnrich_Match(t *testing.T) {
	catalog := entity.Catalog{
		"P1": {ProductID: "P1", Title: "Phone", Category: "Electronics", Brand: "Acme", Rating: 4.5},
	}

	enriched, stats := Enrich(enrichInput("P1"), catalog)

	if len(enriched) != 1 {
		t.Fatalf("enriched = %d records, want 1", len(enriched))
	}
	record := enriched[0]
	if !record.APIMatch {
		t.Error("APIMatch = false, want true")
	}
	if record.APICategory != "Electronics" || record.APIBrand != "Acme" {
		t.Errorf("catalog attributes = %q/%q", record.APICategory, record.APIBrand)
	}
	if record.APIRating == nil || *record.APIRating != 4.5 {
		t.Errorf("APIRating = %v, want 4.5", record.APIRating)
	}
	// Financial fields pass through untouched.
	if record.Amount != 200 || record.Quantity != 2 {
		t.Errorf("financial fields altered: %+v", record.Transaction)
	}

	if stats.TotalRecords != 1 || stats.MatchedCount != 1 || stats.UnmatchedCount != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MatchRate != 100 {
		t.Errorf("MatchRate = %v, want 100", stats.MatchRate)
	}
}

func TestEnrich_Unmatched(t *testing.T) {
	catalog := entity.Catalog{
		"P1": {ProductID: "P1", Category: "Electronics", Brand: "Acme", Rating: 4.5},
	}

	enriched, stats := Enrich(enrichInput("P1", "P99", "P99", "P42"), catalog)

	if len(enriched) != 4 {
		t.Fatalf("enriched = %d records, want 4", len(enriched))
	}
	miss := enriched[1]
	if miss.APIMatch {
		t.Error("unmatched record reported APIMatch = true")
	}
	if miss.APICategory != "" || miss.APIBrand != "" || miss.APIRating != nil {
		t.Errorf("unmatched record carries catalog attributes: %+v", miss)
	}

	if stats.MatchedCount != 1 || stats.UnmatchedCount != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MatchRate != 25 {
		t.Errorf("MatchRate = %v, want 25", stats.MatchRate)
	}
	// Unique and sorted.
	want := []string{"P42", "P99"}
	if !reflect.DeepEqual(stats.UnmatchedProductIDs, want) {
		t.Errorf("UnmatchedProductIDs = %v, want %v", stats.UnmatchedProductIDs, want)
	}
}

func TestEnrich_EmptyCatalog(t *testing.T) {
	enriched, stats := Enrich(enrichInput("P1", "P2"), entity.Catalog{})

	for _, record := range enriched {
		if record.APIMatch {
			t.Errorf("record %s matched against an empty catalog", record.ProductID)
		}
	}
	if stats.MatchRate != 0 || stats.UnmatchedCount != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestEnrich_EmptyInput(t *testing.T) {
	enriched, stats := Enrich(nil, entity.Catalog{"P1": {}})

	if len(enriched) != 0 {
		t.Errorf("enriched = %d records, want 0", len(enriched))
	}
	if stats.TotalRecords != 0 || stats.MatchRate != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
