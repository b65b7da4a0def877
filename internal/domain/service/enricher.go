package service

import (
	"sort"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// Enrich joins every transaction against the product catalog by product
// identifier. The join is pure and additive: financial fields are copied
// untouched, catalog attributes are attached on a match, and a miss is a
// tracked non-match rather than an error. An empty catalog degrades to
// APIMatch=false for every record.
func Enrich(transactions []entity.Transaction, catalog entity.Catalog) ([]entity.EnrichedTransaction, entity.EnrichmentStats) {
	enriched := make([]entity.EnrichedTransaction, 0, len(transactions))
	stats := entity.EnrichmentStats{TotalRecords: len(transactions)}
	unmatched := map[string]bool{}

	for _, t := range transactions {
		record := entity.EnrichedTransaction{Transaction: t}
		if entry, ok := catalog[t.ProductID]; ok {
			rating := entry.Rating
			record.APICategory = entry.Category
			record.APIBrand = entry.Brand
			record.APIRating = &rating
			record.APIMatch = true
			stats.MatchedCount++
		} else {
			stats.UnmatchedCount++
			unmatched[t.ProductID] = true
		}
		enriched = append(enriched, record)
	}

	if stats.TotalRecords > 0 {
		stats.MatchRate = float64(stats.MatchedCount) / float64(stats.TotalRecords) * 100
	}
	for id := range unmatched {
		stats.UnmatchedProductIDs = append(stats.UnmatchedProductIDs, id)
	}
	sort.Strings(stats.UnmatchedProductIDs)

	return enriched, stats
}
