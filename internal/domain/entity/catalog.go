package entity

// CatalogEntry is the reference data the external product catalog holds for
// one product. Read-only to the pipeline.
type CatalogEntry struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title,omitempty"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	Rating    float64 `json:"rating"`
}

// Catalog maps a product identifier to its catalog entry. It is handed to the
// enricher fully materialized; an empty catalog is a valid input and simply
// yields no matches.
type Catalog map[string]CatalogEntry

// EnrichedTransaction is a transaction with catalog attributes attached.
// Enrichment is additive: the embedded financial fields are never altered.
type EnrichedTransaction struct {
	Transaction
	APICategory string   `json:"api_category,omitempty"`
	APIBrand    string   `json:"api_brand,omitempty"`
	APIRating   *float64 `json:"api_rating,omitempty"`
	APIMatch    bool     `json:"api_match"`
}

// EnrichmentStats summarizes one enrichment pass.
type EnrichmentStats struct {
	TotalRecords        int      `json:"total_records"`
	MatchedCount        int      `json:"matched_count"`
	UnmatchedCount      int      `json:"unmatched_count"`
	MatchRate           float64  `json:"match_rate"`
	UnmatchedProductIDs []string `json:"unmatched_product_ids,omitempty"`
}
