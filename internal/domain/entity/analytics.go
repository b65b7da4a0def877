package entity

import "time"

// RegionStats holds the aggregate figures for one region. Regions are
// discovered from the data, never predefined.
type RegionStats struct {
	Region            string  `json:"region"`
	Revenue           float64 `json:"revenue"`
	TransactionCount  int     `json:"transaction_count"`
	AverageOrderValue float64 `json:"average_order_value"`
	PercentOfTotal    float64 `json:"percent_of_total"`
}

// ProductStats holds the aggregate figures for one product.
type ProductStats struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// CustomerStats holds the aggregate figures for one customer.
type CustomerStats struct {
	CustomerID        string  `json:"customer_id"`
	TotalSpent        float64 `json:"total_spent"`
	PurchaseCount     int     `json:"purchase_count"`
	AverageOrderValue float64 `json:"average_order_value"`
	UniqueProducts    int     `json:"unique_products"`
}

// DailyRevenue is one point of the daily sales trend.
type DailyRevenue struct {
	Date             time.Time `json:"date"`
	Revenue          float64   `json:"revenue"`
	TransactionCount int       `json:"transaction_count"`
	UniqueCustomers  int       `json:"unique_customers"`
}

// AnalyticsReport is the full set of descriptive statistics computed over one
// record set. It is recomputed from scratch on every run; there is no
// incremental state.
type AnalyticsReport struct {
	TotalRevenue      float64        `json:"total_revenue"`
	TransactionCount  int            `json:"transaction_count"`
	AverageOrderValue float64        `json:"average_order_value"`
	FirstDate         time.Time      `json:"first_date,omitempty"`
	LastDate          time.Time      `json:"last_date,omitempty"`
	Regions           []RegionStats  `json:"regions"`
	TopProducts       []ProductStats `json:"top_products"`
	TopCustomers      []CustomerStats `json:"top_customers"`
	Daily             []DailyRevenue `json:"daily"`
	PeakDay           *DailyRevenue  `json:"peak_day,omitempty"`
	LowPerformers     []ProductStats `json:"low_performers"`
}

// RunExport is the envelope written by the JSON export: everything one
// pipeline run produced, tied together by its run ID.
type RunExport struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Report      AnalyticsReport       `json:"report"`
	Enrichment  EnrichmentStats       `json:"enrichment"`
	Records     []EnrichedTransaction `json:"records"`
}
