package service

import (
	"sort"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
)

// AggregatorOptions configures the analytics computation.
type AggregatorOptions struct {
	// TopN bounds the top-products and top-customers rankings.
	TopN int
	// LowPerformerThreshold flags products whose total revenue or total
	// quantity sold falls below it.
	LowPerformerThreshold float64
}

// DefaultAggregatorOptions returns the standard options.
func DefaultAggregatorOptions() AggregatorOptions {
	return AggregatorOptions{TopN: 5, LowPerformerThreshold: 10}
}

// Validate rejects structurally impossible options. This is the only hard
// error the aggregator can produce; bad data never is.
func (o AggregatorOptions) Validate() error {
	if o.TopN < 1 {
		return types.ErrInvalidTopN
	}
	return nil
}

// Aggregate computes the full analytics report over a record set. The result
// is deterministic regardless of input order: rankings break revenue ties by
// ascending identifier, and the peak day breaks revenue ties by earliest
// date. An empty input yields zeroed aggregates, not an error.
func Aggregate(transactions []entity.Transaction, opts AggregatorOptions) (entity.AnalyticsReport, error) {
	if err := opts.Validate(); err != nil {
		return entity.AnalyticsReport{}, err
	}

	report := entity.AnalyticsReport{
		Regions:       []entity.RegionStats{},
		TopProducts:   []entity.ProductStats{},
		TopCustomers:  []entity.CustomerStats{},
		Daily:         []entity.DailyRevenue{},
		LowPerformers: []entity.ProductStats{},
	}
	if len(transactions) == 0 {
		return report, nil
	}

	regions := map[string]*entity.RegionStats{}
	products := map[string]*entity.ProductStats{}
	customers := map[string]*entity.CustomerStats{}
	customerProducts := map[string]map[string]bool{}
	daily := map[string]*entity.DailyRevenue{}
	dailyCustomers := map[string]map[string]bool{}

	for _, t := range transactions {
		report.TotalRevenue += t.Amount
		report.TransactionCount++

		if report.FirstDate.IsZero() || t.Date.Before(report.FirstDate) {
			report.FirstDate = t.Date
		}
		if t.Date.After(report.LastDate) {
			report.LastDate = t.Date
		}

		region, ok := regions[t.Region]
		if !ok {
			region = &entity.RegionStats{Region: t.Region}
			regions[t.Region] = region
		}
		region.Revenue += t.Amount
		region.TransactionCount++

		product, ok := products[t.ProductID]
		if !ok {
			product = &entity.ProductStats{ProductID: t.ProductID, ProductName: t.ProductName}
			products[t.ProductID] = product
		}
		product.Quantity += t.Quantity
		product.Revenue += t.Amount

		if t.CustomerID != "" {
			customer, ok := customers[t.CustomerID]
			if !ok {
				customer = &entity.CustomerStats{CustomerID: t.CustomerID}
				customers[t.CustomerID] = customer
				customerProducts[t.CustomerID] = map[string]bool{}
			}
			customer.TotalSpent += t.Amount
			customer.PurchaseCount++
			customerProducts[t.CustomerID][t.ProductID] = true
		}

		dayKey := t.Date.Format("2006-01-02")
		day, ok := daily[dayKey]
		if !ok {
			day = &entity.DailyRevenue{Date: t.Date}
			daily[dayKey] = day
			dailyCustomers[dayKey] = map[string]bool{}
		}
		day.Revenue += t.Amount
		day.TransactionCount++
		if t.CustomerID != "" {
			dailyCustomers[dayKey][t.CustomerID] = true
		}
	}

	report.AverageOrderValue = report.TotalRevenue / float64(report.TransactionCount)

	// Region breakdown, highest revenue first. Groups only exist when at
	// least one record mapped to them, so the per-group division is safe.
	for _, region := range regions {
		region.AverageOrderValue = region.Revenue / float64(region.TransactionCount)
		if report.TotalRevenue > 0 {
			region.PercentOfTotal = region.Revenue / report.TotalRevenue * 100
		}
		report.Regions = append(report.Regions, *region)
	}
	sort.Slice(report.Regions, func(i, j int) bool {
		if report.Regions[i].Revenue != report.Regions[j].Revenue {
			return report.Regions[i].Revenue > report.Regions[j].Revenue
		}
		return report.Regions[i].Region < report.Regions[j].Region
	})

	allProducts := make([]entity.ProductStats, 0, len(products))
	for _, product := range products {
		allProducts = append(allProducts, *product)
	}
	sort.Slice(allProducts, func(i, j int) bool {
		if allProducts[i].Revenue != allProducts[j].Revenue {
			return allProducts[i].Revenue > allProducts[j].Revenue
		}
		return allProducts[i].ProductID < allProducts[j].ProductID
	})
	report.TopProducts = topProducts(allProducts, opts.TopN)

	allCustomers := make([]entity.CustomerStats, 0, len(customers))
	for id, customer := range customers {
		customer.AverageOrderValue = customer.TotalSpent / float64(customer.PurchaseCount)
		customer.UniqueProducts = len(customerProducts[id])
		allCustomers = append(allCustomers, *customer)
	}
	sort.Slice(allCustomers, func(i, j int) bool {
		if allCustomers[i].TotalSpent != allCustomers[j].TotalSpent {
			return allCustomers[i].TotalSpent > allCustomers[j].TotalSpent
		}
		return allCustomers[i].CustomerID < allCustomers[j].CustomerID
	})
	if len(allCustomers) > opts.TopN {
		allCustomers = allCustomers[:opts.TopN]
	}
	report.TopCustomers = allCustomers

	for key, day := range daily {
		day.UniqueCustomers = len(dailyCustomers[key])
		report.Daily = append(report.Daily, *day)
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date.Before(report.Daily[j].Date)
	})

	// Peak day: maximum revenue, earliest date wins ties. Daily is already
	// chronological, so a strict comparison is enough.
	for i := range report.Daily {
		if report.PeakDay == nil || report.Daily[i].Revenue > report.PeakDay.Revenue {
			peak := report.Daily[i]
			report.PeakDay = &peak
		}
	}

	for _, product := range allProductsByID(products) {
		if product.Revenue < opts.LowPerformerThreshold ||
			float64(product.Quantity) < opts.LowPerformerThreshold {
			report.LowPerformers = append(report.LowPerformers, product)
		}
	}
	sort.Slice(report.LowPerformers, func(i, j int) bool {
		if report.LowPerformers[i].Revenue != report.LowPerformers[j].Revenue {
			return report.LowPerformers[i].Revenue < report.LowPerformers[j].Revenue
		}
		return report.LowPerformers[i].ProductID < report.LowPerformers[j].ProductID
	})

	return report, nil
}

func topProducts(sorted []entity.ProductStats, n int) []entity.ProductStats {
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func allProductsByID(products map[string]*entity.ProductStats) []entity.ProductStats {
	out := make([]entity.ProductStats, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
