package repository

import (
	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing pipeline outputs to disk.
type ExportRepository interface {
	// Enriched record set
	ExportEnrichedToCSV(records []entity.EnrichedTransaction, filename, outputDir string) (string, error)
	ExportEnrichedToFlatFile(records []entity.EnrichedTransaction, delimiter, filename, outputDir string) (string, error)
	ExportEnrichedToXLSX(records []entity.EnrichedTransaction, report entity.AnalyticsReport, filename, outputDir string) (string, error)

	// Full run envelope
	ExportRunToJSON(run entity.RunExport, filename, outputDir string) (string, error)

	// Analytics report
	ExportReportToPDF(report entity.AnalyticsReport, stats entity.EnrichmentStats, runID, filename, outputDir string) (string, error)
}
