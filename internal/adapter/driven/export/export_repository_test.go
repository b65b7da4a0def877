package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

func sampleRecords() []entity.EnrichedTransaction {
	rating := 4.5
	return []entity.EnrichedTransaction{
		{
			Transaction: entity.Transaction{
				TransactionID: "T1",
				ProductID:     "P1",
				ProductName:   "Widget",
				CustomerID:    "C1",
				Region:        "North",
				Quantity:      2,
				UnitPrice:     100,
				Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Amount:        200,
				Validity:      entity.Validity{Status: entity.ValidityValid},
			},
			APICategory: "Electronics",
			APIBrand:    "Acme",
			APIRating:   &rating,
			APIMatch:    true,
		},
		{
			Transaction: entity.Transaction{
				TransactionID: "T2",
				ProductID:     "P99",
				CustomerID:    "C2",
				Region:        "South",
				Quantity:      1,
				UnitPrice:     50,
				Date:          time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				Amount:        50,
				Validity:      entity.Validity{Status: entity.ValidityValid},
			},
			APIMatch: false,
		},
	}
}

func TestExportEnrichedToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportEnrichedToCSV(sampleRecords(), "report", dir)
	if err != nil {
		t.Fatalf("ExportEnrichedToCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported CSV: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("CSV has %d rows, want header + 2 records", len(rows))
	}
	if rows[0][0] != "Transaction ID" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "T1" || rows[1][10] != "Electronics" {
		t.Errorf("first record = %v", rows[1])
	}
	if rows[2][13] != "false" {
		t.Errorf("unmatched record APIMatch cell = %q, want false", rows[2][13])
	}
}

func TestExportEnrichedToFlatFile(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportEnrichedToFlatFile(sampleRecords(), "|", "enriched", dir)
	if err != nil {
		t.Fatalf("ExportEnrichedToFlatFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading flat file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("flat file has %d lines, want header + 2 records", len(lines))
	}
	if !strings.HasPrefix(lines[0], "TransactionID|ProductID|") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "T1|P1|Widget|C1|North|2|100.00|2024-01-01|200.00|Electronics|Acme|4.5|true") {
		t.Errorf("first record = %q", lines[1])
	}
}

func TestExportRunToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	run := entity.RunExport{
		RunID:       "run-123",
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Report:      entity.AnalyticsReport{TotalRevenue: 250, TransactionCount: 2},
		Enrichment:  entity.EnrichmentStats{TotalRecords: 2, MatchedCount: 1, UnmatchedCount: 1, MatchRate: 50},
		Records:     sampleRecords(),
	}

	path, err := repo.ExportRunToJSON(run, "run", dir)
	if err != nil {
		t.Fatalf("ExportRunToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading JSON export: %v", err)
	}

	var decoded entity.RunExport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding JSON export: %v", err)
	}
	if decoded.RunID != "run-123" {
		t.Errorf("RunID = %q, want run-123", decoded.RunID)
	}
	if decoded.Report.TotalRevenue != 250 {
		t.Errorf("TotalRevenue = %v, want 250", decoded.Report.TotalRevenue)
	}
	if len(decoded.Records) != 2 {
		t.Errorf("Records = %d, want 2", len(decoded.Records))
	}
}

func TestExportReportToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	report := entity.AnalyticsReport{
		TotalRevenue:      250,
		TransactionCount:  2,
		AverageOrderValue: 125,
		FirstDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LastDate:          time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Regions: []entity.RegionStats{
			{Region: "North", Revenue: 200, TransactionCount: 1, AverageOrderValue: 200, PercentOfTotal: 80},
		},
		TopProducts: []entity.ProductStats{
			{ProductID: "P1", ProductName: "Widget", Quantity: 2, Revenue: 200},
		},
	}
	stats := entity.EnrichmentStats{TotalRecords: 2, MatchedCount: 1, UnmatchedCount: 1, MatchRate: 50, UnmatchedProductIDs: []string{"P99"}}

	path, err := repo.ExportReportToPDF(report, stats, "run-123", "report", dir)
	if err != nil {
		t.Fatalf("ExportReportToPDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat PDF: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF export is empty")
	}
}

func TestExportEnrichedToXLSX(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	report := entity.AnalyticsReport{
		TotalRevenue:      250,
		TransactionCount:  2,
		AverageOrderValue: 125,
		Regions: []entity.RegionStats{
			{Region: "North", Revenue: 200},
			{Region: "South", Revenue: 50},
		},
	}

	path, err := repo.ExportEnrichedToXLSX(sampleRecords(), report, "report", dir)
	if err != nil {
		t.Fatalf("ExportEnrichedToXLSX failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat XLSX: %v", err)
	}
	if info.Size() == 0 {
		t.Error("XLSX export is empty")
	}
}

func TestGenerateFilename_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/out"

	path, err := generateFilename("report", dir, "csv")
	if err != nil {
		t.Fatalf("generateFilename failed: %v", err)
	}
	if !strings.HasSuffix(path, ".csv") {
		t.Errorf("path = %q, want .csv suffix", path)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}
