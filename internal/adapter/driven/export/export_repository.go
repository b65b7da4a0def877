package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
	"github.com/diillson/sales-analytics-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

const dateLayout = "2006-01-02"

var enrichedHeaders = []string{
	"Transaction ID", "Product ID", "Product Name", "Customer ID", "Region",
	"Quantity", "Unit Price", "Date", "Amount", "Validity",
	"API Category", "API Brand", "API Rating", "API Match",
}

func enrichedRow(r entity.EnrichedTransaction) []string {
	rating := ""
	if r.APIRating != nil {
		rating = strconv.FormatFloat(*r.APIRating, 'f', -1, 64)
	}
	return []string{
		r.TransactionID,
		r.ProductID,
		r.ProductName,
		r.CustomerID,
		r.Region,
		strconv.Itoa(r.Quantity),
		fmt.Sprintf("%.2f", r.UnitPrice),
		r.Date.Format(dateLayout),
		fmt.Sprintf("%.2f", r.Amount),
		string(r.Validity.Status),
		r.APICategory,
		r.APIBrand,
		rating,
		strconv.FormatBool(r.APIMatch),
	}
}

// --- Funções de Exportação dos Registros Enriquecidos ---

func (r *ExportRepositoryImpl) ExportEnrichedToCSV(records []entity.EnrichedTransaction, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(enrichedHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(enrichedRow(record)); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportEnrichedToFlatFile writes the enriched records back in the delimited
// format of the input feed, with the enrichment columns appended.
func (r *ExportRepositoryImpl) ExportEnrichedToFlatFile(records []entity.EnrichedTransaction, delimiter, filename, outputDir string) (string, error) {
	if delimiter == "" {
		delimiter = "|"
	}
	outputFilename, err := generateFilename(filename, outputDir, "txt")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating flat file: %w", err)
	}
	defer file.Close()

	header := []string{
		"TransactionID", "ProductID", "ProductName", "CustomerID", "Region",
		"Quantity", "UnitPrice", "Date", "Amount",
		"API_Category", "API_Brand", "API_Rating", "API_Match",
	}
	if _, err := fmt.Fprintln(file, strings.Join(header, delimiter)); err != nil {
		return "", fmt.Errorf("error writing flat file header: %w", err)
	}

	for _, record := range records {
		rating := ""
		if record.APIRating != nil {
			rating = strconv.FormatFloat(*record.APIRating, 'f', -1, 64)
		}
		fields := []string{
			record.TransactionID,
			record.ProductID,
			record.ProductName,
			record.CustomerID,
			record.Region,
			strconv.Itoa(record.Quantity),
			fmt.Sprintf("%.2f", record.UnitPrice),
			record.Date.Format(dateLayout),
			fmt.Sprintf("%.2f", record.Amount),
			record.APICategory,
			record.APIBrand,
			rating,
			strconv.FormatBool(record.APIMatch),
		}
		if _, err := fmt.Fprintln(file, strings.Join(fields, delimiter)); err != nil {
			return "", fmt.Errorf("error writing flat file record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportEnrichedToXLSX(records []entity.EnrichedTransaction, report entity.AnalyticsReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const recordsSheet = "Enriched Transactions"
	const summarySheet = "Summary"

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return "", fmt.Errorf("error renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return "", fmt.Errorf("error creating summary sheet: %w", err)
	}

	for col, name := range enrichedHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error addressing cell: %w", err)
		}
		if err := f.SetCellValue(recordsSheet, cell, name); err != nil {
			return "", fmt.Errorf("error writing header cell: %w", err)
		}
	}
	for row, record := range records {
		for col, value := range enrichedRow(record) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("error addressing cell: %w", err)
			}
			if err := f.SetCellValue(recordsSheet, cell, value); err != nil {
				return "", fmt.Errorf("error writing record cell: %w", err)
			}
		}
	}

	summary := [][]interface{}{
		{"Total Revenue", report.TotalRevenue},
		{"Transactions", report.TransactionCount},
		{"Average Order Value", report.AverageOrderValue},
	}
	if !report.FirstDate.IsZero() {
		summary = append(summary, []interface{}{
			"Date Range",
			fmt.Sprintf("%s to %s", report.FirstDate.Format(dateLayout), report.LastDate.Format(dateLayout)),
		})
	}
	summary = append(summary, []interface{}{"", ""}, []interface{}{"Region", "Revenue"})
	for _, region := range report.Regions {
		summary = append(summary, []interface{}{region.Region, region.Revenue})
	}

	for row, pair := range summary {
		for col, value := range pair {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return "", fmt.Errorf("error addressing cell: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return "", fmt.Errorf("error writing summary cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRunToJSON(run entity.RunExport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(run); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções de Exportação do Relatório de Análise ---

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.AnalyticsReport, stats entity.EnrichmentStats, runID, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Sales Analytics Report"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Run ID: %s", runID)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Resumo geral
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total Revenue: $%.2f\n", report.TotalRevenue))
	b.WriteString(fmt.Sprintf("Total Transactions: %d\n", report.TransactionCount))
	b.WriteString(fmt.Sprintf("Average Order Value: $%.2f\n", report.AverageOrderValue))
	if !report.FirstDate.IsZero() {
		b.WriteString(fmt.Sprintf("Date Range: %s to %s\n",
			report.FirstDate.Format(dateLayout), report.LastDate.Format(dateLayout)))
	}
	drawSection("Overall Summary", b.String())

	var regions strings.Builder
	for _, region := range report.Regions {
		regions.WriteString(fmt.Sprintf("%s: $%.2f (%.2f%% of total, %d transactions, AOV $%.2f)\n",
			region.Region, region.Revenue, region.PercentOfTotal,
			region.TransactionCount, region.AverageOrderValue))
	}
	drawSection("Region Breakdown", regions.String())

	var products strings.Builder
	for i, product := range report.TopProducts {
		label := product.ProductID
		if product.ProductName != "" {
			label = fmt.Sprintf("%s (%s)", product.ProductID, product.ProductName)
		}
		products.WriteString(fmt.Sprintf("%d. %s: %d units, $%.2f\n",
			i+1, label, product.Quantity, product.Revenue))
	}
	drawSection(fmt.Sprintf("Top %d Products", len(report.TopProducts)), products.String())

	var customers strings.Builder
	for i, customer := range report.TopCustomers {
		customers.WriteString(fmt.Sprintf("%d. %s: $%.2f over %d orders\n",
			i+1, customer.CustomerID, customer.TotalSpent, customer.PurchaseCount))
	}
	drawSection(fmt.Sprintf("Top %d Customers", len(report.TopCustomers)), customers.String())

	var daily strings.Builder
	if report.PeakDay != nil {
		daily.WriteString(fmt.Sprintf("Peak Day: %s ($%.2f, %d transactions)\n\n",
			report.PeakDay.Date.Format(dateLayout), report.PeakDay.Revenue, report.PeakDay.TransactionCount))
	}
	for _, day := range report.Daily {
		daily.WriteString(fmt.Sprintf("%s: $%.2f (%d transactions, %d customers)\n",
			day.Date.Format(dateLayout), day.Revenue, day.TransactionCount, day.UniqueCustomers))
	}
	drawSection("Daily Sales Trend", daily.String())

	if len(report.LowPerformers) > 0 {
		var low strings.Builder
		for _, product := range report.LowPerformers {
			low.WriteString(fmt.Sprintf("%s: %d units, $%.2f\n",
				product.ProductID, product.Quantity, product.Revenue))
		}
		drawSection("Low Performing Products", low.String())
	}

	var enrichment strings.Builder
	enrichment.WriteString(fmt.Sprintf("Records Enriched: %d/%d\n", stats.MatchedCount, stats.TotalRecords))
	enrichment.WriteString(fmt.Sprintf("Match Rate: %.2f%%\n", stats.MatchRate))
	if len(stats.UnmatchedProductIDs) > 0 {
		enrichment.WriteString(fmt.Sprintf("Unmatched Products: %s\n", strings.Join(stats.UnmatchedProductIDs, ", ")))
	}
	drawSection("Catalog Enrichment Summary", enrichment.String())

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Sales Analytics CLI | %s", time.Now().Format(dateLayout))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr("Page 1"), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que
// o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
