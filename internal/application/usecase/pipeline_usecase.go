package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
	"github.com/diillson/sales-analytics-go/internal/domain/repository"
	"github.com/diillson/sales-analytics-go/internal/domain/service"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
)

const maxFailuresShown = 5

// PipelineUseCase handles the main sales analytics pipeline: read, parse,
// validate, filter, aggregate, enrich, report, export.
type PipelineUseCase struct {
	salesRepo   repository.SalesDataRepository
	catalogRepo repository.CatalogRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewPipelineUseCase creates a new pipeline use case.
func NewPipelineUseCase(
	salesRepo repository.SalesDataRepository,
	catalogRepo repository.CatalogRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *PipelineUseCase {
	return &PipelineUseCase{
		salesRepo:   salesRepo,
		catalogRepo: catalogRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// ResolveArgs mescla o arquivo de configuração (se houver) nos argumentos da
// CLI. Flags explícitas sempre têm precedência sobre o arquivo.
func (uc *PipelineUseCase) ResolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.InputFile == "" {
		args.InputFile = config.InputFile
	}
	if args.Delimiter == "" || args.Delimiter == "|" {
		if config.Delimiter != "" {
			args.Delimiter = config.Delimiter
		}
	}
	if len(config.Columns) > 0 && equalStrings(args.Columns, service.DefaultColumnNames()) {
		args.Columns = config.Columns
	}
	if args.Region == "" {
		args.Region = config.Region
	}
	if args.MinAmount == nil {
		args.MinAmount = config.MinAmount
	}
	if args.MaxAmount == nil {
		args.MaxAmount = config.MaxAmount
	}
	if args.TopN == 5 && config.TopN != 0 {
		args.TopN = config.TopN
	}
	if args.LowThreshold == 10 && config.LowThreshold != nil {
		args.LowThreshold = *config.LowThreshold
	}
	if args.CatalogURL == "" {
		args.CatalogURL = config.CatalogURL
	}
	if !args.SkipEnrich {
		args.SkipEnrich = config.SkipEnrich
	}
	if args.ReportName == "" {
		args.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 && equalStrings(args.ReportType, []string{"csv"}) {
		args.ReportType = config.ReportType
	}
	// Dir da CLI já chega resolvido para caminho absoluto; o do arquivo só
	// vale quando o chamador não definiu nenhum.
	if args.Dir == "" {
		args.Dir = config.Dir
	}

	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RunPipeline executa a funcionalidade principal do pipeline de análise.
func (uc *PipelineUseCase) RunPipeline(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ResolveArgs(args); err != nil {
		return err
	}
	if args.InputFile == "" {
		return types.ErrNoInputFile
	}

	opts := service.AggregatorOptions{
		TopN:                  args.TopN,
		LowPerformerThreshold: args.LowThreshold,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	parser, err := service.NewParser(args.Delimiter, service.ColumnsFromNames(args.Columns))
	if err != nil {
		return err
	}

	// Etapa 1: leitura e parse do arquivo de vendas
	uc.console.LogInfo("Reading sales data from %s", args.InputFile)
	lines, err := uc.salesRepo.ReadLines(args.InputFile)
	if err != nil {
		return err
	}

	result := uc.parseWithProgress(parser, lines)
	uc.displayParseSummary(result)

	// Etapa 2: validação
	valid, invalid := service.Classify(result.Transactions)
	uc.displayValidationSummary(len(result.Transactions), valid, invalid)

	// Etapa 3: filtragem opcional
	spec := filterSpecFromArgs(args)
	filtered := service.ApplyFilter(valid, spec)
	if !spec.IsZero() {
		uc.console.LogInfo("Filter matched %d of %d valid transactions", len(filtered), len(valid))
	}

	// Etapa 4: agregação
	report, err := service.Aggregate(filtered, opts)
	if err != nil {
		return err
	}

	// Etapa 5: enriquecimento via catálogo de produtos
	catalog := entity.Catalog{}
	if args.SkipEnrich {
		uc.console.LogInfo("Catalog enrichment skipped")
	} else {
		status := uc.console.Status("Fetching product catalog...")
		catalog, err = uc.catalogRepo.FetchCatalog(ctx, args.CatalogURL)
		status.Stop()
		if err != nil {
			uc.console.LogWarning("Product catalog unavailable, continuing without enrichment: %s", err)
			catalog = entity.Catalog{}
		} else {
			uc.console.LogSuccess("Fetched product catalog (%d products)", len(catalog))
		}
	}
	enriched, stats := service.Enrich(filtered, catalog)

	// Etapa 6: exibição do relatório
	uc.displayReport(report)
	if !args.SkipEnrich {
		uc.displayEnrichmentSummary(stats)
	}

	// Etapa 7: exportação dos relatórios
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(report, stats, enriched, args)
	}

	return nil
}

// parseWithProgress percorre as linhas com uma barra de progresso.
func (uc *PipelineUseCase) parseWithProgress(parser *service.Parser, lines []string) entity.ParseResult {
	var result entity.ParseResult

	progress := uc.console.ProgressWithTotal(len(lines))
	for i, line := range lines {
		outcome := parser.ParseLine(line, i+1)
		switch outcome.Kind {
		case service.LineTransaction:
			result.Transactions = append(result.Transactions, outcome.Transaction)
		case service.LineFailure:
			result.Failures = append(result.Failures, outcome.Failure)
		case service.LineBlank:
			result.BlankLines++
		case service.LineHeader:
			result.HeaderLines++
		}
		progress.Increment()
	}
	progress.Stop()

	return result
}

func (uc *PipelineUseCase) displayParseSummary(result entity.ParseResult) {
	uc.console.LogInfo("Parsed %d transactions from %d data lines (%d header, %d blank)",
		len(result.Transactions), result.DataLines(), result.HeaderLines, result.BlankLines)

	if len(result.Failures) == 0 {
		return
	}

	uc.console.LogWarning("%d lines could not be parsed", len(result.Failures))
	for i, failure := range result.Failures {
		if i == maxFailuresShown {
			uc.console.LogWarning("  ... and %d more", len(result.Failures)-maxFailuresShown)
			break
		}
		uc.console.LogWarning("  line %d: %s", failure.LineNumber, failure.Reason)
	}
}

func (uc *PipelineUseCase) displayValidationSummary(total int, valid, invalid []entity.Transaction) {
	table := uc.console.CreateTable()
	table.AddColumn("Parsed")
	table.AddColumn("Valid")
	table.AddColumn("Invalid")

	table.AddRow(
		total,
		pterm.FgGreen.Sprintf("%d", len(valid)),
		pterm.FgRed.Sprintf("%d", len(invalid)),
	)
	uc.console.Print(table.Render())

	// Mostra os motivos mais comuns de invalidação
	if len(invalid) > 0 {
		reasons := map[string]int{}
		for _, t := range invalid {
			for _, violation := range t.Validity.Violations {
				reasons[violation]++
			}
		}
		for reason, count := range reasons {
			uc.console.LogWarning("%d record(s): %s", count, reason)
		}
	}
}

// displayReport renderiza o relatório de análise no console.
func (uc *PipelineUseCase) displayReport(report entity.AnalyticsReport) {
	if report.TransactionCount == 0 {
		uc.console.LogWarning("No transactions to analyze")
		return
	}

	uc.console.Println()
	uc.console.LogInfo("Total Revenue: %s | Transactions: %d | Average Order Value: $%.2f",
		pterm.FgGreen.Sprintf("$%.2f", report.TotalRevenue),
		report.TransactionCount,
		report.AverageOrderValue)
	if !report.FirstDate.IsZero() {
		uc.console.LogInfo("Date Range: %s to %s",
			report.FirstDate.Format("2006-01-02"), report.LastDate.Format("2006-01-02"))
	}

	// Tabela de regiões
	regionTable := uc.console.CreateTable()
	regionTable.AddColumn("Region")
	regionTable.AddColumn("Revenue")
	regionTable.AddColumn("Transactions")
	regionTable.AddColumn("AOV")
	regionTable.AddColumn("% of Total")
	for _, region := range report.Regions {
		regionTable.AddRow(
			pterm.FgMagenta.Sprintf("%s", region.Region),
			fmt.Sprintf("$%.2f", region.Revenue),
			region.TransactionCount,
			fmt.Sprintf("$%.2f", region.AverageOrderValue),
			fmt.Sprintf("%.2f%%", region.PercentOfTotal),
		)
	}
	uc.console.Print(regionTable.Render())

	// Tabela de produtos mais vendidos
	productTable := uc.console.CreateTable()
	productTable.AddColumn("#")
	productTable.AddColumn("Product")
	productTable.AddColumn("Units")
	productTable.AddColumn("Revenue")
	for i, product := range report.TopProducts {
		label := product.ProductID
		if product.ProductName != "" {
			label = fmt.Sprintf("%s (%s)", product.ProductID, product.ProductName)
		}
		productTable.AddRow(i+1, label, product.Quantity, fmt.Sprintf("$%.2f", product.Revenue))
	}
	uc.console.Print(productTable.Render())

	// Tabela de melhores clientes
	customerTable := uc.console.CreateTable()
	customerTable.AddColumn("#")
	customerTable.AddColumn("Customer")
	customerTable.AddColumn("Total Spent")
	customerTable.AddColumn("Orders")
	customerTable.AddColumn("AOV")
	customerTable.AddColumn("Unique Products")
	for i, customer := range report.TopCustomers {
		customerTable.AddRow(
			i+1,
			customer.CustomerID,
			fmt.Sprintf("$%.2f", customer.TotalSpent),
			customer.PurchaseCount,
			fmt.Sprintf("$%.2f", customer.AverageOrderValue),
			customer.UniqueProducts,
		)
	}
	uc.console.Print(customerTable.Render())

	// Tendência diária
	dailyPoints := make([]types.DailyPoint, len(report.Daily))
	for i, day := range report.Daily {
		dailyPoints[i] = types.DailyPoint{
			Date:    day.Date.Format("2006-01-02"),
			Revenue: day.Revenue,
		}
	}
	uc.console.DisplayTrendBars(dailyPoints)

	if report.PeakDay != nil {
		uc.console.LogInfo("Peak sales day: %s with %s across %d transactions",
			report.PeakDay.Date.Format("2006-01-02"),
			pterm.FgGreen.Sprintf("$%.2f", report.PeakDay.Revenue),
			report.PeakDay.TransactionCount)
	}

	if len(report.LowPerformers) > 0 {
		ids := make([]string, len(report.LowPerformers))
		for i, product := range report.LowPerformers {
			ids[i] = product.ProductID
		}
		uc.console.LogWarning("Low performing products: %s", strings.Join(ids, ", "))
	}
}

func (uc *PipelineUseCase) displayEnrichmentSummary(stats entity.EnrichmentStats) {
	uc.console.LogInfo("Catalog enrichment: %d/%d records matched (%.2f%%)",
		stats.MatchedCount, stats.TotalRecords, stats.MatchRate)
	if len(stats.UnmatchedProductIDs) > 0 {
		uc.console.LogWarning("Products not found in catalog: %s",
			strings.Join(stats.UnmatchedProductIDs, ", "))
	}
}

// exportReports grava cada formato de relatório solicitado.
func (uc *PipelineUseCase) exportReports(
	report entity.AnalyticsReport,
	stats entity.EnrichmentStats,
	enriched []entity.EnrichedTransaction,
	args *types.CLIArgs,
) {
	runID := uuid.NewString()

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportEnrichedToCSV(enriched, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "txt":
			txtPath, err := uc.exportRepo.ExportEnrichedToFlatFile(enriched, args.Delimiter, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to flat file: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to flat file: %s", txtPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportEnrichedToXLSX(enriched, report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		case "json":
			run := entity.RunExport{
				RunID:       runID,
				GeneratedAt: time.Now().UTC(),
				Report:      report,
				Enrichment:  stats,
				Records:     enriched,
			}
			jsonPath, err := uc.exportRepo.ExportRunToJSON(run, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(report, stats, runID, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("\nSuccessfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q, skipping", reportType)
		}
	}
}

// filterSpecFromArgs monta o filtro opcional a partir dos argumentos.
func filterSpecFromArgs(args *types.CLIArgs) service.FilterSpec {
	spec := service.FilterSpec{
		MinAmount: args.MinAmount,
		MaxAmount: args.MaxAmount,
	}
	if args.Region != "" {
		region := args.Region
		spec.Region = &region
	}
	return spec
}
