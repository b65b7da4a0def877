package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/sales-analytics-go/pkg/version"

	"github.com/diillson/sales-analytics-go/internal/application/usecase"
	"github.com/diillson/sales-analytics-go/internal/domain/service"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	pipelineUseCase *usecase.PipelineUseCase
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "sales-analytics",
		Short:   "Sales Analytics CLI",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Sales Analytics CLI version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the delimited sales data file")
	rootCmd.PersistentFlags().StringP("delimiter", "D", "|", "Field delimiter used by the sales data file")
	rootCmd.PersistentFlags().StringSlice("columns", service.DefaultColumnNames(), "Column order of the sales data file (comma-separated)")
	rootCmd.PersistentFlags().StringP("region", "R", "", "Only analyze transactions from this region")
	rootCmd.PersistentFlags().Float64("min-amount", 0, "Only analyze transactions with amount >= this value")
	rootCmd.PersistentFlags().Float64("max-amount", 0, "Only analyze transactions with amount <= this value")
	rootCmd.PersistentFlags().IntP("top-n", "t", 5, "Number of entries in the top products and top customers rankings")
	rootCmd.PersistentFlags().Float64("low-threshold", 10, "Revenue or quantity below which a product is flagged as low performing")
	rootCmd.PersistentFlags().String("catalog-url", "", "Base URL of the product catalog API (default: https://dummyjson.com)")
	rootCmd.PersistentFlags().Bool("skip-enrich", false, "Skip product catalog enrichment")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx, txt")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	inputFile, _ := app.rootCmd.Flags().GetString("input")
	delimiter, _ := app.rootCmd.Flags().GetString("delimiter")
	columns, _ := app.rootCmd.Flags().GetStringSlice("columns")
	region, _ := app.rootCmd.Flags().GetString("region")
	topN, _ := app.rootCmd.Flags().GetInt("top-n")
	lowThreshold, _ := app.rootCmd.Flags().GetFloat64("low-threshold")
	catalogURL, _ := app.rootCmd.Flags().GetString("catalog-url")
	skipEnrich, _ := app.rootCmd.Flags().GetBool("skip-enrich")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	// Zero é um valor de filtro válido; só aplicamos os limites quando a flag
	// foi informada explicitamente.
	var minAmount, maxAmount *float64
	if app.rootCmd.Flags().Changed("min-amount") {
		v, _ := app.rootCmd.Flags().GetFloat64("min-amount")
		minAmount = &v
	}
	if app.rootCmd.Flags().Changed("max-amount") {
		v, _ := app.rootCmd.Flags().GetFloat64("max-amount")
		maxAmount = &v
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		InputFile:    inputFile,
		Delimiter:    delimiter,
		Columns:      columns,
		Region:       region,
		MinAmount:    minAmount,
		MaxAmount:    maxAmount,
		TopN:         topN,
		LowThreshold: lowThreshold,
		CatalogURL:   catalogURL,
		SkipEnrich:   skipEnrich,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o pipeline
	ctx := context.Background()
	return app.pipelineUseCase.RunPipeline(ctx, cliArgs)
}

// SetPipelineUseCase sets the pipeline use case for the CLI app.
func (app *CLIApp) SetPipelineUseCase(useCase *usecase.PipelineUseCase) {
	app.pipelineUseCase = useCase
}
