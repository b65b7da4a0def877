package main

import (
	"fmt"
	"os"

	"github.com/diillson/sales-analytics-go/internal/adapter/driven/catalog"
	"github.com/diillson/sales-analytics-go/internal/adapter/driven/config"
	"github.com/diillson/sales-analytics-go/internal/adapter/driven/export"
	"github.com/diillson/sales-analytics-go/internal/adapter/driven/salesfile"
	"github.com/diillson/sales-analytics-go/internal/adapter/driving/cli"
	"github.com/diillson/sales-analytics-go/internal/application/usecase"
	"github.com/diillson/sales-analytics-go/pkg/console"
	"github.com/diillson/sales-analytics-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	salesRepo := salesfile.NewSalesDataRepository()
	catalogRepo := catalog.NewCatalogRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	pipelineUseCase := usecase.NewPipelineUseCase(
		salesRepo,
		catalogRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetPipelineUseCase(pipelineUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
