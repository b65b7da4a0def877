package cli

import (
	"fmt"

	"github.com/diillson/sales-analytics-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$   /$$$$$$  /$$       /$$$$$$$$  /$$$$$$
         /$$__  $$ /$$__  $$| $$      | $$_____/ /$$__  $$
        | $$  \__/| $$  \ $$| $$      | $$      | $$  \__/
        |  $$$$$$ | $$$$$$$$| $$      | $$$$$   |  $$$$$$
         \____  $$| $$__  $$| $$      | $$__/    \____  $$
         /$$  \ $$| $$  | $$| $$      | $$       /$$  \ $$
        |  $$$$$$/| $$  | $$| $$$$$$$$| $$$$$$$$|  $$$$$$/
         \______/ |__/  |__/|________/|________/ \______/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Sales Analytics CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
