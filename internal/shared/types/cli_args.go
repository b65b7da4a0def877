package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	InputFile    string
	Delimiter    string
	Columns      []string
	Region       string
	MinAmount    *float64
	MaxAmount    *float64
	TopN         int
	LowThreshold float64
	CatalogURL   string
	SkipEnrich   bool
	ReportName   string
	ReportType   []string
	Dir          string
}
