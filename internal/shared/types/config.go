package types

// Config represents the application configuration that can be loaded from a
// TOML, YAML, or JSON file. Zero values mean "not set"; command-line flags
// take precedence over the file.
type Config struct {
	InputFile    string   `json:"input_file" yaml:"input_file" toml:"input_file"`
	Delimiter    string   `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	Columns      []string `json:"columns" yaml:"columns" toml:"columns"`
	Region       string   `json:"region" yaml:"region" toml:"region"`
	MinAmount    *float64 `json:"min_amount" yaml:"min_amount" toml:"min_amount"`
	MaxAmount    *float64 `json:"max_amount" yaml:"max_amount" toml:"max_amount"`
	TopN         int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	LowThreshold *float64 `json:"low_performer_threshold" yaml:"low_performer_threshold" toml:"low_performer_threshold"`
	CatalogURL   string   `json:"catalog_url" yaml:"catalog_url" toml:"catalog_url"`
	SkipEnrich   bool     `json:"skip_enrich" yaml:"skip_enrich" toml:"skip_enrich"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
}
