package repository

// SalesDataRepository defines the interface for reading raw sales data.
// Implementations own file access and text-encoding concerns; the pipeline
// receives already-decoded lines.
type SalesDataRepository interface {
	ReadLines(path string) ([]string, error)
}
