package salesfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/diillson/sales-analytics-go/internal/domain/repository"
)

// SalesDataRepositoryImpl implementa o SalesDataRepository sobre arquivos
// locais.
type SalesDataRepositoryImpl struct{}

// NewSalesDataRepository cria uma nova implementação do SalesDataRepository.
func NewSalesDataRepository() repository.SalesDataRepository {
	return &SalesDataRepositoryImpl{}
}

// ReadLines reads the sales data file and returns its decoded lines. Files
// are expected to be UTF-8; exports from older tooling arrive as Windows-1252
// or Latin-1, so invalid UTF-8 falls back to those decoders. Blank lines and
// the header line are returned as-is; classifying them is the parser's job.
func (r *SalesDataRepositoryImpl) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sales data file: %w", err)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.Windows1252.NewDecoder().Bytes(data)
		if decErr != nil {
			decoded, decErr = charmap.ISO8859_1.NewDecoder().Bytes(data)
			if decErr != nil {
				return nil, fmt.Errorf("decoding sales data file %s: %w", path, decErr)
			}
		}
		data = decoded
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
