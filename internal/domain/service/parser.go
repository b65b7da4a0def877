package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// Column identifies one field position in the delimited input.
type Column string

const (
	ColumnTransactionID Column = "transaction_id"
	ColumnProductID     Column = "product_id"
	ColumnProductName   Column = "product_name"
	ColumnCustomerID    Column = "customer_id"
	ColumnRegion        Column = "region"
	ColumnQuantity      Column = "quantity"
	ColumnUnitPrice     Column = "unit_price"
	ColumnDate          Column = "date"
)

// DefaultColumns returns the standard column order of the sales feed.
func DefaultColumns() []Column {
	return []Column{
		ColumnTransactionID,
		ColumnProductID,
		ColumnCustomerID,
		ColumnRegion,
		ColumnQuantity,
		ColumnUnitPrice,
		ColumnDate,
	}
}

// DefaultColumnNames returns the standard column order as plain strings, for
// flag defaults and config files.
func DefaultColumnNames() []string {
	columns := DefaultColumns()
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = string(col)
	}
	return names
}

// ColumnsFromNames converts user-supplied column names into Columns. Unknown
// names are passed through and rejected by NewParser.
func ColumnsFromNames(names []string) []Column {
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column(strings.ToLower(strings.TrimSpace(name)))
	}
	return columns
}

// LineKind tags the outcome of parsing a single line.
type LineKind int

const (
	LineTransaction LineKind = iota
	LineFailure
	LineBlank
	LineHeader
)

// LineOutcome is the tagged result of parsing one raw line. Exactly one of
// Transaction or Failure is meaningful, depending on Kind.
type LineOutcome struct {
	Kind        LineKind
	Transaction entity.Transaction
	Failure     entity.ParseFailure
}

// Parser turns raw delimited lines into transactions. It never returns an
// error for a data line: every malformed line becomes a ParseFailure.
type Parser struct {
	delimiter string
	columns   []Column
	positions map[Column]int
}

// NewParser creates a parser for the given delimiter and column order. The
// column list must contain every required column exactly once; product_name
// is the only optional column.
func NewParser(delimiter string, columns []Column) (*Parser, error) {
	if delimiter == "" {
		delimiter = "|"
	}
	if len(columns) == 0 {
		columns = DefaultColumns()
	}

	known := map[Column]bool{
		ColumnTransactionID: true,
		ColumnProductID:     true,
		ColumnProductName:   true,
		ColumnCustomerID:    true,
		ColumnRegion:        true,
		ColumnQuantity:      true,
		ColumnUnitPrice:     true,
		ColumnDate:          true,
	}

	positions := make(map[Column]int, len(columns))
	for i, col := range columns {
		if !known[col] {
			return nil, fmt.Errorf("unknown column %q in column order", col)
		}
		if _, dup := positions[col]; dup {
			return nil, fmt.Errorf("column %q appears more than once", col)
		}
		positions[col] = i
	}

	for _, required := range DefaultColumns() {
		if _, ok := positions[required]; !ok {
			return nil, fmt.Errorf("column order is missing required column %q", required)
		}
	}

	return &Parser{delimiter: delimiter, columns: columns, positions: positions}, nil
}

// Parse processes all lines and accumulates the run totals. Line numbers are
// 1-based and refer to the original input.
func (p *Parser) Parse(lines []string) entity.ParseResult {
	var result entity.ParseResult
	for i, line := range lines {
		outcome := p.ParseLine(line, i+1)
		switch outcome.Kind {
		case LineTransaction:
			result.Transactions = append(result.Transactions, outcome.Transaction)
		case LineFailure:
			result.Failures = append(result.Failures, outcome.Failure)
		case LineBlank:
			result.BlankLines++
		case LineHeader:
			result.HeaderLines++
		}
	}
	return result
}

// ParseLine parses a single raw line into a tagged outcome.
func (p *Parser) ParseLine(line string, lineNumber int) LineOutcome {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineOutcome{Kind: LineBlank}
	}

	fields := strings.Split(trimmed, p.delimiter)
	if len(fields) != len(p.columns) {
		return p.failure(lineNumber, trimmed,
			fmt.Sprintf("expected %d fields, got %d", len(p.columns), len(fields)))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if p.isHeader(fields) {
		return LineOutcome{Kind: LineHeader}
	}

	quantity, err := parseQuantity(fields[p.positions[ColumnQuantity]])
	if err != nil {
		return p.failure(lineNumber, trimmed, fmt.Sprintf("invalid quantity: %s", err))
	}

	unitPrice, err := parseAmount(fields[p.positions[ColumnUnitPrice]])
	if err != nil {
		return p.failure(lineNumber, trimmed, fmt.Sprintf("invalid unit price: %s", err))
	}

	date, err := parseDate(fields[p.positions[ColumnDate]])
	if err != nil {
		return p.failure(lineNumber, trimmed, fmt.Sprintf("invalid date: %s", err))
	}

	txn := entity.Transaction{
		TransactionID: fields[p.positions[ColumnTransactionID]],
		ProductID:     fields[p.positions[ColumnProductID]],
		CustomerID:    fields[p.positions[ColumnCustomerID]],
		Region:        fields[p.positions[ColumnRegion]],
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Date:          date,
		// The amount is authoritative and always recomputed; any total carried
		// in the raw feed is ignored.
		Amount:   float64(quantity) * unitPrice,
		Validity: entity.Validity{Status: entity.ValidityUnchecked},
	}
	if pos, ok := p.positions[ColumnProductName]; ok {
		txn.ProductName = fields[pos]
	}

	return LineOutcome{Kind: LineTransaction, Transaction: txn}
}

func (p *Parser) failure(lineNumber int, line, reason string) LineOutcome {
	return LineOutcome{
		Kind: LineFailure,
		Failure: entity.ParseFailure{
			LineNumber: lineNumber,
			Line:       line,
			Reason:     reason,
		},
	}
}

// isHeader reports whether a well-formed line is the header row. The header
// is recognized by its numeric columns holding labels instead of numbers.
func (p *Parser) isHeader(fields []string) bool {
	return isAlphabetic(fields[p.positions[ColumnQuantity]]) &&
		isAlphabetic(fields[p.positions[ColumnUnitPrice]])
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '_' && r != ' ' {
			return false
		}
	}
	return true
}

// cleanNumber strips thousands separators ("1,234.56" -> "1234.56").
func cleanNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

func parseQuantity(raw string) (int, error) {
	cleaned := cleanNumber(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty value")
	}
	quantity, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	return quantity, nil
}

func parseAmount(raw string) (float64, error) {
	cleaned := cleanNumber(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty value")
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return amount, nil
}

var (
	// Dates like 02/03/2024 cannot be told apart between day-first and
	// month-first conventions; they are rejected rather than guessed.
	ambiguousDateRegex = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"02-Jan-2006",
		"Jan 2, 2006",
	}
)

func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}
	if ambiguousDateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%q is ambiguous (day-first vs month-first)", raw)
	}
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q does not match any supported format", raw)
}
