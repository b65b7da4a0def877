package entity

import "time"

// ValidityStatus classifies a transaction after validation.
type ValidityStatus string

const (
	ValidityUnchecked ValidityStatus = "unchecked"
	ValidityValid     ValidityStatus = "valid"
	ValidityInvalid   ValidityStatus = "invalid"
)

// Validity is the validation stamp on a transaction. Once assigned it is
// never changed by downstream stages.
type Validity struct {
	Status     ValidityStatus `json:"status"`
	Violations []string       `json:"violations,omitempty"`
}

// Transaction represents one parsed sales record. Amount is always derived
// from Quantity*UnitPrice at parse time, never read from the input.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name,omitempty"`
	CustomerID    string    `json:"customer_id"`
	Region        string    `json:"region"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Validity      Validity  `json:"validity"`
}

// ParseFailure records a malformed input line. Failures never abort the
// parse run; they are accumulated alongside the successes.
type ParseFailure struct {
	LineNumber int    `json:"line_number"`
	Line       string `json:"line"`
	Reason     string `json:"reason"`
}

// ParseResult holds the complete outcome of one parse run.
type ParseResult struct {
	Transactions []Transaction  `json:"transactions"`
	Failures     []ParseFailure `json:"failures"`
	BlankLines   int            `json:"blank_lines"`
	HeaderLines  int            `json:"header_lines"`
}

// DataLines returns the number of non-blank, non-header lines seen. It always
// equals len(Transactions)+len(Failures).
func (r ParseResult) DataLines() int {
	return len(r.Transactions) + len(r.Failures)
}
