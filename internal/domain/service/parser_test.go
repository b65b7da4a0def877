package service

import (
	"testing"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("|", DefaultColumns())
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	return p
}

func TestParser_ParseLine(t *testing.T) {
	p := mustParser(t)

	tests := []struct {
		name     string
		line     string
		wantKind LineKind
	}{
		{
			name:     "valid transaction",
			line:     "T1|P1|C1|North|2|100.00|2024-01-01",
			wantKind: LineTransaction,
		},
		{
			name:     "blank line",
			line:     "   ",
			wantKind: LineBlank,
		},
		{
			name:     "header line",
			line:     "transaction_id|product_id|customer_id|region|quantity|unit_price|date",
			wantKind: LineHeader,
		},
		{
			name:     "too few fields",
			line:     "T1|P1|C1|North|2|100.00",
			wantKind: LineFailure,
		},
		{
			name:     "too many fields",
			line:     "T1|P1|C1|North|2|100.00|2024-01-01|extra",
			wantKind: LineFailure,
		},
		{
			name:     "non numeric quantity",
			line:     "T1|P1|C1|North|two|100.00|2024-01-01",
			wantKind: LineFailure,
		},
		{
			name:     "non numeric unit price",
			line:     "T1|P1|C1|North|2|abc|2024-01-01",
			wantKind: LineFailure,
		},
		{
			name:     "unparseable date",
			line:     "T1|P1|C1|North|2|100.00|not-a-date",
			wantKind: LineFailure,
		},
		{
			name:     "ambiguous slash date rejected",
			line:     "T1|P1|C1|North|2|100.00|02/03/2024",
			wantKind: LineFailure,
		},
		{
			name:     "year first slash date accepted",
			line:     "T1|P1|C1|North|2|100.00|2024/03/02",
			wantKind: LineTransaction,
		},
		{
			name:     "day month name year accepted",
			line:     "T1|P1|C1|North|2|100.00|02-Mar-2024",
			wantKind: LineTransaction,
		},
		{
			name:     "thousands separators stripped",
			line:     "T1|P1|C1|North|1,000|1,234.56|2024-01-01",
			wantKind: LineTransaction,
		},
		{
			name:     "negative quantity still parses",
			line:     "T1|P1|C1|North|-2|100.00|2024-01-01",
			wantKind: LineTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := p.ParseLine(tt.line, 1)
			if outcome.Kind != tt.wantKind {
				t.Errorf("ParseLine(%q) kind = %v, want %v", tt.line, outcome.Kind, tt.wantKind)
			}
		})
	}
}

func TestParser_ParseLine_Fields(t *testing.T) {
	p := mustParser(t)

	outcome := p.ParseLine(" T1 | P1 | C1 | North | 2 | 100.00 | 2024-01-01 ", 3)
	if outcome.Kind != LineTransaction {
		t.Fatalf("expected transaction, got kind %v", outcome.Kind)
	}

	txn := outcome.Transaction
	if txn.TransactionID != "T1" || txn.ProductID != "P1" || txn.CustomerID != "C1" {
		t.Errorf("unexpected identifiers: %+v", txn)
	}
	if txn.Region != "North" {
		t.Errorf("Region = %q, want North", txn.Region)
	}
	if txn.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", txn.Quantity)
	}
	if txn.UnitPrice != 100.00 {
		t.Errorf("UnitPrice = %v, want 100.00", txn.UnitPrice)
	}
	if txn.Amount != 200.00 {
		t.Errorf("Amount = %v, want 200.00", txn.Amount)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !txn.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", txn.Date, want)
	}
	if txn.Validity.Status != entity.ValidityUnchecked {
		t.Errorf("Validity.Status = %q, want unchecked", txn.Validity.Status)
	}
}

func TestParser_ParseLine_ThousandsSeparators(t *testing.T) {
	p := mustParser(t)

	outcome := p.ParseLine("T1|P1|C1|North|1,000|1,234.56|2024-01-01", 1)
	if outcome.Kind != LineTransaction {
		t.Fatalf("expected transaction, got kind %v", outcome.Kind)
	}
	if outcome.Transaction.Quantity != 1000 {
		t.Errorf("Quantity = %d, want 1000", outcome.Transaction.Quantity)
	}
	if outcome.Transaction.UnitPrice != 1234.56 {
		t.Errorf("UnitPrice = %v, want 1234.56", outcome.Transaction.UnitPrice)
	}
}

func TestParser_Parse_Accounting(t *testing.T) {
	p := mustParser(t)

	lines := []string{
		"transaction_id|product_id|customer_id|region|quantity|unit_price|date",
		"T1|P1|C1|North|2|100.00|2024-01-01",
		"",
		"T2|P2|C2|South|not-a-number|50.00|2024-01-02",
		"T3|P3|C3|East|1|75.00|2024-01-03",
	}

	result := p.Parse(lines)

	if len(result.Transactions) != 2 {
		t.Errorf("Transactions = %d, want 2", len(result.Transactions))
	}
	if len(result.Failures) != 1 {
		t.Errorf("Failures = %d, want 1", len(result.Failures))
	}
	if result.BlankLines != 1 {
		t.Errorf("BlankLines = %d, want 1", result.BlankLines)
	}
	if result.HeaderLines != 1 {
		t.Errorf("HeaderLines = %d, want 1", result.HeaderLines)
	}
	if result.DataLines() != len(result.Transactions)+len(result.Failures) {
		t.Errorf("DataLines() = %d, want %d", result.DataLines(), len(result.Transactions)+len(result.Failures))
	}

	// Line numbers refer to the original input, 1-based.
	if result.Failures[0].LineNumber != 4 {
		t.Errorf("failure line number = %d, want 4", result.Failures[0].LineNumber)
	}
}

func TestParser_CustomColumnsAndDelimiter(t *testing.T) {
	columns := ColumnsFromNames([]string{
		"date", "transaction_id", "product_id", "product_name",
		"customer_id", "region", "quantity", "unit_price",
	})
	p, err := NewParser(";", columns)
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}

	outcome := p.ParseLine("2024-01-01;T1;P1;Widget;C1;North;2;100.00", 1)
	if outcome.Kind != LineTransaction {
		t.Fatalf("expected transaction, got kind %v", outcome.Kind)
	}
	if outcome.Transaction.ProductName != "Widget" {
		t.Errorf("ProductName = %q, want Widget", outcome.Transaction.ProductName)
	}
	if outcome.Transaction.Amount != 200.00 {
		t.Errorf("Amount = %v, want 200.00", outcome.Transaction.Amount)
	}
}

func TestNewParser_RejectsBadColumnOrders(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
	}{
		{
			name:    "unknown column",
			columns: append(DefaultColumns(), Column("mystery")),
		},
		{
			name: "duplicate column",
			columns: []Column{
				ColumnTransactionID, ColumnTransactionID, ColumnProductID,
				ColumnCustomerID, ColumnRegion, ColumnQuantity,
				ColumnUnitPrice, ColumnDate,
			},
		},
		{
			name: "missing required column",
			columns: []Column{
				ColumnTransactionID, ColumnProductID, ColumnCustomerID,
				ColumnRegion, ColumnQuantity, ColumnUnitPrice,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewParser("|", tt.columns); err == nil {
				t.Errorf("NewParser accepted column order %v", tt.columns)
			}
		})
	}
}
