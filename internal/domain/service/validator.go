package service

import (
	"strings"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// Validate applies every business rule to a transaction and returns the full
// list of violations. It is pure: the same record always yields the same
// outcome, and no rule short-circuits the others.
func Validate(t entity.Transaction) entity.Validity {
	var violations []string

	if t.Quantity <= 0 {
		violations = append(violations, "quantity must be greater than zero")
	}
	if t.UnitPrice <= 0 {
		violations = append(violations, "unit price must be greater than zero")
	}

	if t.TransactionID == "" {
		violations = append(violations, "transaction id is required")
	} else if !strings.HasPrefix(t.TransactionID, "T") {
		violations = append(violations, "transaction id must start with 'T'")
	}

	if t.ProductID == "" {
		violations = append(violations, "product id is required")
	} else if !strings.HasPrefix(t.ProductID, "P") {
		violations = append(violations, "product id must start with 'P'")
	}

	if t.CustomerID == "" {
		violations = append(violations, "customer id is required")
	} else if !strings.HasPrefix(t.CustomerID, "C") {
		violations = append(violations, "customer id must start with 'C'")
	}

	if t.Region == "" {
		violations = append(violations, "region is required")
	}
	if t.Date.IsZero() {
		violations = append(violations, "date is required")
	}

	if len(violations) > 0 {
		return entity.Validity{Status: entity.ValidityInvalid, Violations: violations}
	}
	return entity.Validity{Status: entity.ValidityValid}
}

// Classify stamps every transaction with its validity and partitions the set.
// No record is ever discarded: len(valid)+len(invalid) always equals the
// input length.
func Classify(transactions []entity.Transaction) (valid, invalid []entity.Transaction) {
	for _, t := range transactions {
		t.Validity = Validate(t)
		if t.Validity.Status == entity.ValidityValid {
			valid = append(valid, t)
		} else {
			invalid = append(invalid, t)
		}
	}
	return valid, invalid
}
