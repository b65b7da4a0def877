package service

import (
	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// FilterSpec is an optional predicate over validated records. Nil fields are
// no-ops; specified constraints combine with logical AND. Amount bounds are
// inclusive.
type FilterSpec struct {
	Region    *string
	MinAmount *float64
	MaxAmount *float64
}

// IsZero reports whether no constraint is specified.
func (s FilterSpec) IsZero() bool {
	return s.Region == nil && s.MinAmount == nil && s.MaxAmount == nil
}

// Matches reports whether one transaction satisfies every specified
// constraint.
func (s FilterSpec) Matches(t entity.Transaction) bool {
	if s.Region != nil && t.Region != *s.Region {
		return false
	}
	if s.MinAmount != nil && t.Amount < *s.MinAmount {
		return false
	}
	if s.MaxAmount != nil && t.Amount > *s.MaxAmount {
		return false
	}
	return true
}

// ApplyFilter returns the subset of transactions matching the spec. An empty
// result is a valid outcome, not an error. Filtering is idempotent.
func ApplyFilter(transactions []entity.Transaction, spec FilterSpec) []entity.Transaction {
	if spec.IsZero() {
		return transactions
	}
	filtered := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if spec.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
