package engine

import (
	"fmt"
	"strings"

	"taxara/internal/domain"
)

// ExpenseResult is the deductibility verdict for a single ledger record.
// Status is derived: Approved iff IsDeductible.
type ExpenseResult struct {
	IsDeductible bool                 `json:"is_deductible"`
	Issues       []string             `json:"issues"`
	Status       domain.ExpenseStatus `json:"status"`
}

// personalSpendMarkers trigger a non-blocking audit-risk flag.
var personalSpendMarkers = []string{"gift", "party", "personal", "vacation", "family"}

// ExpenseValidator applies the deduction-validity rule and heuristic risk
// flags to individual ledger records.
type ExpenseValidator struct{}

// NewExpenseValidator creates an ExpenseValidator.
func NewExpenseValidator() *ExpenseValidator {
	return &ExpenseValidator{}
}

// Validate checks a record. Income records are always valid. For expenses,
// missing VAT evidence disallows the deduction unconditionally, before any
// other attribute is considered. Personal-spend markers and capital-asset
// notes are advisory only and never change deductibility.
func (v *ExpenseValidator) Validate(record *domain.TransactionRecord) ExpenseResult {
	res := ExpenseResult{IsDeductible: true}
	if record.Type != domain.TransactionExpense {
		res.Status = domain.ExpenseApproved
		return res
	}

	if !record.HasVatEvidence {
		res.IsDeductible = false
		res.Issues = append(res.Issues, "no VAT evidence attached; deduction disallowed")
	}

	haystack := strings.ToLower(record.Description + " " + record.CategoryName)
	for _, marker := range personalSpendMarkers {
		if strings.Contains(haystack, marker) {
			res.Issues = append(res.Issues,
				fmt.Sprintf("mentions %q; potential audit risk for personal spending", marker))
		}
	}

	if record.IsCapitalAsset {
		res.Issues = append(res.Issues,
			"capital asset: relieved through capital allowances, not deducted as an expense")
	}

	if res.IsDeductible {
		res.Status = domain.ExpenseApproved
	} else {
		res.Status = domain.ExpenseDisallowed
	}
	return res
}
