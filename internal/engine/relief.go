package engine

import (
	"fmt"
	"math"
	"strings"

	"taxara/internal/domain"
)

// Finding types emitted by the scanner.
const (
	FindingRentRelief        = "Rent Relief"
	FindingPensionRelief     = "Pension Relief"
	FindingRnDDeduction      = "R&D Deduction"
	FindingCapitalAllowances = "Capital Allowances"
)

// Finding is an unclaimed relief or optimization opportunity.
type Finding struct {
	Type              string  `json:"type"`
	PotentialAmount   float64 `json:"potential_amount"`
	RecommendedAction string  `json:"recommended_action"`
	Impact            string  `json:"impact"`
}

// rndKeywords mark transactions that indicate existing R&D activity.
var rndKeywords = []string{"r&d", "research", "development", "prototype", "innovation"}

// ReliefScanner inspects a tenant profile and transaction history for
// unclaimed statutory reliefs. Read-only; findings are emitted in insertion
// order and an empty result is a normal outcome.
type ReliefScanner struct {
	rates *RateTable
}

// NewReliefScanner creates a scanner bound to a rate-table snapshot.
func NewReliefScanner(rates *RateTable) *ReliefScanner {
	return &ReliefScanner{rates: rates}
}

// Scan returns the findings for a tenant.
func (s *ReliefScanner) Scan(profile *domain.TenantProfile, transactions []domain.TransactionRecord) []Finding {
	if profile == nil {
		return nil
	}
	if profile.AccountType == domain.AccountBusiness {
		return s.scanBusiness(profile, transactions)
	}
	return s.scanPersonal(profile)
}

func (s *ReliefScanner) scanPersonal(profile *domain.TenantProfile) []Finding {
	var findings []Finding
	income := sanitize(profile.AnnualIncome)

	if sanitize(profile.RentPaid) == 0 {
		potential := math.Min(income*s.rates.RentReliefRate, s.rates.RentReliefCap)
		findings = append(findings, Finding{
			Type:              FindingRentRelief,
			PotentialAmount:   potential,
			RecommendedAction: "Record the annual rent you pay on your profile",
			Impact:            fmt.Sprintf("Up to %.2f could be deducted from chargeable income", potential),
		})
	}

	if sanitize(profile.PensionContribution) == 0 {
		potential := income * s.rates.PensionSuggestedRate
		findings = append(findings, Finding{
			Type:              FindingPensionRelief,
			PotentialAmount:   potential,
			RecommendedAction: "Enrol in a registered pension scheme",
			Impact:            fmt.Sprintf("Contributions of %.2f per year would be fully relieved", potential),
		})
	}

	return findings
}

func (s *ReliefScanner) scanBusiness(profile *domain.TenantProfile, transactions []domain.TransactionRecord) []Finding {
	var findings []Finding
	turnover := sanitize(profile.TurnoverBand)

	if turnover > s.rates.RnDActivityFloor && !hasRnDActivity(transactions) {
		potential := turnover * s.rates.RnDDeductionRate
		findings = append(findings, Finding{
			Type:              FindingRnDDeduction,
			PotentialAmount:   potential,
			RecommendedAction: "Document qualifying research and development spending",
			Impact:            fmt.Sprintf("An R&D deduction of up to %.2f may be available", potential),
		})
	}

	var allowances float64
	for i := range transactions {
		t := &transactions[i]
		if t.Type == domain.TransactionExpense && t.IsCapitalAsset {
			allowances += sanitize(t.Amount) * s.rates.AllowanceRate(t.AssetClass)
		}
	}
	if allowances > 0 {
		findings = append(findings, Finding{
			Type:              FindingCapitalAllowances,
			PotentialAmount:   allowances,
			RecommendedAction: "Claim annual capital allowances on registered assets",
			Impact:            fmt.Sprintf("%.2f of allowances can offset assessable profit this period", allowances),
		})
	}

	return findings
}

func hasRnDActivity(transactions []domain.TransactionRecord) bool {
	for i := range transactions {
		haystack := strings.ToLower(transactions[i].CategoryName + " " + transactions[i].Description)
		for _, keyword := range rndKeywords {
			if strings.Contains(haystack, keyword) {
				return true
			}
		}
	}
	return false
}
