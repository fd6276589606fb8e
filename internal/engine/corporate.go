package engine

import (
	"math"

	"taxara/internal/domain"
)

// Classification status labels surfaced to the caller. The professional
// services label is distinct so the UI can explain why an otherwise small
// entity is taxable.
const (
	StatusExemptSmall        = "Exempt (Small Company)"
	StatusLiableProfessional = "Liable (Professional Service)"
	StatusLiableTurnover     = "Liable (Large Company)"
	StatusLiableAssets       = "Liable (Asset Threshold)"
)

// CorporateInput describes a business entity for CIT computation.
type CorporateInput struct {
	Turnover         float64
	AssessableProfit float64
	Sector           domain.Sector
	TotalAssets      float64
}

// Classification is the small/large determination with its reason.
type Classification struct {
	IsLarge bool   `json:"is_large"`
	Status  string `json:"status"`
}

// CorporateResult is the outcome of a corporate income tax computation.
type CorporateResult struct {
	Classification     Classification `json:"classification"`
	AssessableProfit   float64        `json:"assessable_profit"`
	UtilizedAllowance  float64        `json:"utilized_allowance"`
	RestrictionApplied bool           `json:"restriction_applied"`
	TotalProfit        float64        `json:"total_profit"`
	CIT                float64        `json:"cit"`
	DevelopmentLevy    float64        `json:"development_levy"`
}

// CorporateCalculator computes corporate income tax, the development levy,
// the capital-allowance restriction, the minimum-tax floor check, and the
// investment tax credit for a single entity.
type CorporateCalculator struct {
	rates *RateTable
	in    CorporateInput
}

// NewCorporateCalculator creates a calculator for one entity. Numeric inputs
// are sanitized; an unknown sector falls back to general.
func NewCorporateCalculator(rates *RateTable, in CorporateInput) *CorporateCalculator {
	in.Turnover = sanitize(in.Turnover)
	in.AssessableProfit = sanitize(in.AssessableProfit)
	in.TotalAssets = sanitize(in.TotalAssets)
	in.Sector = domain.ParseSector(string(in.Sector))
	return &CorporateCalculator{rates: rates, in: in}
}

// Classify determines whether the entity is a large (liable) company.
// Professional-services entities never qualify for the small-company
// exemption regardless of size.
func (c *CorporateCalculator) Classify() Classification {
	switch {
	case c.in.Sector == domain.SectorProfessionalServices:
		return Classification{IsLarge: true, Status: StatusLiableProfessional}
	case c.in.Turnover > c.rates.SmallCompanyThreshold:
		return Classification{IsLarge: true, Status: StatusLiableTurnover}
	case c.in.TotalAssets > c.rates.AssetThreshold:
		return Classification{IsLarge: true, Status: StatusLiableAssets}
	default:
		return Classification{IsLarge: false, Status: StatusExemptSmall}
	}
}

// CalculateCIT computes CIT after offsetting available capital allowances.
// The development levy is charged on assessable profit before and
// independent of any offsetting, so a fully offset company still owes it.
// Sectors outside the exempt list may only utilize allowances up to
// two-thirds of assessable profit; exempt sectors offset without limit but
// never below zero profit. Excess allowance is not usable in the period.
func (c *CorporateCalculator) CalculateCIT(availableCapitalAllowances float64) CorporateResult {
	cls := c.Classify()
	res := CorporateResult{
		Classification:   cls,
		AssessableProfit: c.in.AssessableProfit,
		TotalProfit:      c.in.AssessableProfit,
	}
	if !cls.IsLarge {
		return res
	}

	res.DevelopmentLevy = c.in.AssessableProfit * c.rates.DevLevyRate

	allowance := sanitize(availableCapitalAllowances)
	if !c.rates.sectorIn(c.rates.RestrictionExemptSectors, c.in.Sector) {
		restricted := c.in.AssessableProfit * c.rates.AllowanceRestriction
		if allowance > restricted {
			allowance = restricted
			res.RestrictionApplied = true
		}
	}
	if allowance > c.in.AssessableProfit {
		allowance = c.in.AssessableProfit
	}

	res.UtilizedAllowance = allowance
	res.TotalProfit = math.Max(0, c.in.AssessableProfit-allowance)
	res.CIT = res.TotalProfit * c.rates.CITRate
	return res
}

// CheckMinimumTax reports whether a minimum-tax top-up is required: the
// effective rate (total tax paid over net income) fell below the statutory
// floor. Only evaluated for giant enterprises; zero net income never
// triggers the floor.
func (c *CorporateCalculator) CheckMinimumTax(totalTaxPaid, netIncome float64) bool {
	if c.in.Turnover < c.rates.GiantTurnoverThreshold {
		return false
	}
	net := sanitize(netIncome)
	if net == 0 {
		return false
	}
	return sanitize(totalTaxPaid)/net < c.rates.MinimumEffectiveRate
}

// CalculateInvestmentCredit returns the flat-rate credit on qualifying
// capital expenditure for designated strategic sectors, zero otherwise.
func (c *CorporateCalculator) CalculateInvestmentCredit(qualifyingCapex float64) float64 {
	if !c.rates.sectorIn(c.rates.StrategicSectors, c.in.Sector) {
		return 0
	}
	return sanitize(qualifyingCapex) * c.rates.InvestmentCreditRate
}
