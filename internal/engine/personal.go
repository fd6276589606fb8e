package engine

import "math"

// PersonalResult is the outcome of a personal income tax computation.
type PersonalResult struct {
	GrossIncome      float64 `json:"gross_income"`
	TotalRelief      float64 `json:"total_relief"`
	RentRelief       float64 `json:"rent_relief"`
	ChargeableIncome float64 `json:"chargeable_income"`
	TaxPayable       float64 `json:"tax_payable"`
	EffectiveRate    float64 `json:"effective_rate"`
}

// PersonalCalculator computes personal income tax under the current
// multi-bracket regime and the legacy regime. The two regimes are computed
// independently and never mixed.
type PersonalCalculator struct {
	rates *RateTable
}

// NewPersonalCalculator creates a calculator bound to a rate-table snapshot.
func NewPersonalCalculator(rates *RateTable) *PersonalCalculator {
	return &PersonalCalculator{rates: rates}
}

// Compute calculates tax payable under the current regime. Rent relief is
// 20% of rent paid, capped; pension contributions are relieved in full.
// Negative or non-finite inputs are treated as zero.
func (c *PersonalCalculator) Compute(grossIncome, pensionContribution, rentPaid float64) PersonalResult {
	gross := sanitize(grossIncome)
	pension := sanitize(pensionContribution)
	rent := sanitize(rentPaid)

	rentRelief := math.Min(rent*c.rates.RentReliefRate, c.rates.RentReliefCap)
	totalRelief := pension + rentRelief
	chargeable := math.Max(0, gross-totalRelief)
	tax := taxAcrossBrackets(chargeable, c.rates.PersonalBrackets)

	return PersonalResult{
		GrossIncome:      gross,
		TotalRelief:      totalRelief,
		RentRelief:       rentRelief,
		ChargeableIncome: chargeable,
		TaxPayable:       tax,
		EffectiveRate:    effectiveRate(tax, gross),
	}
}

// ComputeLegacy calculates tax payable under the legacy regime: a
// consolidated allowance of max(flat minimum, 1% of gross) plus 20% of
// gross, plus pension, applied against the legacy bracket table.
func (c *PersonalCalculator) ComputeLegacy(grossIncome, pensionContribution float64) PersonalResult {
	gross := sanitize(grossIncome)
	pension := sanitize(pensionContribution)

	allowance := math.Max(c.rates.LegacyAllowanceFlat, gross*c.rates.LegacyAllowanceGrossPct) +
		gross*c.rates.LegacyAllowanceRate
	totalRelief := allowance + pension
	chargeable := math.Max(0, gross-totalRelief)
	tax := taxAcrossBrackets(chargeable, c.rates.LegacyBrackets)

	return PersonalResult{
		GrossIncome:      gross,
		TotalRelief:      totalRelief,
		ChargeableIncome: chargeable,
		TaxPayable:       tax,
		EffectiveRate:    effectiveRate(tax, gross),
	}
}

// taxAcrossBrackets walks an ordered bracket schedule, each bracket
// consuming chargeable income up to its width at its marginal rate, and
// short-circuits once the remainder is exhausted.
func taxAcrossBrackets(chargeable float64, brackets []Bracket) float64 {
	remaining := chargeable
	var tax float64
	for _, b := range brackets {
		if remaining <= 0 {
			break
		}
		portion := remaining
		if portion > b.Width {
			portion = b.Width
		}
		tax += portion * b.Rate
		remaining -= portion
	}
	return tax
}

// effectiveRate is tax over gross, defined as 0 at zero income.
func effectiveRate(tax, gross float64) float64 {
	if gross <= 0 {
		return 0
	}
	return tax / gross
}
