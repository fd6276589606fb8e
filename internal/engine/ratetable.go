// Package engine implements the tax computation and compliance engine: the
// personal and corporate calculators, VAT classification, threshold
// monitoring, relief scanning, and expense validation. Every component is a
// pure function of its inputs and an immutable RateTable snapshot; the
// engine performs no I/O and holds no state between invocations.
package engine

import (
	"math"

	"taxara/internal/domain"
)

// Bracket is one band of a progressive tax schedule. Width is the portion of
// chargeable income taxed at Rate; the final bracket is open-ended
// (Width = +Inf).
type Bracket struct {
	Width float64
	Rate  float64
}

// RateTable is an immutable snapshot of every statutory rate, threshold,
// cap, and sector list the engine consumes. Calculators are constructed
// from a snapshot and never observe later changes; updates produce a new
// table via WithOverrides.
type RateTable struct {
	Version int64

	// Personal income tax, current regime.
	PersonalBrackets []Bracket
	RentReliefRate   float64
	RentReliefCap    float64

	// Personal income tax, legacy regime (kept for side-by-side comparison).
	LegacyBrackets          []Bracket
	LegacyAllowanceFlat     float64
	LegacyAllowanceGrossPct float64
	LegacyAllowanceRate     float64

	// VAT.
	VatRate           float64
	VatMicroThreshold float64
	ZeroRatedKeywords []string

	// Corporate income tax.
	SmallCompanyThreshold float64
	AssetThreshold        float64
	CITRate               float64
	// CITRateMedium is the contested medium-band rate. The legacy rule
	// sources disagree (20%, 25%, and 30% all appear for the same band);
	// the value is carried as a configuration entry pending confirmation
	// and no computation depends on it until it is confirmed.
	CITRateMedium float64
	DevLevyRate   float64

	// Capital allowances.
	AllowanceRestriction     float64
	RestrictionExemptSectors []domain.Sector
	AllowanceRates           map[domain.AssetClass]float64
	BlendedAllowanceRate     float64

	// Minimum-tax floor, applicable to giant enterprises only.
	GiantTurnoverThreshold float64
	MinimumEffectiveRate   float64

	// Investment tax credit for strategic sectors.
	InvestmentCreditRate float64
	StrategicSectors     []domain.Sector

	// Threshold monitoring buffers.
	PersonalWarningBuffer float64
	BusinessWarningBuffer float64

	// Relief scanning.
	PensionSuggestedRate float64
	RnDActivityFloor     float64
	RnDDeductionRate     float64

	// Subscription pricing, delivered through the same configuration
	// channel as the tax values but unrelated to tax logic.
	PricingMonthly    float64
	PricingMonthlyPro float64
}

// DefaultRateTable returns the built-in statutory defaults.
func DefaultRateTable() *RateTable {
	return &RateTable{
		Version: 1,

		PersonalBrackets: []Bracket{
			{Width: 800_000, Rate: 0},
			{Width: 2_200_000, Rate: 0.15},
			{Width: 9_000_000, Rate: 0.18},
			{Width: 13_000_000, Rate: 0.21},
			{Width: 25_000_000, Rate: 0.23},
			{Width: math.Inf(1), Rate: 0.25},
		},
		RentReliefRate: 0.20,
		RentReliefCap:  500_000,

		LegacyBrackets: []Bracket{
			{Width: 300_000, Rate: 0.07},
			{Width: 300_000, Rate: 0.11},
			{Width: 500_000, Rate: 0.15},
			{Width: 500_000, Rate: 0.19},
			{Width: 1_600_000, Rate: 0.21},
			{Width: math.Inf(1), Rate: 0.24},
		},
		LegacyAllowanceFlat:     200_000,
		LegacyAllowanceGrossPct: 0.01,
		LegacyAllowanceRate:     0.20,

		VatRate:           0.075,
		VatMicroThreshold: 25_000_000,
		ZeroRatedKeywords: []string{
			"book", "medical", "pharmacy", "education", "foodstuff", "baby",
		},

		SmallCompanyThreshold: 50_000_000,
		AssetThreshold:        250_000_000,
		CITRate:               0.30,
		CITRateMedium:         0.30,
		DevLevyRate:           0.04,

		AllowanceRestriction: 2.0 / 3.0,
		RestrictionExemptSectors: []domain.Sector{
			domain.SectorManufacturing, domain.SectorAgriculture,
		},
		AllowanceRates: map[domain.AssetClass]float64{
			domain.AssetVehicle:   0.25,
			domain.AssetEquipment: 0.20,
			domain.AssetSoftware:  0.25,
			domain.AssetBuilding:  0.10,
		},
		BlendedAllowanceRate: 0.20,

		GiantTurnoverThreshold: 50_000_000_000,
		MinimumEffectiveRate:   0.15,

		InvestmentCreditRate: 0.05,
		StrategicSectors: []domain.Sector{
			domain.SectorGreenEnergy, domain.SectorICT,
		},

		PersonalWarningBuffer: 100_000,
		BusinessWarningBuffer: 10_000_000,

		PensionSuggestedRate: 0.08,
		RnDActivityFloor:     1_000_000,
		RnDDeductionRate:     0.05,

		PricingMonthly:    5_000,
		PricingMonthlyPro: 15_000,
	}
}

// Override keys accepted by WithOverrides. Keys outside this set are ignored
// when building a snapshot.
const (
	OverrideVatRate               = "vat_rate"
	OverrideVatMicroThreshold     = "vat_micro_threshold"
	OverrideSmallCompanyThreshold = "small_company_threshold"
	OverrideAssetThreshold        = "asset_threshold"
	OverrideCITRate               = "cit_rate"
	OverrideCITRateMedium         = "cit_rate_medium"
	OverrideDevLevyRate           = "dev_levy_rate"
	OverrideRentReliefCap         = "rent_relief_cap"
	OverrideRentReliefRate        = "rent_relief_rate"
	OverrideMinimumEffectiveRate  = "minimum_effective_rate"
	OverrideInvestmentCreditRate  = "investment_credit_rate"
	OverridePricingMonthly        = "pricing_monthly"
	OverridePricingMonthlyPro     = "pricing_monthly_pro"
)

// KnownOverrideKey reports whether key is a recognized rate-table override.
func KnownOverrideKey(key string) bool {
	switch key {
	case OverrideVatRate, OverrideVatMicroThreshold, OverrideSmallCompanyThreshold,
		OverrideAssetThreshold, OverrideCITRate, OverrideCITRateMedium,
		OverrideDevLevyRate, OverrideRentReliefCap, OverrideRentReliefRate,
		OverrideMinimumEffectiveRate, OverrideInvestmentCreditRate,
		OverridePricingMonthly, OverridePricingMonthlyPro:
		return true
	}
	return false
}

// WithOverrides returns a copy of the table with the given overrides
// applied and the version bumped. Unknown keys are ignored; the receiver is
// never mutated.
func (rt *RateTable) WithOverrides(overrides map[string]float64) *RateTable {
	next := *rt
	next.Version = rt.Version + 1

	for key, value := range overrides {
		v := sanitize(value)
		switch key {
		case OverrideVatRate:
			next.VatRate = v
		case OverrideVatMicroThreshold:
			next.VatMicroThreshold = v
		case OverrideSmallCompanyThreshold:
			next.SmallCompanyThreshold = v
		case OverrideAssetThreshold:
			next.AssetThreshold = v
		case OverrideCITRate:
			next.CITRate = v
		case OverrideCITRateMedium:
			next.CITRateMedium = v
		case OverrideDevLevyRate:
			next.DevLevyRate = v
		case OverrideRentReliefCap:
			next.RentReliefCap = v
		case OverrideRentReliefRate:
			next.RentReliefRate = v
		case OverrideMinimumEffectiveRate:
			next.MinimumEffectiveRate = v
		case OverrideInvestmentCreditRate:
			next.InvestmentCreditRate = v
		case OverridePricingMonthly:
			next.PricingMonthly = v
		case OverridePricingMonthlyPro:
			next.PricingMonthlyPro = v
		}
	}
	return &next
}

// ZeroBandCeiling returns the upper bound of the zero-rate first band of the
// current personal regime, or 0 if the schedule does not start with one.
func (rt *RateTable) ZeroBandCeiling() float64 {
	if len(rt.PersonalBrackets) == 0 || rt.PersonalBrackets[0].Rate != 0 {
		return 0
	}
	return rt.PersonalBrackets[0].Width
}

// AllowanceRate returns the annual capital-allowance rate for an asset
// class, falling back to the blended default when no class-specific rate is
// registered (e.g. AssetNone, where no asset register exists).
func (rt *RateTable) AllowanceRate(class domain.AssetClass) float64 {
	if r, ok := rt.AllowanceRates[class]; ok && r > 0 {
		return r
	}
	return rt.BlendedAllowanceRate
}

func (rt *RateTable) sectorIn(list []domain.Sector, s domain.Sector) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

// sanitize coerces invalid numeric input (negative, NaN, infinite) to zero.
// The callers are form-driven, so transient bad values are normal and never
// an error.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
