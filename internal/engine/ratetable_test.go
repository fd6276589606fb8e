package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxara/internal/domain"
)

func TestWithOverrides_AppliesKnownKeys(t *testing.T) {
	base := DefaultRateTable()

	next := base.WithOverrides(map[string]float64{
		OverrideVatRate:        0.10,
		OverrideCITRate:        0.25,
		OverridePricingMonthly: 7_500,
	})

	assert.Equal(t, 0.10, next.VatRate)
	assert.Equal(t, 0.25, next.CITRate)
	assert.Equal(t, 7_500.0, next.PricingMonthly)
	assert.Equal(t, base.Version+1, next.Version)
}

func TestWithOverrides_IgnoresUnknownKeys(t *testing.T) {
	base := DefaultRateTable()

	next := base.WithOverrides(map[string]float64{
		"no_such_key": 0.99,
	})

	assert.Equal(t, base.VatRate, next.VatRate)
	assert.Equal(t, base.CITRate, next.CITRate)
}

func TestWithOverrides_DoesNotMutateReceiver(t *testing.T) {
	base := DefaultRateTable()
	beforeVat := base.VatRate
	beforeVersion := base.Version

	base.WithOverrides(map[string]float64{OverrideVatRate: 0.20})

	assert.Equal(t, beforeVat, base.VatRate)
	assert.Equal(t, beforeVersion, base.Version)
}

func TestWithOverrides_SanitizesValues(t *testing.T) {
	next := DefaultRateTable().WithOverrides(map[string]float64{
		OverrideDevLevyRate: -0.5,
	})

	assert.Zero(t, next.DevLevyRate)
}

func TestKnownOverrideKey(t *testing.T) {
	assert.True(t, KnownOverrideKey(OverrideVatRate))
	assert.True(t, KnownOverrideKey(OverrideSmallCompanyThreshold))
	assert.False(t, KnownOverrideKey("vat"))
	assert.False(t, KnownOverrideKey(""))
}

func TestZeroBandCeiling(t *testing.T) {
	assert.Equal(t, 800_000.0, DefaultRateTable().ZeroBandCeiling())

	noZeroBand := &RateTable{PersonalBrackets: []Bracket{{Width: 100, Rate: 0.10}}}
	assert.Zero(t, noZeroBand.ZeroBandCeiling())

	empty := &RateTable{}
	assert.Zero(t, empty.ZeroBandCeiling())
}

func TestAllowanceRate(t *testing.T) {
	rt := DefaultRateTable()

	assert.Equal(t, 0.25, rt.AllowanceRate(domain.AssetVehicle))
	assert.Equal(t, 0.10, rt.AllowanceRate(domain.AssetBuilding))
	// Unregistered classes fall back to the blended default.
	assert.Equal(t, rt.BlendedAllowanceRate, rt.AllowanceRate(domain.AssetNone))
	assert.Equal(t, rt.BlendedAllowanceRate, rt.AllowanceRate(domain.AssetClass("helicopter")))
}
