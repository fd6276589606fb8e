package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxara/internal/domain"
)

func TestVatClassify(t *testing.T) {
	c := NewVatClassifier(DefaultRateTable())

	tests := []struct {
		name        string
		turnover    float64
		description string
		want        domain.VatTreatment
		wantRate    float64
	}{
		{"micro entity exempt", 10_000_000, "consulting services", domain.VatExempt, 0},
		{"exemption outranks zero rating", 10_000_000, "medical supplies", domain.VatExempt, 0},
		{"essential goods zero rated", 30_000_000, "Children's Books", domain.VatZeroRated, 0},
		{"pharmacy zero rated", 30_000_000, "PHARMACY restock", domain.VatZeroRated, 0},
		{"baby items zero rated", 30_000_000, "baby formula", domain.VatZeroRated, 0},
		{"standard rated", 30_000_000, "consulting services", domain.VatStandard, 0.075},
		{"empty description standard", 30_000_000, "", domain.VatStandard, 0.075},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.turnover, tt.description)
			assert.Equal(t, tt.want, got.Treatment)
			assert.Equal(t, tt.wantRate, got.Rate)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestVatClassify_NegativeTurnoverTreatedAsZero(t *testing.T) {
	c := NewVatClassifier(DefaultRateTable())

	got := c.Classify(-1, "consulting")
	assert.Equal(t, domain.VatExempt, got.Treatment)
}

func TestVatClassify_OverriddenRate(t *testing.T) {
	rt := DefaultRateTable().WithOverrides(map[string]float64{OverrideVatRate: 0.10})
	c := NewVatClassifier(rt)

	got := c.Classify(30_000_000, "consulting")
	assert.Equal(t, 0.10, got.Rate)
}
