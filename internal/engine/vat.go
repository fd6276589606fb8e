package engine

import (
	"fmt"
	"strings"

	"taxara/internal/domain"
)

// VatClassification is the VAT treatment for a supply.
type VatClassification struct {
	Treatment domain.VatTreatment `json:"treatment"`
	Rate      float64             `json:"rate"`
	Reason    string              `json:"reason"`
}

// VatClassifier determines VAT exemption and zero-rating. Exemption by
// turnover outranks zero-rating by item description; the first applicable
// rule wins.
type VatClassifier struct {
	rates *RateTable
}

// NewVatClassifier creates a classifier bound to a rate-table snapshot.
func NewVatClassifier(rates *RateTable) *VatClassifier {
	return &VatClassifier{rates: rates}
}

// Classify returns the VAT treatment for an entity with the given turnover
// supplying the described item. Entities below the micro-turnover threshold
// are exempt outright. For others, essential-goods items are zero-rated by
// case-insensitive substring match; everything else takes the standard rate.
func (c *VatClassifier) Classify(turnoverBand float64, itemDescription string) VatClassification {
	turnover := sanitize(turnoverBand)

	if turnover < c.rates.VatMicroThreshold {
		return VatClassification{
			Treatment: domain.VatExempt,
			Rate:      0,
			Reason:    "turnover below the VAT registration threshold",
		}
	}

	desc := strings.ToLower(itemDescription)
	for _, keyword := range c.rates.ZeroRatedKeywords {
		if strings.Contains(desc, keyword) {
			return VatClassification{
				Treatment: domain.VatZeroRated,
				Rate:      0,
				Reason:    fmt.Sprintf("essential goods (matched %q)", keyword),
			}
		}
	}

	return VatClassification{
		Treatment: domain.VatStandard,
		Rate:      c.rates.VatRate,
		Reason:    "standard-rated supply",
	}
}
