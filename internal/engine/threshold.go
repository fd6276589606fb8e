package engine

import (
	"fmt"

	"taxara/internal/domain"
)

// CliffReport describes proximity to a tax cliff. SimulatedCostIfCrossed is
// populated only in the business warning zone, so the caller can show the
// cost of crossing before it happens.
type CliffReport struct {
	Status                 domain.CliffStatus `json:"status"`
	Distance               float64            `json:"distance"`
	SimulatedCostIfCrossed float64            `json:"simulated_cost_if_crossed"`
	Message                string             `json:"message"`
}

// ThresholdMonitor reports distance to the personal zero-band ceiling or
// the small-company turnover ceiling. Purely a function of its inputs.
type ThresholdMonitor struct {
	rates *RateTable
}

// NewThresholdMonitor creates a monitor bound to a rate-table snapshot.
func NewThresholdMonitor(rates *RateTable) *ThresholdMonitor {
	return &ThresholdMonitor{rates: rates}
}

// Check classifies the current metric (income for personal accounts,
// turnover for business accounts) against the relevant cliff.
func (m *ThresholdMonitor) Check(currentValue float64, entityType domain.AccountType) CliffReport {
	v := sanitize(currentValue)
	if entityType == domain.AccountBusiness {
		return m.checkBusiness(v)
	}
	return m.checkPersonal(v)
}

func (m *ThresholdMonitor) checkPersonal(income float64) CliffReport {
	ceiling := m.rates.ZeroBandCeiling()
	buffer := m.rates.PersonalWarningBuffer

	if income >= ceiling {
		return CliffReport{
			Status:   domain.CliffCrossed,
			Distance: 0,
			Message: fmt.Sprintf(
				"income exceeds the tax-free band of %.2f by %.2f; the marginal rate has stepped up",
				ceiling, income-ceiling),
		}
	}

	distance := ceiling - income
	if distance <= buffer {
		return CliffReport{
			Status:   domain.CliffWarning,
			Distance: distance,
			Message: fmt.Sprintf(
				"within %.2f of the tax-free band ceiling of %.2f; further income will be taxed",
				distance, ceiling),
		}
	}

	return CliffReport{
		Status:   domain.CliffSafe,
		Distance: distance,
		Message:  fmt.Sprintf("%.2f of tax-free headroom remaining below the %.2f ceiling", distance, ceiling),
	}
}

func (m *ThresholdMonitor) checkBusiness(turnover float64) CliffReport {
	ceiling := m.rates.SmallCompanyThreshold
	buffer := m.rates.BusinessWarningBuffer
	combinedRate := m.rates.CITRate + m.rates.DevLevyRate

	// The small-company exemption holds at exactly the threshold;
	// classification flips strictly above it.
	if turnover > ceiling {
		return CliffReport{
			Status:   domain.CliffCrossed,
			Distance: 0,
			Message: fmt.Sprintf(
				"turnover exceeds the small-company threshold of %.2f by %.2f; CIT and the development levy now apply",
				ceiling, turnover-ceiling),
		}
	}

	distance := ceiling - turnover
	if distance <= buffer {
		simulated := turnover * combinedRate
		return CliffReport{
			Status:                 domain.CliffWarning,
			Distance:               distance,
			SimulatedCostIfCrossed: simulated,
			Message: fmt.Sprintf(
				"within %.2f of the small-company threshold of %.2f; crossing would trigger an estimated %.2f in combined CIT and levy",
				distance, ceiling, simulated),
		}
	}

	return CliffReport{
		Status:   domain.CliffSafe,
		Distance: distance,
		Message:  fmt.Sprintf("%.2f of turnover headroom remaining below the %.2f threshold", distance, ceiling),
	}
}
