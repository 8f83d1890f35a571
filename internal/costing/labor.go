package costing

import "github.com/alexanderramin/cabquote/internal/domain"

// LaborEstimate is workshop labor in minutes and money.
type LaborEstimate struct {
	Minutes float64
	Cost    float64
}

// EstimateLabor converts piece counts into minutes via the model's labor
// coefficients plus the fixed base, then into money via the hourly rate.
// All inputs are concrete counts already; no formulas are involved.
func EstimateLabor(panels []domain.ParametricPanel, fronts []domain.CabinetFront, compartments []domain.Compartment, cfg domain.LaborConfig) LaborEstimate {
	var panelCount int
	for _, p := range panels {
		if p.Visible {
			panelCount++
		}
	}

	var frontCount int
	for _, f := range fronts {
		if f.Visible {
			frontCount += frontQuantity(f)
		}
	}

	var itemCount int
	for _, c := range compartments {
		for _, item := range c.Items {
			itemCount += item.Quantity
		}
	}

	minutes := cfg.BaseMinutes +
		float64(panelCount)*cfg.PerPanelMinutes +
		float64(frontCount)*cfg.PerFrontMinutes +
		float64(itemCount)*cfg.PerCompartmentItemMinutes

	return LaborEstimate{
		Minutes: minutes,
		Cost:    minutes / 60.0 * cfg.HourlyRate,
	}
}
