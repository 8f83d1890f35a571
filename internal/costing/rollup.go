package costing

import (
	"math"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// RoundMoney rounds a currency amount to 2 decimals. Applied only when a
// value enters the breakdown; intermediate sums keep full precision.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundArea rounds an area in square meters to 3 decimals.
func RoundArea(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Rollup combines the three cost streams into the final monetary figures.
// Margin and tax are present in the output shape but stay zero; the pricing
// policy that fills them is not wired into this engine yet.
func Rollup(materialsCost, hardwareCost, laborCost, overheadPercentage float64) domain.CostBreakdown {
	subtotal := materialsCost + hardwareCost + laborCost
	overheadCost := subtotal * overheadPercentage / 100.0
	totalCost := subtotal + overheadCost

	return domain.CostBreakdown{
		MaterialsCost:      RoundMoney(materialsCost),
		HardwareCost:       RoundMoney(hardwareCost),
		LaborCost:          RoundMoney(laborCost),
		Subtotal:           RoundMoney(subtotal),
		OverheadCost:       RoundMoney(overheadCost),
		OverheadPercentage: overheadPercentage,
		MarginAmount:       0,
		MarginPercentage:   0,
		TaxAmount:          0,
		TaxPercentage:      0,
		TotalCost:          RoundMoney(totalCost),
	}
}
