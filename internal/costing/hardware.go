package costing

import (
	"fmt"
	"math"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/formula"
)

// HardwareResult is the priced hardware: the full-precision total plus the
// itemized lines in encounter order, model-level items first.
type HardwareResult struct {
	Total float64
	Items []domain.HardwareItem
}

// ResolveHardware evaluates every hardware quantity formula, ceiling-rounds
// it to a whole count, and prices it. Model-level lines carry their own unit
// price; front-level lines are priced against the catalog products supplied
// in prices, keyed by product ID. A front line whose product is missing from
// prices is skipped, not an error.
func ResolveHardware(modelHW []domain.ModelHardware, fronts []domain.CabinetFront, vars formula.Vars, prices map[string]domain.Product, diags *formula.Diagnostics) HardwareResult {
	var result HardwareResult

	for i, hw := range modelHW {
		loc := fmt.Sprintf("hardware[%d] (%s)", i, hw.Name)
		qty := hardwareQuantity(hw.Quantity, vars, loc, diags)
		lineTotal := float64(qty) * hw.UnitPrice
		result.Total += lineTotal
		result.Items = append(result.Items, domain.HardwareItem{
			Name:      domain.CoalesceStr(hw.Name, hw.ProductID),
			Quantity:  qty,
			UnitPrice: hw.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	for i, f := range fronts {
		for j, hw := range f.Hardware {
			loc := fmt.Sprintf("fronts[%d].hardware[%d]", i, j)
			product, ok := prices[hw.ProductID]
			if !ok {
				diags.Add(loc, "no price for product "+hw.ProductID+", line skipped")
				continue
			}
			qty := hardwareQuantity(hw.Quantity, vars, loc, diags)
			lineTotal := float64(qty) * product.UnitPrice
			result.Total += lineTotal
			result.Items = append(result.Items, domain.HardwareItem{
				Name:      domain.CoalesceStr(product.Name, hw.ProductID),
				Quantity:  qty,
				UnitPrice: product.UnitPrice,
				LineTotal: lineTotal,
			})
		}
	}

	return result
}

// hardwareQuantity resolves a quantity scalar to a whole count: ceiling of
// the evaluated value, never below zero.
func hardwareQuantity(q domain.Scalar, vars formula.Vars, location string, diags *formula.Diagnostics) int {
	v := formula.Evaluate(q, vars, location+".quantity", diags)
	if v <= 0 {
		if v < 0 {
			diags.Add(location, "negative quantity, contributing 0")
		}
		return 0
	}
	return int(math.Ceil(v))
}
