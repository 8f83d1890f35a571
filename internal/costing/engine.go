package costing

import (
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/formula"
)

// Input carries everything one breakdown computation needs, already
// resolved. The engine never reaches out for data itself: materials and
// product prices are batch-fetched by the caller beforehand, which keeps
// every Compute call side-effect free and safe to run concurrently with
// any other.
type Input struct {
	Config *domain.CabinetConfiguration
	Params domain.ModelParameters

	BodyMaterial  *domain.Material
	DoorMaterial  *domain.Material
	ShelfMaterial *domain.Material

	// Prices maps product ID to its catalog record, for front-level
	// hardware lines.
	Prices map[string]domain.Product

	Defaults Defaults
}

// Result pairs the breakdown with the diagnostics gathered while computing
// it: every formula or lookup that degraded to a zero contribution.
type Result struct {
	Breakdown domain.CostBreakdown
	Warnings  []domain.Diagnostic
}

// Compute runs the full pipeline: variable table, area aggregation, the
// three cost streams, rollup. The only hard failure is a configuration
// without usable base dimensions; everything else degrades per line and is
// reported through Warnings.
func Compute(in Input) (*Result, error) {
	if in.Config == nil {
		return nil, domain.NewValidationError("configuration", "is required")
	}
	if err := in.Config.Validate(); err != nil {
		return nil, err
	}

	var diags formula.Diagnostics
	vars := BuildVariables(in.Config, in.Params.Fronts)

	areas := AggregateAreas(in.Params.Panels, in.Params.Fronts, in.Params.Compartments, vars, &diags)
	materialsCost := PriceMaterials(areas, in.BodyMaterial, in.DoorMaterial, in.ShelfMaterial, in.Defaults)
	hardware := ResolveHardware(in.Params.Hardware, in.Params.Fronts, vars, in.Prices, &diags)
	labor := EstimateLabor(in.Params.Panels, in.Params.Fronts, in.Params.Compartments, in.Params.Labor)

	breakdown := Rollup(materialsCost, hardware.Total, labor.Cost, in.Defaults.OverheadPercentage)
	breakdown.LaborMinutes = labor.Minutes
	breakdown.MaterialAreas = domain.MaterialAreas{
		Body:  RoundArea(areas.Body),
		Door:  RoundArea(areas.Door),
		Shelf: RoundArea(areas.Shelf),
		Total: RoundArea(areas.Total()),
	}
	breakdown.HardwareItems = make([]domain.HardwareItem, len(hardware.Items))
	for i, item := range hardware.Items {
		item.LineTotal = RoundMoney(item.LineTotal)
		breakdown.HardwareItems[i] = item
	}

	return &Result{
		Breakdown: breakdown,
		Warnings:  diags.Warnings(),
	}, nil
}
