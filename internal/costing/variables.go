package costing

import (
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/formula"
)

// BuildVariables derives the variable table every model formula is resolved
// against: the three base dimensions, the per-role panel thicknesses, and
// the door/drawer counts taken from the visible fronts. Counts are per front
// entry; a front's quantity only matters for area and labor. Callers may add
// derived keys afterwards but must not reuse these names.
func BuildVariables(cfg *domain.CabinetConfiguration, fronts []domain.CabinetFront) formula.Vars {
	vars := formula.Vars{
		"width":           cfg.WidthMM,
		"height":          cfg.HeightMM,
		"depth":           cfg.DepthMM,
		"body_thickness":  cfg.Materials.BodyThickness(),
		"door_thickness":  cfg.Materials.DoorThickness(),
		"shelf_thickness": cfg.Materials.ShelfThickness(),
	}

	var doors, drawers int
	for _, f := range fronts {
		if !f.Visible {
			continue
		}
		switch f.FrontType {
		case domain.FrontHingedDoor:
			doors++
		case domain.FrontDrawerFront:
			drawers++
		}
	}
	vars["door_count"] = float64(doors)
	vars["drawer_count"] = float64(drawers)

	return vars
}

// frontQuantity treats a missing quantity as a single front.
func frontQuantity(f domain.CabinetFront) int {
	if f.Quantity < 1 {
		return 1
	}
	return f.Quantity
}
