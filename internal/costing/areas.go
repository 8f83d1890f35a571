package costing

import (
	"fmt"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/formula"
)

const mm2PerSqm = 1_000_000.0

// Areas holds aggregated sheet area per material role, in square meters at
// full precision. Rounding happens only when the values enter a breakdown.
type Areas struct {
	Body  float64
	Door  float64
	Shelf float64
}

// Total returns the summed area across all three roles.
func (a Areas) Total() float64 {
	return a.Body + a.Door + a.Shelf
}

// AggregateAreas walks panels, fronts, and compartment interior items,
// resolves their size formulas, and accumulates square meters per material
// role. The walk is a pure summation: ordering never affects the result.
func AggregateAreas(panels []domain.ParametricPanel, fronts []domain.CabinetFront, compartments []domain.Compartment, vars formula.Vars, diags *formula.Diagnostics) Areas {
	var areas Areas

	for i, p := range panels {
		if !p.Visible {
			continue
		}
		loc := panelLoc(i, p.Name)
		length := formula.Evaluate(p.Length, vars, loc+".length", diags)
		width := formula.Evaluate(p.Width, vars, loc+".width", diags)
		sqm := clampArea(length*width/mm2PerSqm, loc, diags)

		// Unrecognized roles land in the body bucket.
		switch p.MaterialRole {
		case domain.RoleDoor:
			areas.Door += sqm
		case domain.RoleShelf:
			areas.Shelf += sqm
		default:
			areas.Body += sqm
		}
	}

	// Fronts always accumulate into the door bucket, whatever role the
	// model declares for them.
	for i, f := range fronts {
		if !f.Visible {
			continue
		}
		loc := fmt.Sprintf("fronts[%d]", i)
		width := formula.Evaluate(f.Width, vars, loc+".width", diags)
		height := formula.Evaluate(f.Height, vars, loc+".height", diags)
		sqm := clampArea(width*height*float64(frontQuantity(f))/mm2PerSqm, loc, diags)
		areas.Door += sqm
	}

	for i, c := range compartments {
		loc := fmt.Sprintf("compartments[%d]", i)
		cw := formula.Evaluate(c.Width, vars, loc+".width", diags)
		ch := formula.Evaluate(c.Height, vars, loc+".height", diags)
		cd := formula.Evaluate(c.Depth, vars, loc+".depth", diags)

		for j, item := range c.Items {
			itemLoc := fmt.Sprintf("%s.items[%d]", loc, j)
			switch item.ItemType {
			case domain.ItemShelf, domain.ItemHorizontalDivider:
				sqm := clampArea(cw*cd*float64(item.Quantity)/mm2PerSqm, itemLoc, diags)
				areas.Shelf += sqm
			case domain.ItemVerticalDivider:
				// Quantity is deliberately ignored here: a vertical divider
				// contributes exactly one panel of body material per entry.
				sqm := clampArea(ch*cd/mm2PerSqm, itemLoc, diags)
				areas.Body += sqm
			default:
				diags.Add(itemLoc, "unknown item type "+string(item.ItemType))
			}
		}
	}

	return areas
}

func panelLoc(i int, name string) string {
	if name != "" {
		return fmt.Sprintf("panels[%d] (%s)", i, name)
	}
	return fmt.Sprintf("panels[%d]", i)
}

// clampArea keeps the non-negative area invariant: a formula that resolves
// to a negative size contributes nothing.
func clampArea(sqm float64, location string, diags *formula.Diagnostics) float64 {
	if sqm < 0 {
		diags.Add(location, "negative area, contributing 0")
		return 0
	}
	return sqm
}
