package costing

import "github.com/alexanderramin/cabquote/internal/domain"

// PriceMaterials prices the three area buckets against their resolved
// materials and adds the edge-banding estimate. A nil material means that
// role is not configured for this cabinet; its bucket legitimately
// contributes zero, silently.
func PriceMaterials(areas Areas, body, door, shelf *domain.Material, d Defaults) float64 {
	var cost float64
	cost += bucketCost(areas.Body, body, d)
	cost += bucketCost(areas.Door, door, d)
	cost += bucketCost(areas.Shelf, shelf, d)

	// Banding is estimated for all panel perimeters at a fixed ratio of
	// linear meters per square meter of sheet area.
	cost += areas.Total() * d.EdgeBandingMetersPerSqm * d.EdgeBandingCostPerMeter

	return cost
}

func bucketCost(sqm float64, mat *domain.Material, d Defaults) float64 {
	if mat == nil {
		return 0
	}
	waste := domain.Float64FromPtrWithDefault(d.WasteFactor, mat.WasteFactor)
	return sqm * waste * mat.CostPerSqm
}
