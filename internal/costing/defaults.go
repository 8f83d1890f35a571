// Package costing implements the parametric cabinet cost engine: variable
// binding, material area aggregation, material/hardware/labor pricing, and
// the final rollup into a cost breakdown. Every entry point is a pure
// function over already-resolved inputs; the package performs no I/O and
// keeps no state between calls.
package costing

// Defaults carries the engine constants. They are injected explicitly so the
// engine stays deterministic from its declared inputs and has no hidden
// global state.
type Defaults struct {
	// WasteFactor multiplies raw sheet area for materials without their
	// own override. 1.10 means 10% cutting loss.
	WasteFactor float64

	// EdgeBandingMetersPerSqm estimates linear meters of banding per square
	// meter of panel area.
	EdgeBandingMetersPerSqm float64

	// EdgeBandingCostPerMeter is the banding price per linear meter.
	EdgeBandingCostPerMeter float64

	// OverheadPercentage is applied to the subtotal in the rollup.
	OverheadPercentage float64
}

// StandardDefaults returns the workshop's standard constants.
func StandardDefaults() Defaults {
	return Defaults{
		WasteFactor:             1.10,
		EdgeBandingMetersPerSqm: 4.0,
		EdgeBandingCostPerMeter: 0.80,
		OverheadPercentage:      15.0,
	}
}
