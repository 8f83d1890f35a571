package domain

import "time"

// MaterialAreas holds the aggregated sheet area per material role, in square
// meters rounded to 3 decimals.
type MaterialAreas struct {
	Body  float64 `json:"body"`
	Door  float64 `json:"door"`
	Shelf float64 `json:"shelf"`
	Total float64 `json:"total"`
}

// HardwareItem is one priced hardware line in the breakdown, in encounter
// order: model-level items first, then front-level items.
type HardwareItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CostBreakdown is the engine's sole output: the full cost picture for one
// configuration. Monetary figures are rounded to 2 decimals at the point of
// inclusion; intermediate sums keep full precision.
type CostBreakdown struct {
	MaterialsCost float64 `json:"materials_cost"`
	HardwareCost  float64 `json:"hardware_cost"`
	LaborMinutes  float64 `json:"labor_minutes"`
	LaborCost     float64 `json:"labor_cost"`

	Subtotal           float64 `json:"subtotal"`
	OverheadCost       float64 `json:"overhead_cost"`
	OverheadPercentage float64 `json:"overhead_percentage"`
	MarginAmount       float64 `json:"margin_amount"`
	MarginPercentage   float64 `json:"margin_percentage"`
	TaxAmount          float64 `json:"tax_amount"`
	TaxPercentage      float64 `json:"tax_percentage"`
	TotalCost          float64 `json:"total_cost"`

	MaterialAreas MaterialAreas  `json:"material_areas"`
	HardwareItems []HardwareItem `json:"hardware_items"`
}

// Diagnostic is one non-fatal pricing warning: a formula or lookup that
// degraded to a zero contribution, with where and why.
type Diagnostic struct {
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

// Quote is a persisted snapshot of a computed breakdown for one
// configuration. Recomputing never mutates an existing quote.
type Quote struct {
	ID              string
	ConfigurationID string
	ModelID         string
	Label           string
	Status          QuoteStatus
	Breakdown       CostBreakdown
	TotalCost       float64
	CreatedAt       time.Time
}
