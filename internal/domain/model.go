package domain

import "time"

// CabinetModel is a reusable cabinet template. Its parameters describe the
// construction declaratively; every size that depends on the final cabinet
// dimensions is a formula resolved at pricing time.
type CabinetModel struct {
	ID          string
	Name        string
	Description string
	Parameters  ModelParameters
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ModelParameters groups the declarative pieces of a cabinet model.
type ModelParameters struct {
	Panels       []ParametricPanel `json:"panels,omitempty"`
	Fronts       []CabinetFront    `json:"fronts,omitempty"`
	Compartments []Compartment     `json:"compartments,omitempty"`
	Hardware     []ModelHardware   `json:"hardware,omitempty"`
	Labor        LaborConfig       `json:"labor"`
}

// ParametricPanel is one rectangular piece of carcass material. Length and
// width are formulas over the variable table (or literal millimeters).
type ParametricPanel struct {
	Name         string       `json:"name"`
	Length       Scalar       `json:"length"`
	Width        Scalar       `json:"width"`
	MaterialRole MaterialRole `json:"material_type"`
	Visible      bool         `json:"visible"`
}

// CabinetFront is a door or drawer face. Quantity is a concrete count;
// width and height may be formulas.
type CabinetFront struct {
	FrontType    FrontType       `json:"front_type"`
	Width        Scalar          `json:"width"`
	Height       Scalar          `json:"height"`
	ThicknessMM  float64         `json:"thickness,omitempty"`
	Quantity     int             `json:"quantity"`
	MaterialRole MaterialRole    `json:"material_type,omitempty"`
	Visible      bool            `json:"visible"`
	Hardware     []FrontHardware `json:"hardware,omitempty"`
}

// FrontHardware attaches a catalog product to a front (hinges, slides).
// The unit price is resolved from the catalog at pricing time.
type FrontHardware struct {
	ProductID string `json:"product_id"`
	Quantity  Scalar `json:"quantity"`
}

// Compartment is an interior subdivision with its own resolved dimensions
// and a list of interior items (shelves, dividers).
type Compartment struct {
	Width  Scalar            `json:"width"`
	Height Scalar            `json:"height"`
	Depth  Scalar            `json:"depth"`
	Items  []CompartmentItem `json:"items,omitempty"`
}

type CompartmentItem struct {
	ItemType CompartmentItemType `json:"item_type"`
	Quantity int                 `json:"quantity"`
}

// ModelHardware is a hardware line carried by the model itself (legs,
// hanging rails) with a self-contained unit price.
type ModelHardware struct {
	ProductID string  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  Scalar  `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LaborConfig converts piece counts into workshop minutes.
type LaborConfig struct {
	BaseMinutes               float64 `json:"base_minutes"`
	PerPanelMinutes           float64 `json:"per_panel_minutes"`
	PerFrontMinutes           float64 `json:"per_front_minutes"`
	PerCompartmentItemMinutes float64 `json:"per_compartment_item_minutes"`
	HourlyRate                float64 `json:"hourly_rate"`
}
