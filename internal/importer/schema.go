// Package importer loads declarative cabinet model definitions from JSON
// files, validates them, and converts them into domain objects ready for
// persistence.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// ModelSchema is the top-level JSON structure for a cabinet model definition.
type ModelSchema struct {
	Model        ModelInfoImport     `json:"model"`
	Panels       []PanelImport       `json:"panels,omitempty"`
	Fronts       []FrontImport       `json:"fronts,omitempty"`
	Compartments []CompartmentImport `json:"compartments,omitempty"`
	Hardware     []HardwareImport    `json:"hardware,omitempty"`
	Labor        *LaborImport        `json:"labor,omitempty"`
}

// ModelInfoImport defines the model-level fields in the definition file.
type ModelInfoImport struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PanelImport defines one carcass panel. Visible defaults to true when
// omitted.
type PanelImport struct {
	Name         string        `json:"name"`
	Length       domain.Scalar `json:"length"`
	Width        domain.Scalar `json:"width"`
	MaterialType string        `json:"material_type,omitempty"`
	Visible      *bool         `json:"visible,omitempty"`
}

// FrontImport defines one door or drawer face. Quantity defaults to 1 and
// Visible to true when omitted.
type FrontImport struct {
	FrontType    string                `json:"front_type"`
	Width        domain.Scalar         `json:"width"`
	Height       domain.Scalar         `json:"height"`
	Thickness    *float64              `json:"thickness,omitempty"`
	Quantity     *int                  `json:"quantity,omitempty"`
	MaterialType string                `json:"material_type,omitempty"`
	Visible      *bool                 `json:"visible,omitempty"`
	Hardware     []FrontHardwareImport `json:"hardware,omitempty"`
}

// FrontHardwareImport attaches a catalog product to a front.
type FrontHardwareImport struct {
	ProductID string        `json:"product_id"`
	Quantity  domain.Scalar `json:"quantity"`
}

// CompartmentImport defines an interior subdivision and its items.
type CompartmentImport struct {
	Width  domain.Scalar           `json:"width"`
	Height domain.Scalar           `json:"height"`
	Depth  domain.Scalar           `json:"depth"`
	Items  []CompartmentItemImport `json:"items,omitempty"`
}

type CompartmentItemImport struct {
	ItemType string `json:"item_type"`
	Quantity *int   `json:"quantity,omitempty"`
}

// HardwareImport defines a model-level hardware line.
type HardwareImport struct {
	ProductID string        `json:"product_id,omitempty"`
	Name      string        `json:"name"`
	Quantity  domain.Scalar `json:"quantity"`
	UnitPrice float64       `json:"unit_price"`
}

// LaborImport defines the labor coefficients.
type LaborImport struct {
	BaseMinutes               float64 `json:"base_minutes"`
	PerPanelMinutes           float64 `json:"per_panel_minutes"`
	PerFrontMinutes           float64 `json:"per_front_minutes"`
	PerCompartmentItemMinutes float64 `json:"per_compartment_item_minutes"`
	HourlyRate                float64 `json:"hourly_rate"`
}

// LoadModelSchema reads and parses a model definition JSON file.
func LoadModelSchema(path string) (*ModelSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ModelSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing model definition: %w", err)
	}
	return &schema, nil
}
