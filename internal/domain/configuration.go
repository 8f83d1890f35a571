package domain

import "time"

// DefaultPanelThicknessMM is used for any material role without an explicit
// thickness override in the configuration.
const DefaultPanelThicknessMM = 18.0

// MaterialConfig names the catalog materials for each role and optionally
// overrides the panel thickness per role.
type MaterialConfig struct {
	BodyMaterialID  string
	DoorMaterialID  string
	ShelfMaterialID string

	BodyThicknessMM  *float64
	DoorThicknessMM  *float64
	ShelfThicknessMM *float64
}

// BodyThickness returns the body panel thickness in millimeters.
func (m MaterialConfig) BodyThickness() float64 {
	return Float64FromPtrWithDefault(DefaultPanelThicknessMM, m.BodyThicknessMM)
}

// DoorThickness returns the door/front thickness in millimeters.
func (m MaterialConfig) DoorThickness() float64 {
	return Float64FromPtrWithDefault(DefaultPanelThicknessMM, m.DoorThicknessMM)
}

// ShelfThickness returns the shelf thickness in millimeters.
func (m MaterialConfig) ShelfThickness() float64 {
	return Float64FromPtrWithDefault(DefaultPanelThicknessMM, m.ShelfThicknessMM)
}

// CabinetConfiguration is a concrete sizing of a cabinet model: the three
// base dimensions plus the material choices. It is the unit a quote is
// computed for.
type CabinetConfiguration struct {
	ID      string
	ModelID string
	Name    string

	WidthMM  float64
	HeightMM float64
	DepthMM  float64

	Materials MaterialConfig

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that the configuration carries usable base dimensions.
// A configuration failing here cannot be priced at all.
func (c *CabinetConfiguration) Validate() error {
	if c.WidthMM <= 0 {
		return NewValidationError("width", "must be a positive number of millimeters")
	}
	if c.HeightMM <= 0 {
		return NewValidationError("height", "must be a positive number of millimeters")
	}
	if c.DepthMM <= 0 {
		return NewValidationError("depth", "must be a positive number of millimeters")
	}
	return nil
}

// DisplayID returns a short identifier for display, preferring the name.
func (c *CabinetConfiguration) DisplayID() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
