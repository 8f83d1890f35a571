package importer

import (
	"fmt"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/alexanderramin/cabquote/internal/formula"
)

// ValidateModelSchema checks the model definition for errors before
// conversion. Returns a slice of all validation errors found. Formula
// scalars are syntax-checked here so authoring mistakes surface at import
// time instead of silently zeroing a quote line later.
func ValidateModelSchema(schema *ModelSchema) []error {
	var errs []error

	if schema.Model.Name == "" {
		errs = append(errs, fmt.Errorf("model.name is required"))
	}

	for i, p := range schema.Panels {
		loc := fmt.Sprintf("panels[%d]", i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", loc))
		}
		errs = append(errs, validateScalar(loc+".length", p.Length)...)
		errs = append(errs, validateScalar(loc+".width", p.Width)...)
		if p.MaterialType != "" && !domain.ValidMaterialRoles[p.MaterialType] {
			errs = append(errs, fmt.Errorf("%s.material_type: invalid value %q", loc, p.MaterialType))
		}
	}

	for i, f := range schema.Fronts {
		loc := fmt.Sprintf("fronts[%d]", i)
		if f.FrontType == "" {
			errs = append(errs, fmt.Errorf("%s.front_type is required", loc))
		} else if !domain.ValidFrontTypes[f.FrontType] {
			errs = append(errs, fmt.Errorf("%s.front_type: invalid value %q", loc, f.FrontType))
		}
		errs = append(errs, validateScalar(loc+".width", f.Width)...)
		errs = append(errs, validateScalar(loc+".height", f.Height)...)
		if f.Quantity != nil && *f.Quantity < 1 {
			errs = append(errs, fmt.Errorf("%s.quantity must be at least 1", loc))
		}
		if f.MaterialType != "" && !domain.ValidMaterialRoles[f.MaterialType] {
			errs = append(errs, fmt.Errorf("%s.material_type: invalid value %q", loc, f.MaterialType))
		}
		for j, hw := range f.Hardware {
			hwLoc := fmt.Sprintf("%s.hardware[%d]", loc, j)
			if hw.ProductID == "" {
				errs = append(errs, fmt.Errorf("%s.product_id is required", hwLoc))
			}
			errs = append(errs, validateScalar(hwLoc+".quantity", hw.Quantity)...)
		}
	}

	for i, c := range schema.Compartments {
		loc := fmt.Sprintf("compartments[%d]", i)
		errs = append(errs, validateScalar(loc+".width", c.Width)...)
		errs = append(errs, validateScalar(loc+".height", c.Height)...)
		errs = append(errs, validateScalar(loc+".depth", c.Depth)...)
		for j, item := range c.Items {
			itemLoc := fmt.Sprintf("%s.items[%d]", loc, j)
			if !domain.ValidCompartmentItemTypes[item.ItemType] {
				errs = append(errs, fmt.Errorf("%s.item_type: invalid value %q", itemLoc, item.ItemType))
			}
			if item.Quantity != nil && *item.Quantity < 0 {
				errs = append(errs, fmt.Errorf("%s.quantity must not be negative", itemLoc))
			}
		}
	}

	for i, hw := range schema.Hardware {
		loc := fmt.Sprintf("hardware[%d]", i)
		if hw.Name == "" && hw.ProductID == "" {
			errs = append(errs, fmt.Errorf("%s: name or product_id is required", loc))
		}
		errs = append(errs, validateScalar(loc+".quantity", hw.Quantity)...)
		if hw.UnitPrice < 0 {
			errs = append(errs, fmt.Errorf("%s.unit_price must not be negative", loc))
		}
	}

	if schema.Labor != nil {
		if schema.Labor.HourlyRate < 0 {
			errs = append(errs, fmt.Errorf("labor.hourly_rate must not be negative"))
		}
		for name, v := range map[string]float64{
			"base_minutes":                 schema.Labor.BaseMinutes,
			"per_panel_minutes":            schema.Labor.PerPanelMinutes,
			"per_front_minutes":            schema.Labor.PerFrontMinutes,
			"per_compartment_item_minutes": schema.Labor.PerCompartmentItemMinutes,
		} {
			if v < 0 {
				errs = append(errs, fmt.Errorf("labor.%s must not be negative", name))
			}
		}
	}

	return errs
}

// validateScalar checks that a scalar is present and, when it is a formula,
// that the formula parses.
func validateScalar(location string, s domain.Scalar) []error {
	if s.IsZero() {
		return []error{fmt.Errorf("%s is required", location)}
	}
	if s.Literal {
		return nil
	}
	if _, err := formula.Parse(s.Formula); err != nil {
		return []error{fmt.Errorf("%s: invalid formula %q: %v", location, s.Formula, err)}
	}
	return nil
}
