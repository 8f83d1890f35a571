package importer

import (
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ModelSchema into a domain cabinet model
// ready for persistence. Call ValidateModelSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ModelSchema) *domain.CabinetModel {
	now := time.Now().UTC()

	params := domain.ModelParameters{}

	for _, p := range schema.Panels {
		role := domain.MaterialRole(p.MaterialType)
		if p.MaterialType == "" {
			role = domain.RoleBody
		}
		params.Panels = append(params.Panels, domain.ParametricPanel{
			Name:         p.Name,
			Length:       p.Length,
			Width:        p.Width,
			MaterialRole: role,
			Visible:      boolOrDefault(p.Visible, true),
		})
	}

	for _, f := range schema.Fronts {
		front := domain.CabinetFront{
			FrontType:    domain.FrontType(f.FrontType),
			Width:        f.Width,
			Height:       f.Height,
			ThicknessMM:  domain.Float64FromPtrWithDefault(domain.DefaultPanelThicknessMM, f.Thickness),
			Quantity:     domain.IntFromPtrWithDefault(1, f.Quantity),
			MaterialRole: domain.MaterialRole(domain.CoalesceStr(f.MaterialType, "door")),
			Visible:      boolOrDefault(f.Visible, true),
		}
		for _, hw := range f.Hardware {
			front.Hardware = append(front.Hardware, domain.FrontHardware{
				ProductID: hw.ProductID,
				Quantity:  hw.Quantity,
			})
		}
		params.Fronts = append(params.Fronts, front)
	}

	for _, c := range schema.Compartments {
		comp := domain.Compartment{
			Width:  c.Width,
			Height: c.Height,
			Depth:  c.Depth,
		}
		for _, item := range c.Items {
			comp.Items = append(comp.Items, domain.CompartmentItem{
				ItemType: domain.CompartmentItemType(item.ItemType),
				Quantity: domain.IntFromPtrWithDefault(1, item.Quantity),
			})
		}
		params.Compartments = append(params.Compartments, comp)
	}

	for _, hw := range schema.Hardware {
		params.Hardware = append(params.Hardware, domain.ModelHardware{
			ProductID: hw.ProductID,
			Name:      hw.Name,
			Quantity:  hw.Quantity,
			UnitPrice: hw.UnitPrice,
		})
	}

	if schema.Labor != nil {
		params.Labor = domain.LaborConfig{
			BaseMinutes:               schema.Labor.BaseMinutes,
			PerPanelMinutes:           schema.Labor.PerPanelMinutes,
			PerFrontMinutes:           schema.Labor.PerFrontMinutes,
			PerCompartmentItemMinutes: schema.Labor.PerCompartmentItemMinutes,
			HourlyRate:                schema.Labor.HourlyRate,
		}
	}

	return &domain.CabinetModel{
		ID:          uuid.New().String(),
		Name:        schema.Model.Name,
		Description: schema.Model.Description,
		Parameters:  params,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
