package testutil

import (
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/google/uuid"
)

// Material options
type MaterialOption func(*domain.Material)

func WithCostPerSqm(cost float64) MaterialOption {
	return func(m *domain.Material) {
		m.CostPerSqm = cost
	}
}

func WithWasteFactor(factor float64) MaterialOption {
	return func(m *domain.Material) {
		m.WasteFactor = &factor
	}
}

func NewTestMaterial(name string, opts ...MaterialOption) *domain.Material {
	now := time.Now().UTC()
	m := &domain.Material{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   "melamine",
		CostPerSqm: 12,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestProduct(name string, unitPrice float64) *domain.Product {
	now := time.Now().UTC()
	return &domain.Product{
		ID:        uuid.New().String(),
		Name:      name,
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestModel builds a simple two-door base cabinet model: four body
// panels, one double door front with hinges, one shelf compartment, legs,
// and workshop labor coefficients.
func NewTestModel(name string) *domain.CabinetModel {
	now := time.Now().UTC()
	return &domain.CabinetModel{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "test base cabinet",
		Parameters: domain.ModelParameters{
			Panels: []domain.ParametricPanel{
				{Name: "left side", Length: domain.Expr("height"), Width: domain.Expr("depth"), MaterialRole: domain.RoleBody, Visible: true},
				{Name: "right side", Length: domain.Expr("height"), Width: domain.Expr("depth"), MaterialRole: domain.RoleBody, Visible: true},
				{Name: "bottom", Length: domain.Expr("width - 2 * body_thickness"), Width: domain.Expr("depth"), MaterialRole: domain.RoleBody, Visible: true},
				{Name: "back", Length: domain.Expr("width"), Width: domain.Expr("height"), MaterialRole: domain.RoleBody, Visible: true},
			},
			Fronts: []domain.CabinetFront{
				{
					FrontType: domain.FrontHingedDoor,
					Width:     domain.Expr("width / 2 - 2"),
					Height:    domain.Expr("height - 4"),
					Quantity:  2,
					Visible:   true,
				},
			},
			Compartments: []domain.Compartment{
				{
					Width:  domain.Expr("width - 2 * body_thickness"),
					Height: domain.Expr("height - 2 * body_thickness"),
					Depth:  domain.Expr("depth - 20"),
					Items: []domain.CompartmentItem{
						{ItemType: domain.ItemShelf, Quantity: 1},
					},
				},
			},
			Hardware: []domain.ModelHardware{
				{Name: "Adjustable Leg", Quantity: domain.Num(4), UnitPrice: 1.2},
			},
			Labor: domain.LaborConfig{
				BaseMinutes:               60,
				PerPanelMinutes:           5,
				PerFrontMinutes:           10,
				PerCompartmentItemMinutes: 5,
				HourlyRate:                45,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestConfiguration builds a 600x720x560 configuration of the given model.
func NewTestConfiguration(modelID string) *domain.CabinetConfiguration {
	now := time.Now().UTC()
	return &domain.CabinetConfiguration{
		ID:        uuid.New().String(),
		ModelID:   modelID,
		Name:      "base-600",
		WidthMM:   600,
		HeightMM:  720,
		DepthMM:   560,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
