package costing

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseCabinet builds a two-door base cabinet with one shelf compartment and
// hinge hardware, the shape most of the engine tests work against.
func baseCabinet() Input {
	waste := 1.10
	return Input{
		Config: &domain.CabinetConfiguration{
			ID:       "cfg-1",
			WidthMM:  600,
			HeightMM: 720,
			DepthMM:  560,
			Materials: domain.MaterialConfig{
				BodyMaterialID:  "mat-body",
				DoorMaterialID:  "mat-door",
				ShelfMaterialID: "mat-shelf",
			},
		},
		Params: domain.ModelParameters{
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
					Hardware: []domain.FrontHardware{
						{ProductID: "prod-hinge", Quantity: domain.Expr("door_count * 2")},
					},
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
		BodyMaterial:  &domain.Material{ID: "mat-body", Name: "White Melamine", CostPerSqm: 12, WasteFactor: &waste},
		DoorMaterial:  &domain.Material{ID: "mat-door", Name: "Oak Veneer MDF", CostPerSqm: 38},
		ShelfMaterial: &domain.Material{ID: "mat-shelf", Name: "White Melamine", CostPerSqm: 12},
		Prices: map[string]domain.Product{
			"prod-hinge": {ID: "prod-hinge", Name: "Soft-Close Hinge", UnitPrice: 3.1},
		},
		Defaults: StandardDefaults(),
	}
}

func TestCompute_FullBreakdown(t *testing.T) {
	result, err := Compute(baseCabinet())
	require.NoError(t, err)
	require.Empty(t, result.Warnings)

	b := result.Breakdown

	assert.Greater(t, b.MaterialsCost, 0.0)
	assert.Greater(t, b.HardwareCost, 0.0)
	assert.Greater(t, b.LaborCost, 0.0)
	assert.Greater(t, b.MaterialAreas.Body, 0.0)
	assert.Greater(t, b.MaterialAreas.Door, 0.0)
	assert.Greater(t, b.MaterialAreas.Shelf, 0.0)

	// 60 base + 4*5 panels + 2*10 fronts + 1*5 shelf.
	assert.InDelta(t, 105.0, b.LaborMinutes, 1e-9)
	assert.Equal(t, 78.75, b.LaborCost)

	// Leg line, then hinge line resolved from the catalog.
	require.Len(t, b.HardwareItems, 2)
	assert.Equal(t, "Adjustable Leg", b.HardwareItems[0].Name)
	assert.Equal(t, 4, b.HardwareItems[0].Quantity)
	assert.Equal(t, "Soft-Close Hinge", b.HardwareItems[1].Name)
	// door_count is 1 here: quantity 2 on a single front entry does not raise it.
	assert.Equal(t, 2, b.HardwareItems[1].Quantity)

	assert.InDelta(t, b.Subtotal*b.OverheadPercentage/100, b.OverheadCost, 0.01)
	assert.InDelta(t, b.Subtotal+b.OverheadCost, b.TotalCost, 0.01)
}

func TestCompute_Idempotent(t *testing.T) {
	in := baseCabinet()
	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_MissingDimensionsIsHardError(t *testing.T) {
	in := baseCabinet()
	in.Config.HeightMM = 0

	_, err := Compute(in)

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCompute_NilConfigIsHardError(t *testing.T) {
	in := baseCabinet()
	in.Config = nil
	_, err := Compute(in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCompute_MalformedFormulaDegradesNotAborts(t *testing.T) {
	in := baseCabinet()
	in.Params.Panels[0].Length = domain.Expr("height +* 2")

	result, err := Compute(in)

	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0].Location, "left side")
	// The rest of the breakdown still computes.
	assert.Greater(t, result.Breakdown.TotalCost, 0.0)
}

func TestCompute_MissingMaterialsStillComputes(t *testing.T) {
	in := baseCabinet()
	in.BodyMaterial = nil
	in.DoorMaterial = nil
	in.ShelfMaterial = nil

	result, err := Compute(in)

	require.NoError(t, err)
	assert.Greater(t, result.Breakdown.HardwareCost, 0.0)
	assert.Greater(t, result.Breakdown.LaborCost, 0.0)
}

func TestCompute_AllValuesNonNegative(t *testing.T) {
	result, err := Compute(baseCabinet())
	require.NoError(t, err)
	b := result.Breakdown

	for name, v := range map[string]float64{
		"materials": b.MaterialsCost,
		"hardware":  b.HardwareCost,
		"labor":     b.LaborCost,
		"minutes":   b.LaborMinutes,
		"subtotal":  b.Subtotal,
		"overhead":  b.OverheadCost,
		"total":     b.TotalCost,
		"body":      b.MaterialAreas.Body,
		"door":      b.MaterialAreas.Door,
		"shelf":     b.MaterialAreas.Shelf,
	} {
		assert.GreaterOrEqual(t, v, 0.0, "%s must be non-negative", name)
	}
}

// TestRollup_TotalMonotonicity property-tests the rollup invariant: the
// total never decreases when any one cost stream or the overhead percentage
// grows while the others hold still.
func TestRollup_TotalMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		materials := rng.Float64() * 500
		hardware := rng.Float64() * 200
		labor := rng.Float64() * 300
		overhead := rng.Float64() * 30
		bump := rng.Float64()*100 + 0.05

		base := Rollup(materials, hardware, labor, overhead).TotalCost

		assert.GreaterOrEqual(t, Rollup(materials+bump, hardware, labor, overhead).TotalCost, base,
			"trial %d: total must not decrease with materials cost", trial)
		assert.GreaterOrEqual(t, Rollup(materials, hardware+bump, labor, overhead).TotalCost, base,
			"trial %d: total must not decrease with hardware cost", trial)
		assert.GreaterOrEqual(t, Rollup(materials, hardware, labor+bump, overhead).TotalCost, base,
			"trial %d: total must not decrease with labor cost", trial)
		assert.GreaterOrEqual(t, Rollup(materials, hardware, labor, overhead+1).TotalCost, base,
			"trial %d: total must not decrease with overhead percentage", trial)
	}
}
