package costing

import (
	"testing"

	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateLabor_FullCount(t *testing.T) {
	cfg := domain.LaborConfig{
		BaseMinutes:               60,
		PerPanelMinutes:           5,
		PerFrontMinutes:           10,
		PerCompartmentItemMinutes: 5,
		HourlyRate:                45,
	}
	panels := []domain.ParametricPanel{
		{Name: "left", Visible: true},
		{Name: "right", Visible: true},
		{Name: "top", Visible: true},
		{Name: "bottom", Visible: true},
	}
	fronts := []domain.CabinetFront{
		{FrontType: domain.FrontHingedDoor, Quantity: 1, Visible: true},
		{FrontType: domain.FrontDrawerFront, Quantity: 2, Visible: true},
	}
	compartments := []domain.Compartment{
		{Items: []domain.CompartmentItem{
			{ItemType: domain.ItemShelf, Quantity: 2},
			{ItemType: domain.ItemVerticalDivider, Quantity: 1},
		}},
	}

	est := EstimateLabor(panels, fronts, compartments, cfg)

	// 60 base + 4*5 panels + 3*10 fronts + 3*5 items
	assert.InDelta(t, 125.0, est.Minutes, 1e-9)
	assert.InDelta(t, 93.75, est.Cost, 1e-9)
}

func TestEstimateLabor_InvisiblePiecesExcluded(t *testing.T) {
	cfg := domain.LaborConfig{PerPanelMinutes: 5, PerFrontMinutes: 10, HourlyRate: 60}
	panels := []domain.ParametricPanel{
		{Name: "visible", Visible: true},
		{Name: "hidden", Visible: false},
	}
	fronts := []domain.CabinetFront{
		{Quantity: 2, Visible: false},
	}

	est := EstimateLabor(panels, fronts, nil, cfg)

	assert.InDelta(t, 5.0, est.Minutes, 1e-9)
	assert.InDelta(t, 5.0, est.Cost, 1e-9)
}

func TestEstimateLabor_EmptyModelIsBaseOnly(t *testing.T) {
	cfg := domain.LaborConfig{BaseMinutes: 30, HourlyRate: 40}
	est := EstimateLabor(nil, nil, nil, cfg)
	assert.InDelta(t, 30.0, est.Minutes, 1e-9)
	assert.InDelta(t, 20.0, est.Cost, 1e-9)
}
