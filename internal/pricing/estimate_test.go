package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
)

func TestCalculate_SingleGroup(t *testing.T) {
	// One 100x200 cm panel: 2 m² face area.
	panel := model.NewComponent(model.ComponentPanel, "Side",
		model.Position3D{}, model.Size3D{Width: 100, Height: 200, Depth: 2},
		model.MaterialWood, model.ColorOak)

	components := []model.Component{panel}
	groups := []model.MaterialGroup{
		{Material: model.MaterialWood, Color: model.ColorOak, ComponentIDs: []string{panel.ID}},
	}

	prices := PriceTable{
		RatePerSqm:   map[model.Material]float64{model.MaterialWood: 100},
		WastePercent: 10,
	}

	est := Calculate(components, groups, prices)

	require.Len(t, est.Groups, 1)
	assert.InDelta(t, 2.0, est.Groups[0].AreaSqm, 1e-9)
	// 2 m² x 100/m² x 1.10 waste
	assert.InDelta(t, 220.0, est.MaterialCost, 1e-9)
	assert.Zero(t, est.Surcharges)
	assert.InDelta(t, 220.0, est.Total, 1e-9)
}

func TestCalculate_Surcharges(t *testing.T) {
	leg := model.NewComponent(model.ComponentLeg, "Leg FL",
		model.Position3D{}, model.Size3D{Width: 6, Height: 71, Depth: 6},
		model.MaterialMetal, model.ColorBlack)
	door := model.NewComponent(model.ComponentDoor, "Door 0.1",
		model.Position3D{}, model.Size3D{Width: 40, Height: 30, Depth: 2},
		model.MaterialWood, model.ColorOak)
	drawer := model.NewComponent(model.ComponentDrawer, "Drawer 1.1",
		model.Position3D{}, model.Size3D{Width: 40, Height: 30, Depth: 2},
		model.MaterialWood, model.ColorOak)

	prices := PriceTable{
		RatePerSqm:      map[model.Material]float64{},
		LegSurcharge:    18,
		DoorSurcharge:   25,
		DrawerSurcharge: 40,
	}

	est := Calculate([]model.Component{leg, door, drawer}, nil, prices)

	assert.InDelta(t, 83.0, est.Surcharges, 1e-9)
	assert.InDelta(t, 83.0, est.Total, 1e-9)
}

func TestCalculate_UnknownMaterialPricesAtZero(t *testing.T) {
	panel := model.NewComponent(model.ComponentPanel, "Top",
		model.Position3D{}, model.Size3D{Width: 50, Height: 50, Depth: 2},
		model.Material("carbon"), model.ColorBlack)
	groups := []model.MaterialGroup{
		{Material: "carbon", Color: model.ColorBlack, ComponentIDs: []string{panel.ID}},
	}

	est := Calculate([]model.Component{panel}, groups, DefaultPrices())

	require.Len(t, est.Groups, 1)
	assert.Zero(t, est.Groups[0].Cost)
	assert.Greater(t, est.Groups[0].AreaSqm, 0.0)
}

func TestCalculate_AssembledCabinet(t *testing.T) {
	engine := layout.Default()
	cfg := model.DefaultConfiguration(model.KindCabinet)

	result, err := engine.Compute(cfg)
	require.NoError(t, err)
	require.Empty(t, result.Violations)

	est := Calculate(result.Components, result.Groups, DefaultPrices())

	assert.Greater(t, est.MaterialCost, 0.0)
	assert.Equal(t, len(result.Groups), len(est.Groups))
	assert.GreaterOrEqual(t, est.Total, est.MaterialCost)
}

func TestCalculate_Deterministic(t *testing.T) {
	engine := layout.Default()
	cfg := model.DefaultConfiguration(model.KindTable)

	result, err := engine.Compute(cfg)
	require.NoError(t, err)

	a := Calculate(result.Components, result.Groups, DefaultPrices())
	b := Calculate(result.Components, result.Groups, DefaultPrices())
	assert.Equal(t, a, b)
}
