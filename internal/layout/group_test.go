package layout

import (
	"testing"

	"github.com/jmaessen/furnish/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByMaterial_FirstSeenOrder(t *testing.T) {
	components := []model.Component{
		model.NewComponent(model.ComponentShelf, "A", model.Position3D{}, model.Size3D{}, model.MaterialWood, model.ColorOak),
		model.NewComponent(model.ComponentShelf, "B", model.Position3D{}, model.Size3D{}, model.MaterialWood, model.ColorOak),
		model.NewComponent(model.ComponentDivider, "C", model.Position3D{}, model.Size3D{}, model.MaterialWood, model.ColorWalnut),
	}

	groups := GroupByMaterial(components)

	require.Len(t, groups, 2)
	assert.Equal(t, model.ColorOak, groups[0].Color)
	assert.Len(t, groups[0].ComponentIDs, 2)
	assert.Equal(t, model.ColorWalnut, groups[1].Color)
	assert.Len(t, groups[1].ComponentIDs, 1)
}

func TestGroupByMaterial_PartitionsExactly(t *testing.T) {
	cfg := validCabinet(180, 210, 35)
	cfg.AccentMaterial = model.MaterialMetal
	cfg.AccentColor = model.ColorBlack
	components := assembleCabinetFor(t, cfg)

	groups := GroupByMaterial(components)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, id := range g.ComponentIDs {
			seen[id]++
		}
	}
	assert.Len(t, seen, len(components), "every component id appears")
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s must appear exactly once", id)
	}
}

func TestGroupByMaterial_StableAcrossReruns(t *testing.T) {
	components := []model.Component{
		model.NewComponent(model.ComponentShelf, "A", model.Position3D{}, model.Size3D{}, model.MaterialMDF, model.ColorWhite),
		model.NewComponent(model.ComponentLeg, "B", model.Position3D{}, model.Size3D{}, model.MaterialMetal, model.ColorBlack),
		model.NewComponent(model.ComponentShelf, "C", model.Position3D{}, model.Size3D{}, model.MaterialMDF, model.ColorWhite),
	}

	a := GroupByMaterial(components)
	b := GroupByMaterial(components)
	assert.Equal(t, a, b)
}

func TestGroupByMaterial_Empty(t *testing.T) {
	assert.Empty(t, GroupByMaterial(nil))
}
