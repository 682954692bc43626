package layout

import (
	"sync"
	"testing"

	"github.com/jmaessen/furnish/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ComputeCabinetEndToEnd(t *testing.T) {
	engine := Default()
	cfg := validCabinet(180, 210, 35)
	cfg.BackPanel = true
	cfg.Compartments.Set(0, 0, model.CompartmentDoor)
	cfg.Compartments.Set(1, 0, model.CompartmentDrawer)

	res, err := engine.Validate(cfg)
	require.NoError(t, err)
	require.True(t, res.OK(), "violations: %v", res.Violations)

	out, err := engine.Compute(res.Config)
	require.NoError(t, err)
	require.Empty(t, out.Violations)
	require.NotEmpty(t, out.Components)
	require.NotEmpty(t, out.Compartments)
	require.NotEmpty(t, out.Groups)

	counts := countByType(out.Components)
	assert.Equal(t, 1, counts[model.ComponentDoor])
	assert.Equal(t, 1, counts[model.ComponentDrawer])

	// Groups partition the component list exactly.
	var total int
	for _, g := range out.Groups {
		total += len(g.ComponentIDs)
	}
	assert.Equal(t, len(out.Components), total)
}

func TestEngine_CompartmentsReferenceEnclosingComponents(t *testing.T) {
	engine := Default()
	cfg := validCabinet(100, 140, 30)
	cfg.Compartments.Set(0, 0, model.CompartmentDoor)

	out, err := engine.Compute(cfg)
	require.NoError(t, err)

	byID := make(map[string]model.Component)
	for _, c := range out.Components {
		byID[c.ID] = c
	}

	for _, cell := range out.Compartments {
		require.NotEmpty(t, cell.ComponentIDs, "cell %d.%d has no enclosing components", cell.Row, cell.Col)
		for _, id := range cell.ComponentIDs {
			_, ok := byID[id]
			assert.True(t, ok, "cell references unknown component %s", id)
		}
	}
}

func TestEngine_DoorFrontsSitAtFrontFace(t *testing.T) {
	engine := Default()
	cfg := validCabinet(100, 140, 30)
	cfg.Compartments.Set(0, 1, model.CompartmentDoor)

	out, err := engine.Compute(cfg)
	require.NoError(t, err)

	pt, _ := engine.ProductType("cabinet")
	for _, c := range out.Components {
		if c.Type == model.ComponentDoor {
			_, max := c.Bounds()
			assert.InDelta(t, 30.0, max.Z, 1e-9, "door front flush with the carcass")
			assert.Equal(t, pt.PanelThickness, c.Size.Depth)
		}
	}
}

func TestEngine_ShallowDrawerRejectsWholeDerivation(t *testing.T) {
	engine := Default()
	cfg := validCabinet(100, 140, 21) // usable depth 19 < 20 minimum
	cfg.Compartments.Set(0, 0, model.CompartmentDrawer)

	out, err := engine.Compute(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, out.Violations)
	assert.Empty(t, out.Components, "derivation is all-or-nothing")
	assert.Empty(t, out.Compartments)
	assert.Empty(t, out.Groups)
}

func TestEngine_UnknownTypeAndStyleAreDomainErrors(t *testing.T) {
	engine := Default()

	cfg := validCabinet(100, 140, 30)
	cfg.ProductType = "wardrobe"
	_, err := engine.Compute(cfg)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)

	cfg = validCabinet(100, 140, 30)
	cfg.Style = "brutalist"
	_, err = engine.Compute(cfg)
	require.ErrorAs(t, err, &domainErr)
}

func TestEngine_TableComputeHasNoCompartments(t *testing.T) {
	engine := Default()
	cfg := model.DefaultConfiguration(model.KindTable)

	out, err := engine.Compute(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Components)
	assert.Empty(t, out.Compartments)
	assert.NotEmpty(t, out.Groups)
}

// The pipeline holds no shared mutable state, so concurrent previews of
// candidate configurations need no locking.
func TestEngine_ConcurrentComputeIsSafe(t *testing.T) {
	engine := Default()
	cfg := validCabinet(180, 210, 35)

	want, err := engine.Compute(cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := engine.Compute(cfg)
			assert.NoError(t, err)
			assert.Len(t, out.Components, len(want.Components))
		}()
	}
	wg.Wait()
}
