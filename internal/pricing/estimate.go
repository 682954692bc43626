// Package pricing computes cost estimates for an assembled product. The
// estimate is derived purely from the component list: per-material surface
// area priced from a rate table, flat surcharges for hardware-bearing
// components, and a waste factor on raw material.
package pricing

import (
	"math"

	"github.com/jmaessen/furnish/internal/model"
)

// PriceTable holds per-material rates and component surcharges. All money
// values are in whole currency units; area rates are per square meter.
type PriceTable struct {
	RatePerSqm map[model.Material]float64 `json:"rate_per_sqm"`

	LegSurcharge    float64 `json:"leg_surcharge"`
	DoorSurcharge   float64 `json:"door_surcharge"`
	DrawerSurcharge float64 `json:"drawer_surcharge"`

	// WastePercent is the raw material overage applied to panel area,
	// e.g. 15 for 15%.
	WastePercent float64 `json:"waste_percent"`
}

// DefaultPrices returns the built-in rate table.
func DefaultPrices() PriceTable {
	return PriceTable{
		RatePerSqm: map[model.Material]float64{
			model.MaterialWood:  92,
			model.MaterialMDF:   38,
			model.MaterialMetal: 120,
			model.MaterialGlass: 145,
		},
		LegSurcharge:    18,
		DoorSurcharge:   25,
		DrawerSurcharge: 40,
		WastePercent:    15,
	}
}

// GroupCost is the priced share of one material group.
type GroupCost struct {
	Material model.Material `json:"material"`
	Color    model.Color    `json:"color"`
	AreaSqm  float64        `json:"area_sqm"`
	Cost     float64        `json:"cost"`
}

// Estimate is the cost breakdown for one assembled product.
type Estimate struct {
	Groups       []GroupCost `json:"groups"`
	MaterialCost float64     `json:"material_cost"`
	Surcharges   float64     `json:"surcharges"`
	Total        float64     `json:"total"`
	WastePercent float64     `json:"waste_percent"`
}

const sqcmPerSqm = 10000.0

// Calculate prices a component list. Material cost is the largest-face area
// of every component in a group, times the material rate, times the waste
// factor. Legs, doors, and drawers additionally carry flat surcharges for
// their hardware. Unknown materials price at rate zero rather than failing;
// the caller sees the zero-cost group in the breakdown.
func Calculate(components []model.Component, groups []model.MaterialGroup, prices PriceTable) Estimate {
	byID := make(map[string]model.Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	wasteFactor := 1.0 + prices.WastePercent/100.0

	est := Estimate{WastePercent: prices.WastePercent}
	for _, g := range groups {
		var area float64
		for _, id := range g.ComponentIDs {
			if c, ok := byID[id]; ok {
				area += c.FaceArea()
			}
		}
		areaSqm := area / sqcmPerSqm
		cost := round2(areaSqm * prices.RatePerSqm[g.Material] * wasteFactor)
		est.Groups = append(est.Groups, GroupCost{
			Material: g.Material,
			Color:    g.Color,
			AreaSqm:  areaSqm,
			Cost:     cost,
		})
		est.MaterialCost += cost
	}

	for _, c := range components {
		switch c.Type {
		case model.ComponentLeg:
			est.Surcharges += prices.LegSurcharge
		case model.ComponentDoor:
			est.Surcharges += prices.DoorSurcharge
		case model.ComponentDrawer:
			est.Surcharges += prices.DrawerSurcharge
		}
	}

	est.Total = round2(est.MaterialCost + est.Surcharges)
	return est
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
