package layout

import (
	"fmt"
	"math"

	"github.com/jmaessen/furnish/internal/model"
)

// heightTolerance absorbs floating-point drift when comparing the
// configured height against the row-height sum, in cm.
const heightTolerance = 1e-6

// Result is the outcome of validating a configuration: either the
// validated configuration with no violations, or a non-empty violation
// list and nothing applied. Validation is all-or-nothing per call.
type Result struct {
	Config     model.Configuration `json:"config"`
	Violations []Violation         `json:"violations,omitempty"`
}

// OK reports whether the configuration passed every check.
func (r Result) OK() bool {
	return len(r.Violations) == 0
}

// Err returns the first violation as an error, or nil when validation
// passed. Convenient for callers that only need pass/fail.
func (r Result) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	return r.Violations[0]
}

// Validate checks a configuration against its product type's
// manufacturing rules. Checks run in a fixed order — dimension ranges,
// increment grids, cross-field height consistency, span rules, and
// compartment-type rules — and every failing check contributes a
// violation, so the caller sees the full list in one pass. Out-of-
// increment dimensions are rejected, not rounded; callers wanting
// round-to-nearest apply Range.Snap before validating. Pure.
func Validate(pt model.ProductType, styles *StyleSet, cfg model.Configuration) Result {
	var violations []Violation

	dims := cfg.Dimensions
	violations = append(violations, checkAxis(pt.Width, "width", dims.Width)...)
	violations = append(violations, checkAxis(pt.Height, "height", dims.Height)...)
	violations = append(violations, checkAxis(pt.Depth, "depth", dims.Depth)...)

	if pt.Kind == model.KindCabinet {
		violations = append(violations, checkRows(pt, cfg)...)
	}

	style, ok := styles.Get(cfg.Style)
	if !ok {
		violations = append(violations, violationf("style", "unknown style",
			fmt.Sprintf("one of %v", styles.Names()), cfg.Style))
	} else if pt.Kind == model.KindCabinet {
		violations = append(violations, checkSpans(pt, style, cfg)...)
		violations = append(violations, checkCompartmentTypes(pt, cfg)...)
	}

	if !pt.AllowsLegStyle(cfg.LegStyle) {
		violations = append(violations, violationf("leg_style", "leg style not offered for this product",
			fmt.Sprintf("%v", pt.LegStyles), cfg.LegStyle))
	}
	if cfg.LegStyle == model.LegPedestal && cfg.TopShape != model.ShapeRound {
		violations = append(violations, violationf("leg_style", "pedestal legs require a round top",
			model.ShapeRound, cfg.TopShape))
	}

	if len(violations) > 0 {
		return Result{Violations: violations}
	}
	return Result{Config: cfg}
}

func checkAxis(r model.Range, field string, v float64) []Violation {
	if !r.Contains(v) {
		return []Violation{violationf(field, "dimension outside allowed range",
			fmt.Sprintf("%g..%g cm", r.Min, r.Max), fmt.Sprintf("%g cm", v))}
	}
	if !r.OnStep(v) {
		return []Violation{violationf(field, "dimension not on increment grid",
			fmt.Sprintf("steps of %g cm from %g", r.Step, r.Min), fmt.Sprintf("%g cm", v))}
	}
	return nil
}

// checkRows enforces the cross-field rule between overall height and the
// row-height sequence: the sum of row heights must equal the configured
// height exactly. Row heights are the source of truth; callers editing
// the overall height re-derive the sequence via model.RowsForHeight.
func checkRows(pt model.ProductType, cfg model.Configuration) []Violation {
	var violations []Violation

	if len(cfg.RowHeights) == 0 {
		return []Violation{violationf("row_heights", "cabinet requires at least one row", ">= 1 row", 0)}
	}
	if pt.MaxRows > 0 && len(cfg.RowHeights) > pt.MaxRows {
		violations = append(violations, violationf("row_heights", "too many rows",
			fmt.Sprintf("<= %d rows", pt.MaxRows), len(cfg.RowHeights)))
	}

	for i, r := range cfg.RowHeights {
		if r.Value() <= 0 {
			violations = append(violations, violationf(
				fmt.Sprintf("row_heights[%d]", i), "row height must be positive",
				"> 0 cm", fmt.Sprintf("%g cm", r.Value())))
		}
	}

	total := TotalHeight(cfg.RowHeights)
	if total > pt.Height.Max+heightTolerance {
		violations = append(violations, violationf("row_heights", "row heights exceed maximum height",
			fmt.Sprintf("<= %g cm", pt.Height.Max), fmt.Sprintf("%g cm", total)))
	}
	if math.Abs(total-cfg.Dimensions.Height) > heightTolerance {
		violations = append(violations, violationf("row_heights", "row heights do not sum to configured height",
			fmt.Sprintf("%g cm", cfg.Dimensions.Height), fmt.Sprintf("%g cm", total)))
	}
	return violations
}

// checkSpans verifies the computed layout against the product's span
// rules: no divider gap below MinSpan, and no more columns than the type
// allows. Gaps above SupportSpan are not violations — the assembler adds
// support components for those instead.
func checkSpans(pt model.ProductType, style Style, cfg model.Configuration) []Violation {
	var violations []Violation

	inner := innerWidth(pt, cfg.Dimensions.Width)
	l := style.Layout(inner, len(cfg.RowHeights), cfg.Density)

	for r, row := range l.Rows {
		if pt.MaxColumns > 0 && len(row)+1 > pt.MaxColumns {
			violations = append(violations, violationf("density", "too many columns",
				fmt.Sprintf("<= %d columns", pt.MaxColumns), len(row)+1))
			break
		}
		prev := 0.0
		for _, x := range append(append([]float64(nil), row...), inner) {
			if gap := x - prev; len(row) > 0 && gap < pt.MinSpan-heightTolerance {
				violations = append(violations, violationf("density", "divider gap below minimum span",
					fmt.Sprintf(">= %g cm", pt.MinSpan), fmt.Sprintf("%.1f cm in row %d", gap, r)))
				break
			}
			prev = x
		}
	}
	return violations
}

// checkCompartmentTypes applies per-cell rules, e.g. drawers need the
// product depth to meet the type's minimum drawer depth.
func checkCompartmentTypes(pt model.ProductType, cfg model.Configuration) []Violation {
	var violations []Violation
	depth := cfg.Dimensions.Depth - pt.PanelThickness // usable depth behind the front face
	for r, row := range cfg.Compartments {
		for c, cell := range row {
			if cell == model.CompartmentDrawer && depth < pt.DrawerMinDepth {
				violations = append(violations, violationf(
					fmt.Sprintf("compartments[%d][%d]", r, c),
					"drawer requires more depth",
					fmt.Sprintf(">= %g cm", pt.DrawerMinDepth),
					fmt.Sprintf("%g cm", depth)))
			}
		}
	}
	return violations
}

// innerWidth is the usable width between the carcass side panels.
func innerWidth(pt model.ProductType, width float64) float64 {
	inner := width - 2*pt.PanelThickness
	if inner < 0 {
		return 0
	}
	return inner
}
