package layout

import (
	"math"
	"sort"

	"github.com/jmaessen/furnish/internal/model"
)

// DividerLayout holds the computed divider positions for every row of a
// product. Positions are divider center X coordinates in cm, ascending,
// measured from the left face of the carcass.
type DividerLayout struct {
	// Rows has one position slice per structural row. Styles with uniform
	// columns repeat the same positions in every row; asymmetric and
	// mosaic styles vary them.
	Rows [][]float64 `json:"rows"`

	// StaggerFraction is the vertical shelf offset applied to alternate
	// rows, as a fraction of the row height. Zero for non-staggered styles.
	StaggerFraction float64 `json:"stagger_fraction,omitempty"`
}

// Row returns the divider positions for a row, or nil when out of range.
func (l DividerLayout) Row(r int) []float64 {
	if r < 0 || r >= len(l.Rows) {
		return nil
	}
	return l.Rows[r]
}

// Columns returns the compartment column count for a row.
func (l DividerLayout) Columns(r int) int {
	return len(l.Row(r)) + 1
}

// WidestGap returns the largest open span in cm across all rows, edge
// gaps included. It drives the support-component rule.
func (l DividerLayout) WidestGap(width float64) float64 {
	if len(l.Rows) == 0 {
		return width
	}
	widest := 0.0
	for _, row := range l.Rows {
		prev := 0.0
		for _, x := range row {
			if gap := x - prev; gap > widest {
				widest = gap
			}
			prev = x
		}
		if gap := width - prev; gap > widest {
			widest = gap
		}
	}
	return widest
}

// Style is one named layout strategy: a pure function from (width, rows,
// density) to divider positions, plus its spacing parameters. Instances
// are immutable and owned by a StyleSet.
type Style struct {
	Name   string
	MinGap float64 // narrowest allowed gap between dividers, cm
	MaxGap float64 // widest allowed gap, cm

	// targetGaps maps density (low, medium, high) to the preferred gap.
	targetGaps [3]float64

	generate func(s Style, width float64, rows int, density model.Density) DividerLayout
}

// TargetGap returns the preferred gap in cm for a density level.
func (s Style) TargetGap(d model.Density) float64 {
	if d < model.DensityLow || d > model.DensityHigh {
		d = model.DensityMedium
	}
	return s.targetGaps[d]
}

// DividerCount computes how many dividers fit a width at a density: the
// count whose uniform gap width/(count+1) lies within [MinGap, MaxGap] and
// is closest to the density's target gap. When the width cannot fit even a
// single divider at MinGap the count is zero (one open compartment); the
// MinGap bound always wins over MaxGap when the two conflict.
func (s Style) DividerCount(width float64, density model.Density) int {
	if width < 2*s.MinGap {
		return 0
	}
	nMax := int(math.Floor(width/s.MinGap)) - 1
	nMin := 0
	if s.MaxGap > 0 {
		nMin = int(math.Ceil(width/s.MaxGap)) - 1
		if nMin < 0 {
			nMin = 0
		}
	}
	n := int(math.Round(width/s.TargetGap(density) - 1))
	if n < nMin {
		n = nMin
	}
	if n > nMax {
		n = nMax
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Layout computes the divider positions for all rows. Pure: two calls with
// identical inputs yield identical output.
func (s Style) Layout(width float64, rows int, density model.Density) DividerLayout {
	if rows < 1 {
		rows = 1
	}
	return s.generate(s, width, rows, density)
}

// uniformPositions spreads n dividers evenly across the width.
func uniformPositions(width float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	gap := width / float64(n+1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = gap * float64(i+1)
	}
	return xs
}

// weightedPositions places dividers so consecutive gaps follow the given
// weights (cycled), normalized to the width.
func weightedPositions(width float64, n int, weights []float64) []float64 {
	if n <= 0 {
		return nil
	}
	gaps := make([]float64, n+1)
	var sum float64
	for i := range gaps {
		gaps[i] = weights[i%len(weights)]
		sum += gaps[i]
	}
	xs := make([]float64, n)
	x := 0.0
	for i := 0; i < n; i++ {
		x += gaps[i] / sum * width
		xs[i] = x
	}
	return xs
}

// mirrored flips positions across the vertical centerline.
func mirrored(width float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = width - x
	}
	return out
}

// repeatRows fills every row with the same positions.
func repeatRows(rows int, xs []float64) [][]float64 {
	all := make([][]float64, rows)
	for r := range all {
		all[r] = append([]float64(nil), xs...)
	}
	return all
}

func generateGrid(s Style, width float64, rows int, density model.Density) DividerLayout {
	n := s.DividerCount(width, density)
	return DividerLayout{Rows: repeatRows(rows, uniformPositions(width, n))}
}

// generateAsymmetric alternates wide and narrow gaps in a golden-ratio
// split, mirrored on odd rows. The pattern is fixed, never random.
func generateAsymmetric(s Style, width float64, rows int, density model.Density) DividerLayout {
	n := s.DividerCount(width, density)
	base := weightedPositions(width, n, []float64{1.30, 0.70})
	all := make([][]float64, rows)
	for r := range all {
		if r%2 == 1 {
			all[r] = mirrored(width, base)
		} else {
			all[r] = append([]float64(nil), base...)
		}
	}
	return DividerLayout{Rows: all}
}

func staggerGenerator(fraction float64) func(Style, float64, int, model.Density) DividerLayout {
	return func(s Style, width float64, rows int, density model.Density) DividerLayout {
		l := generateGrid(s, width, rows, density)
		l.StaggerFraction = fraction
		return l
	}
}

// generatePattern uses the reduced minimal counts but drops every second
// divider on odd rows, producing an open repeating motif.
func generatePattern(s Style, width float64, rows int, density model.Density) DividerLayout {
	n := s.DividerCount(width, density)
	base := uniformPositions(width, n)
	all := make([][]float64, rows)
	for r := range all {
		if r%2 == 1 {
			var kept []float64
			for i, x := range base {
				if i%2 == 0 {
					kept = append(kept, x)
				}
			}
			all[r] = kept
		} else {
			all[r] = append([]float64(nil), base...)
		}
	}
	return DividerLayout{Rows: all}
}

// generateMosaic varies the column count per row in a fixed cycle
// (base, base-1, base+1), each row spread uniformly.
func generateMosaic(s Style, width float64, rows int, density model.Density) DividerLayout {
	n := s.DividerCount(width, density)
	deltas := []int{0, -1, 1}
	all := make([][]float64, rows)
	for r := range all {
		count := n + deltas[r%len(deltas)]
		if count < 0 {
			count = 0
		}
		if gap := width / float64(count+1); count > 0 && gap < s.MinGap {
			count = n
		}
		all[r] = uniformPositions(width, count)
	}
	return DividerLayout{Rows: all}
}

// generateGradient widens gaps geometrically from left to right,
// normalized so they exactly fill the width.
func generateGradient(s Style, width float64, rows int, density model.Density) DividerLayout {
	n := s.DividerCount(width, density)
	const ratio = 1.3
	weights := make([]float64, n+1)
	w := 1.0
	for i := range weights {
		weights[i] = w
		w *= ratio
	}
	return DividerLayout{Rows: repeatRows(rows, weightedPositions(width, n, weights))}
}

// StyleSet is the immutable registry of named layout strategies. It is
// built once at startup and injected into the engine; nothing in this
// package reaches for ambient global state.
type StyleSet struct {
	styles map[string]Style
}

// NewStyleSet builds a registry from the given styles.
func NewStyleSet(styles ...Style) *StyleSet {
	set := &StyleSet{styles: make(map[string]Style, len(styles))}
	for _, s := range styles {
		set.styles[s.Name] = s
	}
	return set
}

// Get looks up a style by name.
func (set *StyleSet) Get(name string) (Style, bool) {
	s, ok := set.styles[name]
	return s, ok
}

// Names returns the registered style names, sorted.
func (set *StyleSet) Names() []string {
	names := make([]string, 0, len(set.styles))
	for name := range set.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultStyles returns the built-in style registry.
func DefaultStyles() *StyleSet {
	standard := [3]float64{60, 40, 25} // target gaps: low, medium, high density
	sparse := [3]float64{90, 70, 50}   // reduced divider counts for minimal looks

	return NewStyleSet(
		Style{Name: "grid", MinGap: 15, MaxGap: 90, targetGaps: standard, generate: generateGrid},
		Style{Name: "asymmetric", MinGap: 15, MaxGap: 90, targetGaps: standard, generate: generateAsymmetric},
		Style{Name: "staggered", MinGap: 15, MaxGap: 90, targetGaps: standard, generate: staggerGenerator(0.5)},
		Style{Name: "slant", MinGap: 15, MaxGap: 90, targetGaps: standard, generate: staggerGenerator(0.25)},
		Style{Name: "minimal", MinGap: 25, MaxGap: 120, targetGaps: sparse, generate: generateGrid},
		Style{Name: "pattern", MinGap: 25, MaxGap: 120, targetGaps: sparse, generate: generatePattern},
		Style{Name: "mosaic", MinGap: 15, MaxGap: 90, targetGaps: standard, generate: generateMosaic},
		Style{Name: "gradient", MinGap: 15, MaxGap: 90, targetGaps: standard, generate: generateGradient},
	)
}
