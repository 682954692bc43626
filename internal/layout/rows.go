package layout

import "github.com/jmaessen/furnish/internal/model"

// ResolvePositions computes cumulative shelf Y positions from a row-height
// sequence: the bottom and top of every row, starting at 0 and strictly
// increasing. The result has len(rows)+1 entries. O(n), pure.
func ResolvePositions(rows []model.RowHeight) []float64 {
	positions := make([]float64, len(rows)+1)
	y := 0.0
	for i, r := range rows {
		y += r.Value()
		positions[i+1] = y
	}
	return positions
}

// TotalHeight sums a row-height sequence in cm. It reads the same
// preset-value table as ResolvePositions and the validator's cross-field
// height check; the three must never diverge, and the row resolver tests
// assert TotalHeight(rows) == ResolvePositions(rows)[len(rows)].
func TotalHeight(rows []model.RowHeight) float64 {
	var total float64
	for _, r := range rows {
		total += r.Value()
	}
	return total
}
