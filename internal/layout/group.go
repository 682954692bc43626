package layout

import "github.com/jmaessen/furnish/internal/model"

// GroupByMaterial partitions components by their (material, color) pair.
// Groups appear in first-seen order of the key, so reruns on identical
// component lists produce identical output. Every component id lands in
// exactly one group. O(n), pure.
func GroupByMaterial(components []model.Component) []model.MaterialGroup {
	type key struct {
		mat model.Material
		col model.Color
	}
	index := make(map[key]int, len(components))
	var groups []model.MaterialGroup

	for _, c := range components {
		k := key{mat: c.Material, col: c.Color}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, model.MaterialGroup{Material: c.Material, Color: c.Color})
		}
		groups[i].ComponentIDs = append(groups[i].ComponentIDs, c.ID)
	}
	return groups
}
