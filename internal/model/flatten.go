package model

import "strconv"

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID     int    `yaml:"i"           json:"i"`
	Role   string `yaml:"r"           json:"r"`
	Name   string `yaml:"n,omitempty" json:"n,omitempty"`
	Bounds [4]int `yaml:"b"           json:"b"`
	Path   string `yaml:"p"           json:"p"`
}

// FlattenElements converts a tree of elements into a flat list.
// Each element gets a path of child indices from the root, e.g. "4/3/0/1".
// The indices are the ones the fixed-path heuristics descend through.
// A maxDepth of 0 means unlimited.
func FlattenElements(root *Element, maxDepth int) []FlatElement {
	var result []FlatElement
	flattenRecursive(root, "", 0, maxDepth, &result)
	return result
}

func flattenRecursive(el *Element, path string, depth, maxDepth int, result *[]FlatElement) {
	*result = append(*result, FlatElement{
		ID:     el.ID,
		Role:   el.Role,
		Name:   el.Name,
		Bounds: el.Bounds,
		Path:   path,
	})
	if maxDepth > 0 && depth >= maxDepth {
		return
	}
	for i := range el.Children {
		childPath := strconv.Itoa(i)
		if path != "" {
			childPath = path + "/" + childPath
		}
		flattenRecursive(&el.Children[i], childPath, depth+1, maxDepth, result)
	}
}
