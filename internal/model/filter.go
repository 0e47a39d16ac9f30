package model

import "strings"

// FlatFilter selects flattened elements. Zero fields match everything.
type FlatFilter struct {
	Roles []string // role codes, e.g. "btn"
	Text  string   // case-insensitive substring of the name
	Width int      // exact width, as the geometric locators compare it
	BBox  *[4]int  // elements intersecting this [x, y, w, h] rectangle
}

// Empty reports whether f matches every element.
func (f FlatFilter) Empty() bool {
	return len(f.Roles) == 0 && f.Text == "" && f.Width == 0 && f.BBox == nil
}

// Match reports whether el passes every set criterion.
func (f FlatFilter) Match(el FlatElement) bool {
	if len(f.Roles) > 0 {
		found := false
		for _, r := range f.Roles {
			if r == el.Role {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Text != "" && !strings.Contains(strings.ToLower(el.Name), strings.ToLower(f.Text)) {
		return false
	}
	if f.Width != 0 && el.Bounds[2] != f.Width {
		return false
	}
	if f.BBox != nil && !boundsIntersect(el.Bounds, *f.BBox) {
		return false
	}
	return true
}

// FilterFlat returns the elements matching f. Paths are kept, so the result
// still shows where each match sits in the tree.
func FilterFlat(elements []FlatElement, f FlatFilter) []FlatElement {
	if f.Empty() {
		return elements
	}
	var result []FlatElement
	for _, el := range elements {
		if f.Match(el) {
			result = append(result, el)
		}
	}
	return result
}

// boundsIntersect checks if two [x, y, width, height] rectangles overlap.
func boundsIntersect(a, b [4]int) bool {
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}
