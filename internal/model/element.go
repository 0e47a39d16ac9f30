package model

// Element represents a UI element in the host accessibility tree.
type Element struct {
	ID       int       `yaml:"i"           json:"i"`           // Stable identifier within one tree source
	Role     string    `yaml:"r"           json:"r"`           // Abbreviated role code
	Name     string    `yaml:"n,omitempty" json:"n,omitempty"` // Display name
	Bounds   [4]int    `yaml:"b"           json:"b"`           // [x, y, width, height]
	Actions  []string  `yaml:"a,omitempty" json:"a,omitempty"` // Available actions
	Children []Element `yaml:"c,omitempty" json:"c,omitempty"` // Child elements
}

// Width returns the on-screen width of the element.
func (e *Element) Width() int { return e.Bounds[2] }

// Height returns the on-screen height of the element.
func (e *Element) Height() int { return e.Bounds[3] }

// Left returns the horizontal screen position of the element.
func (e *Element) Left() int { return e.Bounds[0] }

// Center returns the screen-absolute centre point of the element.
func (e *Element) Center() (x, y int) {
	return e.Bounds[0] + e.Bounds[2]/2, e.Bounds[1] + e.Bounds[3]/2
}

// ChildCount returns the number of direct children.
func (e *Element) ChildCount() int { return len(e.Children) }

// Child descends a fixed child-index path and returns the element at its end.
// It returns nil as soon as an index is out of range.
func (e *Element) Child(path ...int) *Element {
	cur := e
	for _, idx := range path {
		if idx < 0 || idx >= len(cur.Children) {
			return nil
		}
		cur = &cur.Children[idx]
	}
	return cur
}

// Contains reports whether the point (x, y) lies inside the element bounds.
func (e *Element) Contains(x, y int) bool {
	return x >= e.Bounds[0] && x < e.Bounds[0]+e.Bounds[2] &&
		y >= e.Bounds[1] && y < e.Bounds[1]+e.Bounds[3]
}

// HasAction reports whether the element exposes the named action.
func (e *Element) HasAction(action string) bool {
	for _, a := range e.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// SameElement reports whether a and b refer to the same host element.
// Host trees are re-read on every lookup, so identity is by ID, not pointer.
func SameElement(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// FindByID searches the element tree recursively for an element with the given ID.
func FindByID(root *Element, id int) *Element {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for i := range root.Children {
		if found := FindByID(&root.Children[i], id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the direct parent of the element with the given ID, or nil.
func FindParent(root *Element, id int) *Element {
	if root == nil {
		return nil
	}
	for i := range root.Children {
		if root.Children[i].ID == id {
			return root
		}
		if found := FindParent(&root.Children[i], id); found != nil {
			return found
		}
	}
	return nil
}

// Ancestor walks up n levels from the element with the given ID.
func Ancestor(root *Element, id, n int) *Element {
	cur := id
	var el *Element
	for i := 0; i < n; i++ {
		el = FindParent(root, cur)
		if el == nil {
			return nil
		}
		cur = el.ID
	}
	return el
}
