package model

import "fmt"

// ChangeType represents the kind of change between two reads of a window.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// UIChange represents a single change between two reads.
type UIChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Element *FlatElement         `yaml:"el,omitempty"      json:"el,omitempty"`      // added: the new element
	ID      int                  `yaml:"id,omitempty"      json:"id,omitempty"`      // removed/changed
	Role    string               `yaml:"r,omitempty"       json:"r,omitempty"`       // removed
	Name    string               `yaml:"n,omitempty"       json:"n,omitempty"`       // removed
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // changed: field -> [before, after]
}

// DiffElements compares two flat element lists and returns the changes.
// Elements are matched by ID, which is the depth-first traversal index, so a
// control moving to another child index shows up as a path change.
func DiffElements(prev, curr []FlatElement) []UIChange {
	prevMap := make(map[int]FlatElement, len(prev))
	for _, el := range prev {
		prevMap[el.ID] = el
	}
	currMap := make(map[int]FlatElement, len(curr))
	for _, el := range curr {
		currMap[el.ID] = el
	}

	var changes []UIChange
	for _, el := range curr {
		prevEl, existed := prevMap[el.ID]
		if !existed {
			elCopy := el
			changes = append(changes, UIChange{Type: ChangeAdded, Element: &elCopy})
			continue
		}
		if diffs := diffProperties(prevEl, el); diffs != nil {
			changes = append(changes, UIChange{Type: ChangeChanged, ID: el.ID, Changes: diffs})
		}
	}

	for _, el := range prev {
		if _, exists := currMap[el.ID]; !exists {
			changes = append(changes, UIChange{Type: ChangeRemoved, ID: el.ID, Role: el.Role, Name: el.Name})
		}
	}
	return changes
}

// diffProperties compares two elements and returns changed fields.
func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)
	if prev.Name != curr.Name {
		diffs["n"] = [2]string{prev.Name, curr.Name}
	}
	if prev.Role != curr.Role {
		diffs["r"] = [2]string{prev.Role, curr.Role}
	}
	if prev.Path != curr.Path {
		diffs["p"] = [2]string{prev.Path, curr.Path}
	}
	if prev.Bounds != curr.Bounds {
		diffs["b"] = [2]string{fmt.Sprint(prev.Bounds), fmt.Sprint(curr.Bounds)}
	}
	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
