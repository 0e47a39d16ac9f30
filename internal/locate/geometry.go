package locate

import "github.com/mj1618/captvty-nav/internal/model"

// FindByWidth returns the first direct child of root whose on-screen width is
// exactly width, or nil. The target application lays out its panes at fixed
// pixel widths, so no tolerance is applied.
func FindByWidth(root *model.Element, width int) *model.Element {
	if root == nil {
		return nil
	}
	for i := range root.Children {
		if root.Children[i].Width() == width {
			return &root.Children[i]
		}
	}
	return nil
}
