// Package navigate brings off-screen elements into view by scrolling their
// container and clicks them with simulated pointer input.
package navigate

import (
	"context"
	"errors"
	"fmt"

	"github.com/mj1618/captvty-nav/internal/logging"
	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/platform"
	"github.com/sirupsen/logrus"
)

// Offset is a pixel displacement applied to an element centre before clicking.
type Offset struct {
	X, Y int
}

// Navigator drives scroll and click sequences against the host.
type Navigator struct {
	Reader   platform.Reader
	Inputter platform.Inputter
	Step     int // wheel delta per scroll attempt
	Log      logrus.FieldLogger
}

// New returns a Navigator using the provider's reader and inputter.
func New(p *platform.Provider, step int) *Navigator {
	if step <= 0 {
		step = 1
	}
	return &Navigator{
		Reader:   p.Reader,
		Inputter: p.Inputter,
		Step:     step,
		Log:      logging.Log,
	}
}

// Interactable reports whether el is rendered inside the container viewport:
// its bounds are non-degenerate and its centre lies within the container.
func Interactable(el, container *model.Element) bool {
	if el.Width() <= 0 || el.Height() <= 0 {
		return false
	}
	if container == nil || container.Width() <= 0 || container.Height() <= 0 {
		return true
	}
	return container.Contains(el.Center())
}

// scrollDirection picks the step that reduces the distance to el. Elements
// without geometry are assumed to be further down the list.
func scrollDirection(el, container *model.Element) platform.ScrollDirection {
	if el.Width() <= 0 || el.Height() <= 0 {
		return platform.ScrollDown
	}
	_, cy := el.Center()
	if cy < container.Bounds[1] {
		return platform.ScrollUp
	}
	return platform.ScrollDown
}

// ScrollTo scrolls container until target is interactable, issuing at most
// maxAttempts scroll steps. The tree is re-read after every step and the
// refreshed target is returned. It returns ErrUnreachable when the budget
// runs out and ErrNotFound when target or container leave the tree.
func (n *Navigator) ScrollTo(ctx context.Context, target, container *model.Element, maxAttempts int) (*model.Element, error) {
	el, box, err := n.resolve(target.ID, container.ID)
	if err != nil {
		return nil, err
	}
	for attempt := 1; ; attempt++ {
		if Interactable(el, box) {
			return el, nil
		}
		if attempt > maxAttempts {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := scrollDirection(el, box)
		x, y := box.Center()
		if err := n.Inputter.Scroll(x, y, 0, dir.Delta(n.Step)); err != nil {
			return nil, fmt.Errorf("scroll %s: %w", dir, err)
		}
		n.Log.WithFields(logrus.Fields{"attempt": attempt, "target": target.ID, "direction": dir.String()}).Debug("scrolled toward target")

		if el, box, err = n.resolve(target.ID, container.ID); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: element %d (%q) after %d scroll attempts", ErrUnreachable, target.ID, target.Name, maxAttempts)
}

func (n *Navigator) resolve(targetID, containerID int) (*model.Element, *model.Element, error) {
	window, err := n.Reader.ForegroundWindow()
	if err != nil {
		return nil, nil, fmt.Errorf("read foreground window: %w", err)
	}
	el := model.FindByID(window, targetID)
	if el == nil {
		return nil, nil, fmt.Errorf("%w: element %d", ErrNotFound, targetID)
	}
	box := model.FindByID(window, containerID)
	if box == nil {
		return nil, nil, fmt.Errorf("%w: scroll container %d", ErrNotFound, containerID)
	}
	return el, box, nil
}

// Click performs a left click at the element centre shifted by off. It does
// not check what the click changed in the application.
func (n *Navigator) Click(el *model.Element, off Offset) error {
	x, y := el.Center()
	x, y = x+off.X, y+off.Y
	n.Log.WithFields(logrus.Fields{"target": el.ID, "x": x, "y": y}).Debug("click")
	if err := n.Inputter.Click(x, y, platform.MouseLeft); err != nil {
		return fmt.Errorf("click at (%d,%d): %w", x, y, err)
	}
	return nil
}

// ScrollAndClick scrolls target into view and clicks it.
func (n *Navigator) ScrollAndClick(ctx context.Context, target, container *model.Element, maxAttempts int, off Offset) error {
	el, err := n.ScrollTo(ctx, target, container, maxAttempts)
	if err != nil {
		return err
	}
	return n.Click(el, off)
}

// Selection remembers the single element last activated in a list whose rows
// toggle on click. It keeps a copy, never a reference into a host tree.
type Selection struct {
	current *model.Element
}

// Current returns the selected element, or nil.
func (s *Selection) Current() *model.Element {
	return s.current
}

// Clear forgets the selection without clicking anything.
func (s *Selection) Clear() {
	s.current = nil
}

// Toggle selects target, first clicking the previously selected element to
// deselect it. Reselecting the current element does nothing and reports
// changed=false. A previous element that has left the tree is forgotten.
func (n *Navigator) Toggle(ctx context.Context, sel *Selection, target, container *model.Element, maxAttempts int, off Offset) (changed bool, err error) {
	if prev := sel.current; prev != nil {
		if model.SameElement(prev, target) {
			return false, nil
		}
		err := n.ScrollAndClick(ctx, prev, container, maxAttempts, off)
		switch {
		case errors.Is(err, ErrNotFound):
			n.Log.WithField("target", prev.ID).Debug("previous selection left the tree")
		case err != nil:
			return false, fmt.Errorf("deselect %q: %w", prev.Name, err)
		}
	}

	if err := n.ScrollAndClick(ctx, target, container, maxAttempts, off); err != nil {
		// The previous element is already deselected.
		sel.Clear()
		return true, fmt.Errorf("select %q: %w", target.Name, err)
	}
	selected := *target
	selected.Children = nil
	sel.current = &selected
	return true, nil
}
