// Package locate finds the Captvty mode buttons and channel rows in a
// foreground window tree using fixed geometry, since the application exposes
// no stable accessible identifiers.
package locate

import (
	"github.com/mj1618/captvty-nav/internal/config"
	"github.com/mj1618/captvty-nav/internal/logging"
	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/sirupsen/logrus"
)

// Locator runs the element-location heuristics against one layout. It owns
// the mode-button index cache and is not safe for concurrent use.
type Locator struct {
	Layout config.Layout
	Cache  *IndexCache
	Log    logrus.FieldLogger
}

// New returns a Locator with an empty cache.
func New(layout config.Layout) *Locator {
	return &Locator{
		Layout: layout,
		Cache:  &IndexCache{},
		Log:    logging.Log,
	}
}

// ModeButtons returns the mode-selector buttons of window, or nil.
//
// The scan starts at the cached child index, or at Layout.ModeButtonScanStart
// when no hint is cached, and walks the remaining children in ascending order.
// A child qualifies when its width equals the channel-list width and its pane
// at Layout.ModePaneIndex holds exactly Layout.ModeButtonCount buttons among
// its grandchildren. The first qualifying child wins and its index is cached.
// When nothing qualifies the cache is cleared so the next call rescans from
// the default offset.
func (l *Locator) ModeButtons(window *model.Element) []*model.Element {
	if window == nil {
		return nil
	}
	start := l.Layout.ModeButtonScanStart
	cached, hit := l.Cache.Get()
	if hit {
		start = cached
	}

	for i := start; i < len(window.Children); i++ {
		candidate := &window.Children[i]
		// The buttons sit above the channel list; they share its width but not its parent.
		if candidate.Width() != l.Layout.ChannelListWidth {
			continue
		}
		pane := candidate.Child(l.Layout.ModePaneIndex)
		if pane == nil {
			continue
		}
		buttons := collectButtons(pane)
		if len(buttons) != l.Layout.ModeButtonCount {
			continue
		}
		l.Cache.Set(i)
		l.Log.WithField("index", i).Debug("mode buttons located")
		return buttons
	}

	if hit {
		l.Log.WithField("index", cached).Debug("mode button index cache is stale")
	}
	l.Cache.Invalidate()
	return nil
}

// collectButtons flattens the grandchildren of pane that carry the button role.
func collectButtons(pane *model.Element) []*model.Element {
	var buttons []*model.Element
	for i := range pane.Children {
		child := &pane.Children[i]
		for j := range child.Children {
			if child.Children[j].Role == "btn" {
				buttons = append(buttons, &child.Children[j])
			}
		}
	}
	return buttons
}

// ChannelRows returns the clickable sub-element of every channel row, in list
// order, or nil when the channel list cannot be found.
//
// The list container is the first window child at the channel-list width. Its
// first child with at least Layout.ChannelRowsMinChildren children holds the
// rows; decorative siblings have fewer. Each row descends Layout.ChannelRowPath
// to its representative element; rows lacking that path are skipped.
func (l *Locator) ChannelRows(window *model.Element) []*model.Element {
	list := FindByWidth(window, l.Layout.ChannelListWidth)
	if list == nil {
		l.Log.WithField("width", l.Layout.ChannelListWidth).Debug("no element at channel list width")
		return nil
	}
	for i := range list.Children {
		container := &list.Children[i]
		if container.ChildCount() < l.Layout.ChannelRowsMinChildren {
			continue
		}
		rows := make([]*model.Element, 0, container.ChildCount())
		for j := range container.Children {
			el := container.Children[j].Child(l.Layout.ChannelRowPath...)
			if el == nil {
				l.Log.WithField("row", j).Debug("channel row lacks its clickable element")
				continue
			}
			rows = append(rows, el)
		}
		if len(rows) == 0 {
			l.Log.WithField("rows", container.ChildCount()).Warn("no channel row has its clickable element")
			return nil
		}
		return rows
	}
	return nil
}

// AppMode reports the application mode from the name of the right-most mode
// button. It returns ModeOther when the buttons cannot be found.
func (l *Locator) AppMode(window *model.Element) model.AppMode {
	buttons := l.ModeButtons(window)
	if len(buttons) == 0 {
		l.Log.Warn("mode buttons not found")
		return model.ModeOther
	}
	rightMost := RightMost(buttons)
	mode := model.ModeFromButtonName(rightMost.Name)
	if mode == model.ModeOther {
		l.Log.WithField("name", rightMost.Name).Warn("right-most mode button is neither DIRECT nor RATTRAPAGE")
	}
	return mode
}

// RightMost returns the button with the greatest horizontal position. Ties keep
// the earlier button.
func RightMost(buttons []*model.Element) *model.Element {
	if len(buttons) == 0 {
		return nil
	}
	rightMost := buttons[0]
	for _, b := range buttons[1:] {
		if b.Left() > rightMost.Left() {
			rightMost = b
		}
	}
	return rightMost
}

// ButtonByName returns the mode button with the given name, or nil.
func ButtonByName(buttons []*model.Element, name string) *model.Element {
	for _, b := range buttons {
		if b.Name == name {
			return b
		}
	}
	return nil
}
