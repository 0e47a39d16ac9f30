package captvty

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/captvty-nav/internal/model"
)

// Handler runs in response to a gesture.
type Handler func(ctx context.Context) error

// Gesture binds a key combination to a handler that replaces the host's
// default behavior for that combination.
type Gesture struct {
	ID          string
	Description string
	Handler     Handler
}

// Gestures returns the bound gestures keyed by normalized ID.
func (m *Module) Gestures() map[string]Gesture {
	list := []Gesture{
		{
			ID:          "kb:control+d",
			Description: "Sélectionne le menu direct",
			Handler:     func(ctx context.Context) error { return m.SelectMode(ctx, model.ModeDirect) },
		},
		{
			ID:          "kb:control+r",
			Description: "Sélectionne le menu rattrapage",
			Handler:     func(ctx context.Context) error { return m.SelectMode(ctx, model.ModeCatchup) },
		},
		{
			ID:          "kb:nvda+l",
			Description: "Liste les chaines.",
			Handler:     m.ListChannels,
		},
	}
	out := make(map[string]Gesture, len(list))
	for _, g := range list {
		out[NormalizeGesture(g.ID)] = g
	}
	return out
}

// Dispatch runs the handler bound to gesture.
func (m *Module) Dispatch(ctx context.Context, gesture string) error {
	g, ok := m.Gestures()[NormalizeGesture(gesture)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGesture, gesture)
	}
	m.log.WithField("gesture", g.ID).Debug("dispatch")
	return g.Handler(ctx)
}

var keyAliases = map[string]string{
	"ctrl":     "control",
	"ctl":      "control",
	"insert":   "nvda",
	"capslock": "nvda",
}

// NormalizeGesture canonicalizes a key combination: "Ctrl+D" and
// "kb:control+d" both become "kb:control+d". Modifiers are sorted; the last
// key stays last.
func NormalizeGesture(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "kb:")
	parts := strings.Split(s, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if alias, ok := keyAliases[p]; ok {
			p = alias
		}
		parts[i] = p
	}
	if len(parts) > 1 {
		mods := parts[:len(parts)-1]
		sort.Strings(mods)
	}
	return "kb:" + strings.Join(parts, "+")
}
