// Package fixture is a host backend that replays a recorded Captvty window.
// It simulates scrolling, clicks, accessibility actions, speech and the modal
// chooser so the navigation core can run without a live screen reader.
package fixture

import (
	"fmt"
	"sync"

	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/platform"
)

// Event kinds recorded by the Host.
const (
	EventClick  = "click"
	EventScroll = "scroll"
	EventAction = "action"
	EventSpeak  = "speak"
	EventChoose = "choose"
)

// Event is one interaction the Host received.
type Event struct {
	Kind   string   `yaml:"kind"             json:"kind"`
	X      int      `yaml:"x,omitempty"      json:"x,omitempty"`
	Y      int      `yaml:"y,omitempty"      json:"y,omitempty"`
	Delta  int      `yaml:"delta,omitempty"  json:"delta,omitempty"`
	Target int      `yaml:"target,omitempty" json:"target,omitempty"`
	Name   string   `yaml:"name,omitempty"   json:"name,omitempty"`
	Text   string   `yaml:"text,omitempty"   json:"text,omitempty"`
	Items  []string `yaml:"items,omitempty"  json:"items,omitempty"`
}

// Host implements every platform interface over a Document.
type Host struct {
	mu         sync.Mutex
	doc        *Document
	containers []int       // scroll container IDs
	offsets    map[int]int // container ID -> scrolled pixels
	maxOffset  map[int]int
	answers    []string
	events     []Event
}

// NewHost returns a Host replaying doc.
func NewHost(doc *Document) *Host {
	h := &Host{
		doc:       doc,
		offsets:   make(map[int]int),
		maxOffset: make(map[int]int),
		answers:   append([]string(nil), doc.Answers...),
	}
	for _, p := range doc.ScrollContainers {
		el, err := resolvePath(&doc.Root, p)
		if err != nil {
			continue
		}
		h.containers = append(h.containers, el.ID)
		h.maxOffset[el.ID] = maxScroll(el)
	}
	return h
}

// Provider wraps the host as a platform.Provider.
func (h *Host) Provider() *platform.Provider {
	return &platform.Provider{
		Reader:          h,
		Inputter:        h,
		ActionPerformer: h,
		Speaker:         h,
		Chooser:         h,
	}
}

// Register makes platform.NewProvider load the fixture at path. The file is
// read once; every provider shares the same Host so state survives between calls.
func Register(path string) {
	var (
		once sync.Once
		host *Host
		err  error
	)
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		once.Do(func() {
			var doc *Document
			if path == SampleName {
				doc = Sample(model.ModeDirect)
			} else {
				doc, err = LoadFile(path)
			}
			if err == nil {
				host = NewHost(doc)
			}
		})
		if err != nil {
			return nil, err
		}
		return host.Provider(), nil
	}
}

// maxScroll is how far the content of container extends past its viewport.
func maxScroll(container *model.Element) int {
	bottom := container.Bounds[1] + container.Bounds[3]
	contentBottom := bottom
	var walk func(el *model.Element)
	walk = func(el *model.Element) {
		for i := range el.Children {
			c := &el.Children[i]
			if end := c.Bounds[1] + c.Bounds[3]; end > contentBottom {
				contentBottom = end
			}
			walk(c)
		}
	}
	walk(container)
	return contentBottom - bottom
}

// ForegroundWindow returns a copy of the window with scroll offsets applied.
func (h *Host) ForegroundWindow() (*model.Element, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view(), nil
}

func (h *Host) view() *model.Element {
	root := deepCopy(h.doc.Root)
	for _, id := range h.containers {
		off := h.offsets[id]
		if off == 0 {
			continue
		}
		if c := model.FindByID(&root, id); c != nil {
			shiftDescendants(c, -off)
		}
	}
	return &root
}

func deepCopy(el model.Element) model.Element {
	out := el
	out.Actions = append([]string(nil), el.Actions...)
	if el.Children != nil {
		out.Children = make([]model.Element, len(el.Children))
		for i := range el.Children {
			out.Children[i] = deepCopy(el.Children[i])
		}
	}
	return out
}

func shiftDescendants(el *model.Element, dy int) {
	for i := range el.Children {
		el.Children[i].Bounds[1] += dy
		shiftDescendants(&el.Children[i], dy)
	}
}

// Scroll moves the innermost scroll container under (x, y).
func (h *Host) Scroll(x, y, dx, dy int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, Event{Kind: EventScroll, X: x, Y: y, Delta: dy})
	view := h.view()
	target := 0
	for _, id := range h.containers {
		if c := model.FindByID(view, id); c != nil && c.Contains(x, y) {
			target = id
		}
	}
	if target == 0 {
		return nil
	}
	off := h.offsets[target] + dy*h.doc.ScrollPixels
	if off < 0 {
		off = 0
	}
	if limit := h.maxOffset[target]; off > limit {
		off = limit
	}
	h.offsets[target] = off
	return nil
}

// Click records a click and the deepest element under the pointer.
func (h *Host) Click(x, y int, button platform.MouseButton) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ev := Event{Kind: EventClick, X: x, Y: y}
	if button != platform.MouseLeft {
		ev.Text = button.String()
	}
	if hit := hitTest(h.view(), x, y); hit != nil {
		ev.Target = hit.ID
		ev.Name = hit.Name
	}
	h.events = append(h.events, ev)
	return nil
}

// hitTest returns the deepest, last-drawn element containing (x, y).
func hitTest(el *model.Element, x, y int) *model.Element {
	for i := len(el.Children) - 1; i >= 0; i-- {
		if hit := hitTest(&el.Children[i], x, y); hit != nil {
			return hit
		}
	}
	if el.Width() > 0 && el.Height() > 0 && el.Contains(x, y) {
		return el
	}
	return nil
}

// PerformAction records the action. Pressing a mode button moves it to the
// right-most slot of its pane, as the application does.
func (h *Host) PerformAction(el *model.Element, action string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	base := model.FindByID(&h.doc.Root, el.ID)
	if base == nil {
		return fmt.Errorf("element %d is not in the fixture", el.ID)
	}
	h.events = append(h.events, Event{Kind: EventAction, Target: el.ID, Name: base.Name, Text: action})
	if action == "press" && base.Role == "btn" {
		promoteButton(&h.doc.Root, base)
	}
	return nil
}

func promoteButton(root, btn *model.Element) {
	pane := model.Ancestor(root, btn.ID, 2)
	if pane == nil {
		return
	}
	var rightMost *model.Element
	for i := range pane.Children {
		for j := range pane.Children[i].Children {
			b := &pane.Children[i].Children[j]
			if b.Role == "btn" && (rightMost == nil || b.Left() > rightMost.Left()) {
				rightMost = b
			}
		}
	}
	if rightMost != nil && rightMost.ID != btn.ID {
		rightMost.Bounds[0], btn.Bounds[0] = btn.Bounds[0], rightMost.Bounds[0]
	}
}

// Speak records a spoken message.
func (h *Host) Speak(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, Event{Kind: EventSpeak, Text: text})
}

// Choose replays the next scripted answer, resolved with platform.MatchChoice.
// No answer left, or one that matches nothing, cancels the dialog.
func (h *Host) Choose(title, label string, items []string) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ev := Event{Kind: EventChoose, Name: title, Items: append([]string(nil), items...)}
	defer func() { h.events = append(h.events, ev) }()

	if len(h.answers) == 0 {
		return 0, false
	}
	answer := h.answers[0]
	h.answers = h.answers[1:]
	ev.Text = answer

	if idx, ok := platform.MatchChoice(answer, items); ok {
		return idx, true
	}
	return 0, false
}

// QueueAnswers appends scripted chooser answers.
func (h *Host) QueueAnswers(answers ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.answers = append(h.answers, answers...)
}

// Events returns the interactions recorded so far.
func (h *Host) Events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...)
}

// Spoken returns the spoken messages recorded so far.
func (h *Host) Spoken() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, ev := range h.events {
		if ev.Kind == EventSpeak {
			out = append(out, ev.Text)
		}
	}
	return out
}

// ResetEvents drops the recorded interactions.
func (h *Host) ResetEvents() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = nil
}
