package server

import (
	"fmt"
	"sync"

	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/platform"
)

// transcript forwards host calls to a provider and records what was spoken
// and which inputs were sent, so callers without speech output can see them.
type transcript struct {
	mu     sync.Mutex
	inner  *platform.Provider
	spoken []string
	inputs []string
}

func newTranscript(inner *platform.Provider) *transcript {
	return &transcript{inner: inner}
}

// provider returns a copy of the inner provider routed through t.
func (t *transcript) provider() *platform.Provider {
	p := *t.inner
	p.Speaker = t
	if t.inner.Inputter != nil {
		p.Inputter = t
	}
	if t.inner.ActionPerformer != nil {
		p.ActionPerformer = t
	}
	return &p
}

func (t *transcript) record(dst *[]string, s string) {
	t.mu.Lock()
	*dst = append(*dst, s)
	t.mu.Unlock()
}

func (t *transcript) Speak(text string) {
	t.record(&t.spoken, text)
	if t.inner.Speaker != nil {
		t.inner.Speaker.Speak(text)
	}
}

func (t *transcript) Click(x, y int, button platform.MouseButton) error {
	t.record(&t.inputs, fmt.Sprintf("click %s %d,%d", button, x, y))
	return t.inner.Inputter.Click(x, y, button)
}

func (t *transcript) Scroll(x, y, dx, dy int) error {
	t.record(&t.inputs, fmt.Sprintf("scroll %d,%d dy=%d", x, y, dy))
	return t.inner.Inputter.Scroll(x, y, dx, dy)
}

func (t *transcript) PerformAction(el *model.Element, action string) error {
	t.record(&t.inputs, fmt.Sprintf("%s %q", action, el.Name))
	return t.inner.ActionPerformer.PerformAction(el, action)
}

func (t *transcript) lines() (spoken, inputs []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.spoken...), append([]string(nil), t.inputs...)
}
