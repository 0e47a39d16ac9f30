package platform

import (
	"strconv"
	"strings"
	"sync"
)

// MatchChoice resolves a textual answer against dialog items. The answer is
// "#N" for the Nth item, or an item text matched exactly, then
// case-insensitively, then as a case-insensitive substring.
func MatchChoice(answer string, items []string) (int, bool) {
	if strings.HasPrefix(answer, "#") {
		n, err := strconv.Atoi(answer[1:])
		if err == nil && n >= 1 && n <= len(items) {
			return n - 1, true
		}
		return 0, false
	}
	for i, it := range items {
		if it == answer {
			return i, true
		}
	}
	for i, it := range items {
		if strings.EqualFold(it, answer) {
			return i, true
		}
	}
	lower := strings.ToLower(answer)
	for i, it := range items {
		if strings.Contains(strings.ToLower(it), lower) {
			return i, true
		}
	}
	return 0, false
}

// ScriptedChooser answers dialogs from a fixed queue. An exhausted queue or
// an unmatched answer cancels the dialog.
type ScriptedChooser struct {
	mu      sync.Mutex
	answers []string
}

// NewScriptedChooser returns a chooser replaying answers in order.
func NewScriptedChooser(answers ...string) *ScriptedChooser {
	return &ScriptedChooser{answers: answers}
}

// Choose implements Chooser.
func (c *ScriptedChooser) Choose(title, label string, items []string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.answers) == 0 {
		return 0, false
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return MatchChoice(answer, items)
}
