package platform

import "github.com/mj1618/captvty-nav/internal/model"

// Reader reads the UI element tree from the host accessibility layer.
type Reader interface {
	// ForegroundWindow returns the element tree of the current foreground window.
	// Element IDs must be stable across repeated reads within one session.
	ForegroundWindow() (*model.Element, error)
}

// Inputter simulates mouse input.
type Inputter interface {
	Click(x, y int, button MouseButton) error
	// Scroll issues one wheel step at (x, y). Positive dy scrolls down.
	Scroll(x, y int, dx, dy int) error
}

// ActionPerformer performs accessibility actions directly on UI elements.
type ActionPerformer interface {
	// PerformAction executes the named action ("press", "select", ...) on el.
	PerformAction(el *model.Element, action string) error
}

// Speaker is the host speech/message output. Fire-and-forget.
type Speaker interface {
	Speak(text string)
}

// Chooser is the host modal list dialog.
type Chooser interface {
	// Choose shows items and blocks until the user picks one. It returns the
	// chosen index, or ok=false when the dialog was cancelled.
	Choose(title, label string, items []string) (index int, ok bool)
}
