package platform

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "left"
	}
}

// ScrollDirection is the vertical direction of one scroll step.
type ScrollDirection int

const (
	ScrollDown ScrollDirection = iota
	ScrollUp
)

// Delta returns the wheel delta for one step of the given size.
func (d ScrollDirection) Delta(step int) int {
	if d == ScrollUp {
		return -step
	}
	return step
}

func (d ScrollDirection) String() string {
	if d == ScrollUp {
		return "up"
	}
	return "down"
}
