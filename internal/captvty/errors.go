package captvty

import (
	"errors"
	"fmt"

	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/navigate"
)

var (
	// ErrNotFound is returned when the mode buttons, the channel list or a
	// fixed child path cannot be located.
	ErrNotFound = navigate.ErrNotFound

	// ErrUnreachable is returned when a channel cannot be scrolled into view.
	ErrUnreachable = navigate.ErrUnreachable

	// ErrNotImplemented marks features the application cannot be driven to yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoMode is returned when neither Direct nor Catch-up mode is active.
	ErrNoMode = errors.New("neither direct nor catch-up mode is active")

	// ErrUnknownGesture is returned by Dispatch for unbound gestures.
	ErrUnknownGesture = errors.New("unknown gesture")
)

// ContractError reports a call the caller should never have made, such as a
// channel selection outside Direct and Catch-up mode.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func unsupportedMode(op string, mode model.AppMode) error {
	return &ContractError{
		Op:     op,
		Reason: fmt.Sprintf("mode %s is not supported (only direct and catchup are)", mode),
	}
}
