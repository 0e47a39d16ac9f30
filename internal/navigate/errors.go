package navigate

import "errors"

var (
	// ErrNotFound is returned when an element disappears from the host tree
	// between lookups.
	ErrNotFound = errors.New("element not found")

	// ErrUnreachable is returned when the scroll budget runs out before the
	// target becomes interactable.
	ErrUnreachable = errors.New("target unreachable")
)
