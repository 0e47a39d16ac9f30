package platform

import (
	"errors"
)

// Provider bundles all host backends.
type Provider struct {
	Reader          Reader
	Inputter        Inputter
	ActionPerformer ActionPerformer
	Speaker         Speaker
	Chooser         Chooser
}

// ErrUnsupported is returned when no host backend has been registered.
var ErrUnsupported = errors.New("no host backend registered; use --fixture to load a recorded Captvty window")

// NewProviderFunc is set by backend packages.
// See internal/platform/fixture for the recorded-tree backend.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns the registered Provider.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
