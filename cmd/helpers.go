package cmd

import (
	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/mj1618/captvty-nav/internal/platform"
	"github.com/mj1618/captvty-nav/internal/server"
)

// newSession binds a session to the registered host.
func newSession() (*server.Session, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return server.NewSession(provider, cfg.Layout, 0), nil
}

// printResult prints result even when the call failed, so the spoken
// transcript is visible, and passes err through as the command error.
func printResult(result server.Result, err error) error {
	if perr := output.Print(result); perr != nil {
		return perr
	}
	return err
}
