// Package server exposes the Captvty module to callers outside the screen
// reader: the CLI commands and an MCP tool server.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mj1618/captvty-nav/internal/captvty"
	"github.com/mj1618/captvty-nav/internal/config"
	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/platform"
)

// Result is the output of one session call.
type Result struct {
	OK       bool           `yaml:"ok"                 json:"ok"`
	Action   string         `yaml:"action"             json:"action"`
	Mode     string         `yaml:"mode,omitempty"     json:"mode,omitempty"`
	Buttons  []string       `yaml:"buttons,omitempty"  json:"buttons,omitempty"`
	Channels []string       `yaml:"channels,omitempty" json:"channels,omitempty"`
	Selected string         `yaml:"selected,omitempty" json:"selected,omitempty"`
	Program  *model.Program `yaml:"program,omitempty"  json:"program,omitempty"`
	Spoken   []string       `yaml:"spoken,omitempty"   json:"spoken,omitempty"`
	Inputs   []string       `yaml:"inputs,omitempty"   json:"inputs,omitempty"`
	Error    string         `yaml:"error,omitempty"    json:"error,omitempty"`
}

// Session serializes calls into one Module. The module keeps the mode-button
// cache and the catch-up selection between calls.
type Session struct {
	mu     sync.Mutex
	module *captvty.Module
	cache  *TreeCache
}

// NewSession returns a session driving the host behind p. A positive
// cacheTTL caches foreground window reads between inputs.
func NewSession(p *platform.Provider, layout config.Layout, cacheTTL time.Duration) *Session {
	s := &Session{}
	if cacheTTL > 0 && p.Reader != nil {
		s.cache = NewTreeCache(p.Reader, cacheTTL)
		p = s.cache.Wrap(p)
	}
	s.module = captvty.New(p, layout)
	return s
}

// Module returns the underlying module.
func (s *Session) Module() *captvty.Module {
	return s.module
}

// run calls fn with a module that records speech and inputs. Non-empty
// answers replace the host's dialogs.
func (s *Session) run(action string, answers []string, fn func(*captvty.Module, *Result) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTranscript(s.module.Provider())
	m := s.module.WithProvider(t.provider())
	if len(answers) > 0 {
		m = m.WithChooser(platform.NewScriptedChooser(answers...))
	}

	result := Result{Action: action}
	err := fn(m, &result)
	result.Spoken, result.Inputs = t.lines()
	if sel := m.Selection(); sel != nil {
		result.Selected = sel.Name
	}
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.OK = true
	return result, nil
}

// Mode announces the current mode as on application focus.
func (s *Session) Mode(ctx context.Context) (Result, error) {
	return s.run("mode", nil, func(m *captvty.Module, r *Result) error {
		mode, err := m.Mode(ctx)
		if err != nil {
			return err
		}
		r.Mode = mode.String()
		return m.OnGainFocus(ctx)
	})
}

// Buttons lists the located mode buttons.
func (s *Session) Buttons(ctx context.Context) (Result, error) {
	return s.run("buttons", nil, func(m *captvty.Module, r *Result) error {
		buttons, err := m.ModeButtons(ctx)
		if err != nil {
			return err
		}
		for _, b := range buttons {
			r.Buttons = append(r.Buttons, b.Name)
		}
		mode, err := m.Mode(ctx)
		if err != nil {
			return err
		}
		r.Mode = mode.String()
		return nil
	})
}

// SelectMode switches the application to the named mode.
func (s *Session) SelectMode(ctx context.Context, name string) (Result, error) {
	return s.run("select-mode", nil, func(m *captvty.Module, r *Result) error {
		mode, ok := model.ParseAppMode(name)
		if !ok {
			return fmt.Errorf("unknown mode %q (use direct or catchup)", name)
		}
		if err := m.SelectMode(ctx, mode); err != nil {
			return err
		}
		r.Mode = mode.String()
		return nil
	})
}

// Channels lists the channel names in display order.
func (s *Session) Channels(ctx context.Context) (Result, error) {
	return s.run("channels", nil, func(m *captvty.Module, r *Result) error {
		rows, err := m.Channels(ctx)
		if err != nil {
			return err
		}
		r.Channels = make([]string, len(rows))
		for i, row := range rows {
			r.Channels[i] = row.Name
		}
		mode, err := m.Mode(ctx)
		if err != nil {
			return err
		}
		r.Mode = mode.String()
		return nil
	})
}

// SelectChannel acts on a channel by name. In Direct mode option answers the
// option dialog; empty leaves the dialog to the host.
func (s *Session) SelectChannel(ctx context.Context, channel, option string) (Result, error) {
	var answers []string
	if option != "" {
		answers = []string{option}
	}
	return s.run("select-channel", answers, func(m *captvty.Module, r *Result) error {
		if channel == "" {
			return fmt.Errorf("channel is required")
		}
		return m.SelectChannel(ctx, channel)
	})
}

// Gesture dispatches a key combination. answers are replayed into the dialogs
// it opens, in order.
func (s *Session) Gesture(ctx context.Context, combo string, answers []string) (Result, error) {
	return s.run("gesture", answers, func(m *captvty.Module, r *Result) error {
		return m.Dispatch(ctx, combo)
	})
}

// ParseProgram parses a program description. It does not touch the host.
func ParseProgram(text string) Result {
	p := model.ParseProgram(text)
	return Result{OK: true, Action: "parse-program", Program: &p}
}
