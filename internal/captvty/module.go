// Package captvty binds the location and navigation heuristics to host
// events: focus changes, keyboard gestures and dialog callbacks.
package captvty

import (
	"context"
	"errors"
	"fmt"

	"github.com/mj1618/captvty-nav/internal/config"
	"github.com/mj1618/captvty-nav/internal/locate"
	"github.com/mj1618/captvty-nav/internal/logging"
	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/navigate"
	"github.com/mj1618/captvty-nav/internal/platform"
	"github.com/sirupsen/logrus"
)

// Module is the Captvty accessibility module. Calls must be serialized.
type Module struct {
	provider  *platform.Provider
	layout    config.Layout
	locator   *locate.Locator
	nav       *navigate.Navigator
	selection *navigate.Selection
	log       logrus.FieldLogger
}

// New returns a Module driving the host behind p.
func New(p *platform.Provider, layout config.Layout) *Module {
	return &Module{
		provider:  p,
		layout:    layout,
		locator:   locate.New(layout),
		nav:       navigate.New(p, layout.ScrollStep),
		selection: &navigate.Selection{},
		log:       logging.Log,
	}
}

// WithProvider returns a Module sharing this one's cache and selection but
// talking to the host through p.
func (m *Module) WithProvider(p *platform.Provider) *Module {
	clone := *m
	clone.provider = p
	clone.nav = navigate.New(p, m.layout.ScrollStep)
	clone.nav.Log = m.log
	return &clone
}

// WithChooser returns a Module answering dialogs with c.
func (m *Module) WithChooser(c platform.Chooser) *Module {
	p := *m.provider
	p.Chooser = c
	return m.WithProvider(&p)
}

// Provider returns the host bindings the module talks to.
func (m *Module) Provider() *platform.Provider {
	return m.provider
}

// SetLogger replaces the logger of the module and its components.
func (m *Module) SetLogger(l logrus.FieldLogger) {
	m.log = l
	m.locator.Log = l
	m.nav.Log = l
}

// Locator exposes the element locator, mainly for inspection commands.
func (m *Module) Locator() *locate.Locator {
	return m.locator
}

// Selection returns the channel currently selected in catch-up mode, or nil.
func (m *Module) Selection() *model.Element {
	return m.selection.Current()
}

func (m *Module) speak(text string) {
	if m.provider.Speaker != nil {
		m.provider.Speaker.Speak(text)
	}
}

func (m *Module) window() (*model.Element, error) {
	if m.provider.Reader == nil {
		return nil, fmt.Errorf("reader not available on this host")
	}
	w, err := m.provider.Reader.ForegroundWindow()
	if err != nil {
		return nil, fmt.Errorf("read foreground window: %w", err)
	}
	return w, nil
}

// Mode returns the current application mode.
func (m *Module) Mode(ctx context.Context) (model.AppMode, error) {
	w, err := m.window()
	if err != nil {
		return model.ModeOther, err
	}
	return m.locator.AppMode(w), nil
}

// ModeButtons returns the located mode buttons.
func (m *Module) ModeButtons(ctx context.Context) ([]*model.Element, error) {
	w, err := m.window()
	if err != nil {
		return nil, err
	}
	buttons := m.locator.ModeButtons(w)
	if buttons == nil {
		return nil, fmt.Errorf("%w: mode buttons", ErrNotFound)
	}
	return buttons, nil
}

// Channels returns the clickable element of every channel row.
func (m *Module) Channels(ctx context.Context) ([]*model.Element, error) {
	w, err := m.window()
	if err != nil {
		return nil, err
	}
	rows := m.locator.ChannelRows(w)
	if rows == nil {
		return nil, fmt.Errorf("%w: channel list", ErrNotFound)
	}
	return rows, nil
}

// OnGainFocus announces the active mode when the application gains focus.
func (m *Module) OnGainFocus(ctx context.Context) error {
	mode, err := m.Mode(ctx)
	if err != nil {
		return err
	}
	switch mode {
	case model.ModeDirect:
		m.speak(msgDirectSelected)
	case model.ModeCatchup:
		m.speak(msgCatchupSelected)
	default:
		m.speak(msgSelectMode)
	}
	m.log.Debug("captvty focused")
	return nil
}

// OnLoseFocus is called when the application loses focus.
func (m *Module) OnLoseFocus(ctx context.Context) error {
	m.log.Debug("captvty unfocused")
	return nil
}

// SelectMode presses the mode button for mode and confirms it aloud.
func (m *Module) SelectMode(ctx context.Context, mode model.AppMode) error {
	if mode != model.ModeDirect && mode != model.ModeCatchup {
		return unsupportedMode("select mode", mode)
	}
	buttons, err := m.ModeButtons(ctx)
	if err != nil {
		m.log.Error("could not fetch the mode buttons")
		m.speak(msgModeButtonsFailed)
		return err
	}
	button := locate.ButtonByName(buttons, mode.ButtonName())
	if button == nil {
		m.log.WithField("name", mode.ButtonName()).Error("mode button not found")
		m.speak(msgModeButtonsFailed)
		return fmt.Errorf("%w: %s button", ErrNotFound, mode.ButtonName())
	}
	if err := m.press(button); err != nil {
		return err
	}
	if mode == model.ModeDirect {
		m.speak(msgDirectSelected)
	} else {
		m.speak(msgCatchupSelected)
	}
	return nil
}

// press activates a button through its press action, or by clicking its
// centre when the host exposes no such action.
func (m *Module) press(button *model.Element) error {
	if m.provider.ActionPerformer == nil || !button.HasAction("press") {
		if m.provider.Inputter == nil {
			return fmt.Errorf("cannot press %s: no actions or input on this host", button.Name)
		}
		m.log.WithField("name", button.Name).Debug("no press action, clicking")
		return m.nav.Click(button, navigate.Offset{})
	}
	if err := m.provider.ActionPerformer.PerformAction(button, "press"); err != nil {
		return fmt.Errorf("press %s: %w", button.Name, err)
	}
	return nil
}

// ListChannels shows the channel list dialog and acts on the chosen channel
// according to the current mode. A cancelled dialog is not an error.
func (m *Module) ListChannels(ctx context.Context) error {
	m.speak(msgLoadingChannels)
	w, err := m.window()
	if err != nil {
		return err
	}
	rows := m.locator.ChannelRows(w)
	if rows == nil {
		m.speak(msgChannelListFailed)
		m.log.Error("could not focus channel list: channel list not found")
		return fmt.Errorf("%w: channel list", ErrNotFound)
	}
	if m.provider.Chooser == nil {
		return fmt.Errorf("%w: channel dialog on this host", ErrNotImplemented)
	}

	mode := m.locator.AppMode(w)
	if mode != model.ModeDirect && mode != model.ModeCatchup {
		m.speak(msgSelectMode)
		return ErrNoMode
	}

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	m.log.WithField("channels", len(rows)).Debug("channel list focused")
	m.speak(msgChannelListFocus)
	idx, ok := m.provider.Chooser.Choose(titleChannelList, "", names)
	if !ok {
		return nil
	}
	return m.OnChannelSelected(ctx, mode, rows[idx])
}

// SelectChannel acts on the channel named name without showing the channel
// list dialog.
func (m *Module) SelectChannel(ctx context.Context, name string) error {
	rows, err := m.Channels(ctx)
	if err != nil {
		m.speak(msgChannelListFailed)
		return err
	}
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	idx, ok := platform.MatchChoice(name, names)
	if !ok {
		return fmt.Errorf("%w: channel %q", ErrNotFound, name)
	}
	mode, err := m.Mode(ctx)
	if err != nil {
		return err
	}
	if mode != model.ModeDirect && mode != model.ModeCatchup {
		m.speak(msgSelectMode)
		return ErrNoMode
	}
	return m.OnChannelSelected(ctx, mode, rows[idx])
}

// OnChannelSelected handles a channel picked from the list.
func (m *Module) OnChannelSelected(ctx context.Context, mode model.AppMode, channel *model.Element) error {
	switch mode {
	case model.ModeDirect:
		return m.directChannelSelected(ctx, channel)
	case model.ModeCatchup:
		return m.catchupChannelSelected(ctx, channel)
	default:
		return unsupportedMode("channel selection", mode)
	}
}

// channelListDepth is how many levels separate a channel element from the
// scrollable row container: the row path plus the row itself.
func (m *Module) channelListDepth() int {
	return len(m.layout.ChannelRowPath) + 1
}

// scrollContainer returns the row container channel is listed in.
func (m *Module) scrollContainer(channel *model.Element) (*model.Element, error) {
	w, err := m.window()
	if err != nil {
		return nil, err
	}
	container := model.Ancestor(w, channel.ID, m.channelListDepth())
	if container == nil {
		return nil, fmt.Errorf("%w: list container of %q", ErrNotFound, channel.Name)
	}
	return container, nil
}

func (m *Module) directChannelSelected(ctx context.Context, channel *model.Element) error {
	container, err := m.scrollContainer(channel)
	if err != nil {
		return err
	}
	el, err := m.nav.ScrollTo(ctx, channel, container, m.layout.ScrollAttempts)
	if err != nil {
		return m.navigationFailed(channel, err)
	}
	if m.provider.Chooser == nil {
		return fmt.Errorf("%w: option dialog on this host", ErrNotImplemented)
	}
	idx, ok := m.provider.Chooser.Choose(titleOptions, "", DirectOptions)
	if !ok {
		return nil
	}
	return m.DirectOption(el, DirectOptions[idx])
}

// DirectOption performs a Direct-mode option on a channel already in view.
func (m *Module) DirectOption(channel *model.Element, option string) error {
	switch option {
	case OptionInternalPlayer:
		return m.nav.Click(channel, navigate.Offset{Y: m.layout.ViewOffsetY})
	case OptionExternalPlayer:
		return m.nav.Click(channel, navigate.Offset{X: m.layout.ExternalPlayerOffsetX, Y: m.layout.ViewOffsetY})
	case OptionRecord:
		// The click opens the recording menu; its settings are not exposed to
		// accessibility APIs, so scheduling stops there.
		if err := m.nav.Click(channel, navigate.Offset{X: m.layout.RecordOffsetX, Y: m.layout.ViewOffsetY}); err != nil {
			return err
		}
		m.speak(msgRecordingPending)
		return fmt.Errorf("%w: scheduling a recording", ErrNotImplemented)
	default:
		return &ContractError{Op: "direct option", Reason: fmt.Sprintf("unknown option %q", option)}
	}
}

func (m *Module) catchupChannelSelected(ctx context.Context, channel *model.Element) error {
	container, err := m.scrollContainer(channel)
	if err != nil {
		return err
	}
	changed, err := m.nav.Toggle(ctx, m.selection, channel, container, m.layout.ScrollAttempts, navigate.Offset{Y: m.layout.ViewOffsetY})
	if err != nil {
		return m.navigationFailed(channel, err)
	}
	if !changed {
		return nil
	}
	m.speak(msgProgramsPending)
	return fmt.Errorf("%w: listing catch-up programs", ErrNotImplemented)
}

// navigationFailed turns a scroll failure into a spoken message.
func (m *Module) navigationFailed(channel *model.Element, err error) error {
	m.log.WithError(err).WithField("channel", channel.Name).Error("channel navigation failed")
	if errors.Is(err, ErrUnreachable) {
		m.speak(msgUnreachable(channel.Name))
	} else if errors.Is(err, ErrNotFound) {
		m.speak(msgChannelListFailed)
	}
	return err
}
