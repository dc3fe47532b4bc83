package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	AngleUp    key.Binding
	AngleDown  key.Binding
	PowerUp    key.Binding
	PowerDown  key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AngleUp, k.PowerUp, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AngleUp, k.AngleDown, k.PowerUp, k.PowerDown},
		{k.Fire, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
// Arrow keys adjust aim by one step, letters by a coarse step.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AngleUp: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "angle +"),
		),
		AngleDown: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "angle -"),
		),
		PowerUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "power +"),
		),
		PowerDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "power -"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "throw"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rematch"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a single action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.AngleUp):
		return core.ActionAngleUp, false
	case key.Matches(msg, km.keys.AngleDown):
		return core.ActionAngleDown, false
	case key.Matches(msg, km.keys.PowerUp):
		return core.ActionPowerUp, false
	case key.Matches(msg, km.keys.PowerDown):
		return core.ActionPowerDown, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Letter keys for aiming also set ActionCoarse.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone {
		return isQuit
	}
	frame.Set(action)

	switch action {
	case core.ActionAngleUp, core.ActionAngleDown, core.ActionPowerUp, core.ActionPowerDown:
		if msg.Type == tea.KeyRunes {
			frame.Set(core.ActionCoarse)
		}
	}
	return isQuit
}
