package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/tempus-cli/internal/domain"
)

// keyMap holds the focus mode bindings. It satisfies help.KeyMap.
type keyMap struct {
	Quit      key.Binding
	Pause     key.Binding
	Extend    key.Binding
	Shorten   key.Binding
	Restart   key.Binding
	Alert     key.Binding
	AlertUp   key.Binding
	AlertDown key.Binding
	Help      key.Binding
	Interrupt key.Binding
}

func newKeyMap(layout Layout) keyMap {
	km := keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		Pause:     key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Extend:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add 1m")),
		Shorten:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "subtract 1m")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Alert:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "alert")),
		AlertUp:   key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "+10s alert")),
		AlertDown: key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "-10s alert")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
	if layout == LayoutBigClock {
		km.Extend.SetEnabled(false)
		km.Shorten.SetEnabled(false)
		km.Alert.SetEnabled(false)
		km.AlertUp.SetEnabled(false)
		km.AlertDown.SetEnabled(false)
		km.Help.SetEnabled(false)
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Extend, k.Shorten, k.Restart, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart, k.Quit},
		{k.Extend, k.Shorten},
		{k.Alert, k.AlertUp, k.AlertDown},
		{k.Help},
	}
}

// command maps a key press to a session command.
func (k keyMap) command(msg tea.KeyMsg) (domain.Command, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return domain.CmdQuit, true
	case key.Matches(msg, k.Pause):
		return domain.CmdTogglePause, true
	case key.Matches(msg, k.Extend):
		return domain.CmdExtend, true
	case key.Matches(msg, k.Shorten):
		return domain.CmdShorten, true
	case key.Matches(msg, k.Restart):
		return domain.CmdRestart, true
	case key.Matches(msg, k.Alert):
		return domain.CmdToggleAlert, true
	case key.Matches(msg, k.AlertUp):
		return domain.CmdAlertUp, true
	case key.Matches(msg, k.AlertDown):
		return domain.CmdAlertDown, true
	}
	return "", false
}
