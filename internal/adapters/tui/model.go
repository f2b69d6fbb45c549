// Package tui provides the full-screen terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/ports"
	"github.com/xvierd/tempus-cli/internal/theme"
)

const (
	// DefaultTick is the redraw and input latency bound of the full-screen modes.
	DefaultTick = 100 * time.Millisecond

	// DefaultNotifyGrace bounds how long the exit key waits for in-flight
	// notifications once the countdown has completed.
	DefaultNotifyGrace = 3 * time.Second
)

// Layout selects what the full-screen program draws.
type Layout int

const (
	// LayoutFocus is the bordered panel with bar, status and controls.
	LayoutFocus Layout = iota
	// LayoutBigClock shows the remaining time in block digits.
	LayoutBigClock
)

// Options configures the full-screen model.
type Options struct {
	Layout   Layout
	Theme    theme.Theme
	Tick     time.Duration
	Bell     bool
	Notify   bool
	Notifier ports.Notifier
	// BellOut receives the BEL byte. It should be the program's output.
	BellOut io.Writer
	// NotifyGrace defaults to DefaultNotifyGrace.
	NotifyGrace time.Duration
}

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// notifyResultMsg carries the outcome of an asynchronous notification.
type notifyResultMsg struct {
	err error
}

// notifyTimeoutMsg ends the wait for notifications that never reported back.
type notifyTimeoutMsg struct{}

// Model represents the TUI state.
type Model struct {
	session  *domain.Session
	painter  *theme.Painter
	keys     keyMap
	help     help.Model
	progress progress.Model
	opts     Options

	width  int
	height int
	frame  int

	took        time.Duration
	quit        bool
	interrupted bool
	notifyErrs  []error

	// pendingNotify counts notifications dispatched but not yet reported.
	pendingNotify int
	exitRequested bool
}

// NewModel creates a new TUI model around session.
func NewModel(session *domain.Session, opts Options) Model {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.BellOut == nil {
		opts.BellOut = os.Stdout
	}
	if opts.NotifyGrace <= 0 {
		opts.NotifyGrace = DefaultNotifyGrace
	}
	h := help.New()
	h.ShortSeparator = " | "
	return Model{
		session:  session,
		painter:  theme.NewPainter(opts.Theme),
		keys:     newKeyMap(opts.Layout),
		help:     h,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		opts:     opts,
		width:    80,
		height:   24,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = clampInt(msg.Width-10, 10, 60)
		return m, nil

	case tickMsg:
		return m.handleTick()

	case notifyResultMsg:
		if m.pendingNotify > 0 {
			m.pendingNotify--
		}
		if msg.err != nil {
			m.notifyErrs = append(m.notifyErrs, msg.err)
		}
		if m.exitRequested && m.pendingNotify == 0 {
			return m, tea.Quit
		}
		return m, nil

	case notifyTimeoutMsg:
		if !m.exitRequested || m.pendingNotify == 0 {
			return m, nil
		}
		m.notifyErrs = append(m.notifyErrs,
			fmt.Errorf("%d notification(s) still pending after %s", m.pendingNotify, m.opts.NotifyGrace))
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.Completed() {
		return m, nil
	}
	m.frame++
	m.painter.Advance()

	res := m.session.Tick()
	var cmds []tea.Cmd
	if res.AlertFired && m.opts.Notify && m.opts.Notifier != nil {
		m.pendingNotify++
		cmds = append(cmds, notifyRemainingCmd(m.opts.Notifier, m.session.Name, m.session.Countdown.Remaining()))
	}
	if res.Completed {
		m.took = m.session.Countdown.Elapsed()
		if m.opts.Bell {
			cmds = append(cmds, bellCmd(m.opts.BellOut))
		}
		if m.opts.Notify && m.opts.Notifier != nil {
			m.pendingNotify++
			cmds = append(cmds, notifyCompletedCmd(m.opts.Notifier, m.session.Name, m.took))
		}
		return m, tea.Batch(cmds...)
	}
	cmds = append(cmds, tickCmd(m.opts.Tick))
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Completed() {
		return m.exitAfterCompletion()
	}
	if key.Matches(msg, m.keys.Interrupt) {
		m.interrupted = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd, ok := m.keys.command(msg)
	if !ok {
		return m, nil
	}
	if cmd == domain.CmdQuit {
		m.quit = true
		return m, tea.Quit
	}
	m.session.Apply(cmd)
	return m, nil
}

// exitAfterCompletion quits once every dispatched notification has reported,
// or after the grace period.
func (m Model) exitAfterCompletion() (tea.Model, tea.Cmd) {
	if m.pendingNotify == 0 {
		return m, tea.Quit
	}
	if m.exitRequested {
		return m, nil
	}
	m.exitRequested = true
	return m, tea.Tick(m.opts.NotifyGrace, func(time.Time) tea.Msg {
		return notifyTimeoutMsg{}
	})
}

// Completed reports whether the session has finished.
func (m Model) Completed() bool {
	return m.session.Status() == domain.StatusCompleted
}

// Interrupted reports whether the user pressed ctrl+c.
func (m Model) Interrupted() bool { return m.interrupted }

// NotifyErrors returns the notification failures collected during the run.
func (m Model) NotifyErrors() []error { return m.notifyErrs }

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// bellCmd rings the bell with a single write so it never splits a frame
// written to the same stream.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = w.Write([]byte{'\a'})
		return nil
	}
}

func notifyCompletedCmd(n ports.Notifier, name string, took time.Duration) tea.Cmd {
	return func() tea.Msg {
		return notifyResultMsg{err: n.NotifyCompleted(name, took)}
	}
}

func notifyRemainingCmd(n ports.Notifier, name string, remaining time.Duration) tea.Cmd {
	return func() tea.Msg {
		return notifyResultMsg{err: n.NotifyRemaining(name, remaining)}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
