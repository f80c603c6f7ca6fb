// Package ui renders the launcher: a single text input above the
// ranked result list, driven by the engine on every keystroke.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"flingr/internal/config"
	"flingr/internal/domain"
	"flingr/internal/engine"
	"flingr/internal/executor"
	"flingr/internal/logger"
)

// tickMsg drives the cooperative idle loop that re-triggers a rebuild
// once the debounce window has elapsed with no further keystrokes.
type tickMsg time.Time

// EventMsg wraps a domain event forwarded from the event bus.
type EventMsg struct {
	Event domain.DomainEvent
}

const (
	tickInterval  = time.Millisecond * 80
	statusTimeout = time.Second * 3
)

// Model represents the UI state
type Model struct {
	engine   *engine.Engine
	executor *executor.Executor
	cfg      *config.Config
	input    textinput.Model
	styles   *Styles
	log      *log.Logger

	width       int
	height      int
	status      string
	statusError bool
	statusUntil time.Time
}

// NewModel creates the launcher UI over an engine and executor.
func NewModel(cfg *config.Config, eng *engine.Engine, exe *executor.Executor) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to search"
	ti.Focus()

	m := &Model{
		engine:   eng,
		executor: exe,
		cfg:      cfg,
		input:    ti,
		styles:   NewStyles(currentTheme(cfg)),
		log:      logger.New("ui"),
	}
	return m
}

// Init returns the initial command: cursor blink plus the idle tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetVisibleRows(m.visibleRows())
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.engine.RebuildDue(now) {
			m.engine.Rebuild(now)
		}
		if m.status != "" && now.After(m.statusUntil) {
			m.status = ""
		}
		return m, m.tick()

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.activate()

	case "up", "ctrl+p":
		m.engine.MoveSelection(-1)
		return m, nil

	case "down", "ctrl+n", "tab":
		m.engine.MoveSelection(1)
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.engine.SetInput(value, time.Now())
	}
	return m, cmd
}

// activate hands the selected result to the executor. The launcher
// exits after launching something; theme changes keep it open so the
// new colors can be seen immediately, and a failed start keeps it open
// so the failure status is visible.
func (m *Model) activate() (tea.Model, tea.Cmd) {
	res, ok := m.engine.Current()
	if !ok {
		return m, nil
	}

	if err := m.executor.Activate(res); err != nil {
		return m, nil
	}

	// Only a launch that actually started counts as recent.
	if res.Kind == domain.KindApp {
		m.engine.MarkLaunched(res.Label)
	}
	if res.Kind == domain.KindTheme {
		return m, nil
	}
	m.log.Info("activated", "kind", res.Kind, "label", res.Label)
	return m, tea.Quit
}

func (m *Model) handleEvent(event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.LaunchFailedEvent:
		m.setStatus(fmt.Sprintf("failed to launch %s: %v", e.Label, e.Err), true)
	case domain.ThemeAppliedEvent:
		m.styles = NewStyles(currentTheme(m.cfg))
		m.setStatus("theme: "+e.Name, false)
	case domain.ErrorEvent:
		m.setStatus(e.Message, true)
	}
}

// SetStatus shows a transient status message. Used for startup notices
// that happen before the program loop (and its event forwarding) runs.
func (m *Model) SetStatus(text string) {
	m.setStatus(text, false)
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
	m.statusUntil = time.Now().Add(statusTimeout)
}

// visibleRows is the result-list height left after input and status
// lines and the main padding.
func (m *Model) visibleRows() int {
	rows := m.height - 5
	if rows < 1 {
		rows = m.cfg.UI.MaxResults
	}
	if rows > m.cfg.UI.MaxResults {
		rows = m.cfg.UI.MaxResults
	}
	return rows
}

func currentTheme(cfg *config.Config) config.Theme {
	for _, t := range cfg.Themes {
		if t.Name == cfg.CurrentTheme {
			return t
		}
	}
	if len(cfg.Themes) > 0 {
		return cfg.Themes[0]
	}
	return config.Theme{Foreground: "252", Accent: "99", Highlight: "226"}
}
