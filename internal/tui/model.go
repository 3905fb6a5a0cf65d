package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/components"
	"github.com/alexisbeaulieu97/zzbutton/internal/logger"
)

const maxTransitions = 8

// Options configures a Model.
type Options struct {
	Title  string
	Theme  components.Theme
	Logger *logger.Logger
	// Context bounds every dispatched action and await.
	Context context.Context
	// AutoClick clicks the named button as soon as the program starts.
	AutoClick string
	// QuitOnSettle quits once the auto-clicked button settles.
	QuitOnSettle bool
}

// Model hosts a row of buttons in a Bubble Tea program.
type Model struct {
	title        string
	buttons      []*ButtonModel
	dispatcher   button.Dispatcher
	ctx          context.Context
	cursor       int
	keys         keyMap
	help         help.Model
	spinner      spinner.Model
	theme        components.Theme
	log          *logger.Logger
	transitions  []Transition
	autoClick    string
	quitOnSettle bool
	reloadErr    error
	width        int
	quitting     bool
}

// NewModel builds a Model for props that dispatches actions through d.
func NewModel(props []button.Props, d button.Dispatcher, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = components.GetTheme()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		title:        opts.Title,
		dispatcher:   d,
		ctx:          ctx,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      s,
		theme:        theme,
		log:          opts.Logger,
		autoClick:    opts.AutoClick,
		quitOnSettle: opts.QuitOnSettle,
	}
	for _, p := range props {
		m.buttons = append(m.buttons, NewButtonModel(ctx, p, d))
	}
	return m
}

// Init starts the spinner and the auto-click, if any.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.autoClick != "" {
		id := m.autoClick
		cmds = append(cmds, func() tea.Msg { return ClickMsg{ID: id} })
	}
	return tea.Batch(cmds...)
}

// Button returns the live button with the given id.
func (m Model) Button(id string) (*button.Button, bool) {
	bm := m.find(id)
	if bm == nil {
		return nil, false
	}
	return bm.Button(), true
}

// Buttons returns the hosted buttons in display order.
func (m Model) Buttons() []*button.Button {
	out := make([]*button.Button, 0, len(m.buttons))
	for _, bm := range m.buttons {
		out = append(out, bm.Button())
	}
	return out
}

// Focused returns the id of the focused button, or "" when there are none.
func (m Model) Focused() string {
	if m.cursor < 0 || m.cursor >= len(m.buttons) {
		return ""
	}
	return m.buttons[m.cursor].ID()
}

// Transitions returns the most recent status changes, oldest first.
func (m Model) Transitions() []Transition {
	out := make([]Transition, len(m.transitions))
	copy(out, m.transitions)
	return out
}

// ReloadErr returns the last config reload failure, if any.
func (m Model) ReloadErr() error {
	return m.reloadErr
}

func (m Model) find(id string) *ButtonModel {
	for _, bm := range m.buttons {
		if bm.ID() == id {
			return bm
		}
	}
	return nil
}
