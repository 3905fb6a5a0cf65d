package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ClickMsg:
		cmd := m.click(msg.ID)
		if cmd == nil && m.quitOnSettle && msg.ID == m.autoClick {
			// The auto-click was ignored, so nothing will ever settle.
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	case DispatchMsg:
		return m.forward(msg.ID, msg)
	case SuppliedMsg:
		return m.forward(msg.ID, msg)
	case SettledMsg:
		return m.forward(msg.ID, msg)
	case PropsChangedMsg:
		m.applyProps(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		if len(m.buttons) > 0 {
			m.cursor = (m.cursor + 1) % len(m.buttons)
		}
	case key.Matches(msg, m.keys.Prev):
		if len(m.buttons) > 0 {
			m.cursor = (m.cursor - 1 + len(m.buttons)) % len(m.buttons)
		}
	case key.Matches(msg, m.keys.Press):
		cmd := m.click(m.Focused())
		return m, cmd
	}
	return m, nil
}

func (m *Model) click(id string) tea.Cmd {
	bm := m.find(id)
	if bm == nil {
		m.log.Warn(fmt.Sprintf("click on unknown button %q", id))
		return nil
	}
	from := bm.Button().Status()
	cmd := bm.Click()
	m.record(bm, from)
	return cmd
}

func (m Model) forward(id string, msg tea.Msg) (tea.Model, tea.Cmd) {
	bm := m.find(id)
	if bm == nil {
		return m, nil
	}
	from := bm.Button().Status()
	cmd := bm.Update(msg)
	m.record(bm, from)

	if m.quitOnSettle && id == m.autoClick && from == button.StatusPending && bm.Button().Status().Settled() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// record appends a transition when bm's status moved away from from.
func (m *Model) record(bm *ButtonModel, from button.Status) {
	b := bm.Button()
	to := b.Status()
	if to == from {
		return
	}

	t := Transition{ID: b.ID(), From: from, To: to, At: time.Now()}
	switch to {
	case button.StatusRejected:
		t.Detail = b.View().ErrorText()
	case button.StatusFulfilled:
		if v := b.Value(); v != nil {
			t.Detail = fmt.Sprint(v)
		}
	}

	m.log.Transition(t.ID, from.String(), to.String())
	m.transitions = append(m.transitions, t)
	if len(m.transitions) > maxTransitions {
		m.transitions = m.transitions[len(m.transitions)-maxTransitions:]
	}
}

// applyProps reconciles the hosted buttons with msg.Props by id. Known
// buttons keep their status, new ones are appended and missing ones dropped.
func (m *Model) applyProps(msg PropsChangedMsg) {
	if msg.Err != nil {
		m.reloadErr = msg.Err
		m.log.Error(msg.Err, "config reload failed")
		return
	}
	m.reloadErr = nil

	focused := m.Focused()
	next := make([]*ButtonModel, 0, len(msg.Props))
	for _, p := range msg.Props {
		if bm := m.find(p.ID); bm != nil {
			bm.Button().SetProps(p)
			next = append(next, bm)
			continue
		}
		next = append(next, NewButtonModel(m.ctx, p, m.dispatcher))
	}
	m.buttons = next

	m.cursor = 0
	for i, bm := range m.buttons {
		if bm.ID() == focused {
			m.cursor = i
			break
		}
	}
	m.log.Info(fmt.Sprintf("reloaded %d buttons", len(m.buttons)))
}
