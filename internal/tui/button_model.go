package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// ButtonModel drives one button through the Bubble Tea loop. Every status
// change happens inside Update; Cmds only wait on timers and promises.
type ButtonModel struct {
	b          *button.Button
	dispatcher button.Dispatcher
	ctx        context.Context
}

// NewButtonModel wraps props in a ButtonModel that dispatches through d.
func NewButtonModel(ctx context.Context, props button.Props, d button.Dispatcher) *ButtonModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ButtonModel{b: button.New(props), dispatcher: d, ctx: ctx}
}

// Button exposes the underlying widget state.
func (m *ButtonModel) Button() *button.Button { return m.b }

// ID returns the button id.
func (m *ButtonModel) ID() string { return m.b.ID() }

// Click starts a click cycle and returns the Cmd that fires the dispatch
// after the delay. It returns nil when the click is ignored.
func (m *ButtonModel) Click() tea.Cmd {
	ticket, ok := m.b.Click()
	if !ok {
		return nil
	}

	msg := DispatchMsg{ID: m.b.ID(), Ticket: ticket}
	if delay := m.b.Delay(); delay > 0 {
		return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
	}
	return func() tea.Msg { return msg }
}

// Update applies a lifecycle message addressed to this button.
func (m *ButtonModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DispatchMsg:
		if msg.Ticket != m.b.Ticket() || m.b.Status() != button.StatusPending {
			return nil
		}
		return m.dispatchCmd(msg.Ticket)
	case SuppliedMsg:
		if msg.Err != nil {
			m.b.Settle(msg.Ticket, nil, msg.Err)
			return nil
		}
		if !m.b.Supply(msg.Ticket, msg.Promise) {
			return nil
		}
		return m.awaitCmd(msg.Ticket, m.b.Promise())
	case SettledMsg:
		m.b.Settle(msg.Ticket, msg.Value, msg.Err)
	}
	return nil
}

func (m *ButtonModel) dispatchCmd(ticket button.Ticket) tea.Cmd {
	id, action, ctx, d := m.b.ID(), m.b.Props().Action, m.ctx, m.dispatcher
	return func() tea.Msg {
		if d == nil {
			return SuppliedMsg{ID: id, Ticket: ticket, Promise: nil}
		}
		p, err := button.Dispatch(ctx, d, action)
		return SuppliedMsg{ID: id, Ticket: ticket, Promise: p, Err: err}
	}
}

func (m *ButtonModel) awaitCmd(ticket button.Ticket, p button.Promise) tea.Cmd {
	id, ctx := m.b.ID(), m.ctx
	return func() tea.Msg {
		value, err := button.Await(ctx, p)
		return SettledMsg{ID: id, Ticket: ticket, Value: value, Err: err}
	}
}
