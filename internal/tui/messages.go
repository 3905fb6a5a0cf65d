package tui

import (
	"time"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// ClickMsg clicks the button with the given id, as if the user pressed it.
type ClickMsg struct {
	ID string
}

// DispatchMsg fires once a click's delay has elapsed.
type DispatchMsg struct {
	ID     string
	Ticket button.Ticket
}

// SuppliedMsg carries the promise the host supplied for a click, or the
// dispatch error.
type SuppliedMsg struct {
	ID      string
	Ticket  button.Ticket
	Promise button.Promise
	Err     error
}

// SettledMsg carries the outcome of a supplied promise.
type SettledMsg struct {
	ID     string
	Ticket button.Ticket
	Value  any
	Err    error
}

// PropsChangedMsg replaces the host-controlled props of all buttons, e.g.
// after a config reload. Err reports a failed reload and leaves buttons as
// they are.
type PropsChangedMsg struct {
	Props []button.Props
	Err   error
}

// Transition records one status change.
type Transition struct {
	ID   string
	From button.Status
	To   button.Status
	At   time.Time
	// Detail holds the rejection reason or fulfilment value, if any.
	Detail string
}
