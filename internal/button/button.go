package button

import (
	"errors"
	"time"
)

// DefaultDelay is the debounce applied before a host action is dispatched.
const DefaultDelay = 250 * time.Millisecond

// ErrNotClickable is returned by Press when a click is ignored.
var ErrNotClickable = errors.New("button is not clickable")

// Props are the host-controlled properties of a button.
type Props struct {
	ID      string
	Label   string
	Icon    string
	Labels  map[Status]string
	Icons   map[Status]string
	Kind    string
	Size    string
	Classes []string
	Enabled bool
	Action  string
	Delay   time.Duration
}

// DefaultProps returns props with the documented defaults applied.
func DefaultProps() Props {
	return Props{
		Kind:    KindDefault,
		Size:    SizeMedium,
		Enabled: true,
		Delay:   DefaultDelay,
	}
}

func (p Props) clone() Props {
	p.Labels = cloneOverrides(p.Labels)
	p.Icons = cloneOverrides(p.Icons)
	p.Classes = append([]string(nil), p.Classes...)
	return p
}

func cloneOverrides(in map[Status]string) map[Status]string {
	if in == nil {
		return nil
	}
	out := make(map[Status]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Ticket identifies the promise belonging to one click.
type Ticket uint64

// Button holds the presentation state of a single smart button.
type Button struct {
	props   Props
	status  Status
	ticket  Ticket
	promise Promise
	value   any
	err     error
}

// New creates a button in the default status.
func New(props Props) *Button {
	return &Button{props: props.clone(), status: StatusDefault}
}

// ID returns the button identifier.
func (b *Button) ID() string { return b.props.ID }

// Props returns a copy of the current props.
func (b *Button) Props() Props { return b.props.clone() }

// SetProps replaces the host-controlled props. Status, promise and error are
// kept.
func (b *Button) SetProps(props Props) {
	b.props = props.clone()
}

// Status returns the current lifecycle status.
func (b *Button) Status() Status { return b.status }

// Err returns the rejection reason while the button is rejected.
func (b *Button) Err() error { return b.err }

// Value returns the fulfilment value while the button is fulfilled.
func (b *Button) Value() any { return b.value }

// Promise returns the promise supplied for the current click, if any.
func (b *Button) Promise() Promise { return b.promise }

// Ticket returns the ticket of the most recent click.
func (b *Button) Ticket() Ticket { return b.ticket }

// Disabled is true when the button is not enabled or its action is pending.
func (b *Button) Disabled() bool {
	return !b.props.Enabled || b.status == StatusPending
}

// Classes returns the computed class list.
func (b *Button) Classes() []string { return ClassList(b.props) }

// Label returns the label for the current status.
func (b *Button) Label() string { return ResolveLabel(b.props, b.status) }

// Icon returns the icon for the current status.
func (b *Button) Icon() string { return ResolveIcon(b.props, b.status) }

// Delay returns how long to wait between a click and dispatching the action.
// Without per-status overrides there is nothing to show while waiting, so the
// action is dispatched immediately.
func (b *Button) Delay() time.Duration {
	if b.props.Delay <= 0 || !HasOverrides(b.props) {
		return 0
	}
	return b.props.Delay
}

// Click starts a new action cycle. It is ignored (ok=false) when the button
// is disabled or has no action.
func (b *Button) Click() (ticket Ticket, ok bool) {
	if b.Disabled() || b.props.Action == "" {
		return 0, false
	}
	b.ticket++
	b.promise = nil
	b.value = nil
	b.err = nil
	b.status = StatusPending
	return b.ticket, true
}

// Supply records the promise the host returned for ticket. A nil promise is
// treated as already fulfilled. Stale tickets are ignored.
func (b *Button) Supply(ticket Ticket, p Promise) bool {
	if ticket != b.ticket || b.status != StatusPending {
		return false
	}
	if p == nil {
		p = Resolved(nil)
	}
	b.promise = p
	return true
}

// Settle applies the outcome of the promise for ticket. A nil err fulfils the
// button, anything else rejects it. Stale tickets are ignored.
func (b *Button) Settle(ticket Ticket, value any, err error) bool {
	if ticket != b.ticket || b.status != StatusPending {
		return false
	}
	if err != nil {
		b.status = StatusRejected
		b.err = err
		return true
	}
	b.status = StatusFulfilled
	b.value = value
	return true
}

// View snapshots the derived presentation of the button.
func (b *Button) View() View {
	v := ViewFor(b.props, b.status, b.err)
	v.Value = b.value
	return v
}
