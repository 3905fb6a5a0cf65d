package button

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestButton(mutators ...func(*Props)) *Button {
	p := DefaultProps()
	p.ID = "save"
	p.Label = "Save"
	p.Action = "save"
	for _, mutate := range mutators {
		mutate(&p)
	}
	return New(p)
}

func TestNewButtonStartsInDefault(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	assert.Equal(t, StatusDefault, b.Status())
	assert.False(t, b.Disabled())
	assert.Nil(t, b.Promise())
	assert.NoError(t, b.Err())
	assert.Equal(t, "Save", b.Label())
	assert.Equal(t, []string{"zz-button", "btn", "btn-default"}, b.Classes())
}

func TestDisabledWhenNotEnabled(t *testing.T) {
	t.Parallel()

	b := newTestButton(func(p *Props) { p.Enabled = false })
	assert.True(t, b.Disabled())

	_, ok := b.Click()
	assert.False(t, ok)
	assert.Equal(t, StatusDefault, b.Status())
}

func TestClickWithoutActionIsIgnored(t *testing.T) {
	t.Parallel()

	b := newTestButton(func(p *Props) { p.Action = "" })
	_, ok := b.Click()
	assert.False(t, ok)
	assert.Equal(t, StatusDefault, b.Status())
}

func TestClickMovesToPendingAndDisables(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	ticket, ok := b.Click()
	require.True(t, ok)
	assert.Equal(t, Ticket(1), ticket)
	assert.Equal(t, StatusPending, b.Status())
	assert.True(t, b.Disabled())

	_, ok = b.Click()
	assert.False(t, ok, "pending button must not accept clicks")
}

func TestSupplyAndSettleFulfilled(t *testing.T) {
	t.Parallel()

	b := newTestButton(func(p *Props) {
		p.Labels = map[Status]string{StatusFulfilled: "Done"}
	})
	ticket, _ := b.Click()

	p := Resolved("ok")
	require.True(t, b.Supply(ticket, p))
	assert.Same(t, p, b.Promise())

	require.True(t, b.Settle(ticket, "ok", nil))
	assert.Equal(t, StatusFulfilled, b.Status())
	assert.Equal(t, "Done", b.Label())
	assert.Equal(t, "ok", b.Value())
	assert.False(t, b.Disabled())
}

func TestSettleRejectedStoresError(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	ticket, _ := b.Click()
	boom := errors.New("boom")

	require.True(t, b.Settle(ticket, nil, boom))
	assert.Equal(t, StatusRejected, b.Status())
	assert.ErrorIs(t, b.Err(), boom)
	assert.Equal(t, "boom", b.View().ErrorText())
}

func TestNextClickClearsPreviousOutcome(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	first, _ := b.Click()
	b.Supply(first, Rejected(errors.New("boom")))
	b.Settle(first, nil, errors.New("boom"))

	second, ok := b.Click()
	require.True(t, ok)
	assert.NotEqual(t, first, second)
	assert.Equal(t, StatusPending, b.Status())
	assert.NoError(t, b.Err())
	assert.Nil(t, b.Promise())
}

func TestStaleTicketsAreIgnored(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	first, _ := b.Click()
	b.Settle(first, nil, nil)
	second, _ := b.Click()

	assert.False(t, b.Supply(first, Resolved(nil)))
	assert.False(t, b.Settle(first, nil, errors.New("late")))
	assert.Equal(t, StatusPending, b.Status())

	assert.True(t, b.Settle(second, nil, nil))
	assert.False(t, b.Settle(second, nil, errors.New("twice")))
	assert.Equal(t, StatusFulfilled, b.Status())
}

func TestSupplyNilPromiseCountsAsResolved(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	ticket, _ := b.Click()
	require.True(t, b.Supply(ticket, nil))
	require.NotNil(t, b.Promise())

	var fulfilled bool
	b.Promise().Then(func(any) { fulfilled = true }, nil)
	assert.True(t, fulfilled)
}

func TestDelayOnlyAppliesWithOverrides(t *testing.T) {
	t.Parallel()

	plain := newTestButton()
	assert.Zero(t, plain.Delay())

	withOverride := newTestButton(func(p *Props) {
		p.Icons = map[Status]string{StatusPending: "…"}
	})
	assert.Equal(t, DefaultDelay, withOverride.Delay())

	custom := newTestButton(func(p *Props) {
		p.Labels = map[Status]string{StatusPending: "Saving"}
		p.Delay = time.Second
	})
	assert.Equal(t, time.Second, custom.Delay())
}

func TestSetPropsKeepsStatus(t *testing.T) {
	t.Parallel()

	b := newTestButton()
	b.Click()

	p := b.Props()
	p.Label = "Store"
	p.Enabled = false
	b.SetProps(p)

	assert.Equal(t, StatusPending, b.Status())
	assert.Equal(t, "Store", b.Label())
	assert.True(t, b.Disabled())
}

func TestPropsAreCopied(t *testing.T) {
	t.Parallel()

	labels := map[Status]string{StatusPending: "Saving"}
	p := DefaultProps()
	p.Labels = labels
	b := New(p)

	labels[StatusPending] = "mutated"
	assert.Equal(t, "Saving", b.Props().Labels[StatusPending])
}

func TestViewAttributes(t *testing.T) {
	t.Parallel()

	b := newTestButton(func(p *Props) { p.Kind = "primary"; p.Size = "small" })
	v := b.View()
	assert.Equal(t, "zz-button btn btn-primary btn-sm", v.Class())
	assert.Equal(t, []Attribute{{Name: "status", Value: "default"}, {Name: "type", Value: "button"}}, v.Attributes())

	b.Click()
	v = b.View()
	assert.Contains(t, v.Attributes(), Attribute{Name: "disabled", Value: "disabled"})
	assert.Contains(t, v.Attributes(), Attribute{Name: "status", Value: "pending"})
}

func TestViewForDropsErrorOutsideRejected(t *testing.T) {
	t.Parallel()

	p := DefaultProps()
	p.Label = "Go"
	v := ViewFor(p, StatusFulfilled, errors.New("x"))
	assert.NoError(t, v.Err)

	v = ViewFor(p, Status("nope"), nil)
	assert.Equal(t, StatusDefault, v.Status)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("done")
	assert.Error(t, err)
}
