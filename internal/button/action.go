package button

import (
	"context"
	"time"
)

// SupplyFunc hands the promise for a dispatched action back to the button.
type SupplyFunc func(Promise)

// Action is a host action. It performs or starts the real work and calls
// supply with a promise for its outcome.
type Action func(ctx context.Context, supply SupplyFunc)

// Dispatcher routes a named action to the host.
type Dispatcher interface {
	Send(ctx context.Context, action string, supply SupplyFunc) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, action string, supply SupplyFunc) error

// Send implements Dispatcher.
func (fn DispatcherFunc) Send(ctx context.Context, action string, supply SupplyFunc) error {
	return fn(ctx, action, supply)
}

// Dispatch sends the button's action and waits for the host to supply a
// promise. A dispatch error is returned as-is; callers treat it as a
// rejection.
func Dispatch(ctx context.Context, d Dispatcher, action string) (Promise, error) {
	supplied := make(chan Promise, 1)
	supply := func(p Promise) {
		select {
		case supplied <- p:
		default:
		}
	}

	if err := d.Send(ctx, action, supply); err != nil {
		return nil, err
	}

	select {
	case p := <-supplied:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Press runs one full click cycle on the calling goroutine: click, wait for
// the delay, dispatch, await the promise and settle. observe, if set, is
// called after every status change. Press returns ErrNotClickable when the
// click is ignored and ctx.Err() when ctx ends before settlement, in which
// case the button stays pending.
func Press(ctx context.Context, b *Button, d Dispatcher, observe func(Status)) error {
	notify := func() {
		if observe != nil {
			observe(b.Status())
		}
	}

	ticket, ok := b.Click()
	if !ok {
		return ErrNotClickable
	}
	notify()

	if delay := b.Delay(); delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	p, err := Dispatch(ctx, d, b.Props().Action)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if b.Settle(ticket, nil, err) {
			notify()
		}
		return nil
	}
	b.Supply(ticket, p)

	value, err := Await(ctx, b.Promise())
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	if b.Settle(ticket, value, err) {
		notify()
	}
	return nil
}
