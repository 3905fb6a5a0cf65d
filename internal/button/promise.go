package button

import (
	"context"
	"errors"
	"sync"
)

// ErrRejected is the rejection reason recorded when a promise rejects
// without one.
var ErrRejected = errors.New("promise rejected")

// Promise is an asynchronous result supplied by a host action.
//
// Then registers callbacks that run once the promise settles. Either callback
// may be nil. Implementations must invoke at most one callback, at most once.
type Promise interface {
	Then(onFulfilled func(value any), onRejected func(reason error))
}

// Deferred is a settle-once Promise that any goroutine may resolve or reject.
type Deferred struct {
	mu        sync.Mutex
	settled   bool
	rejected  bool
	value     any
	reason    error
	fulfilled []func(any)
	failed    []func(error)
}

// NewDeferred returns an unsettled Deferred.
func NewDeferred() *Deferred {
	return &Deferred{}
}

// Resolve fulfils the promise with value. It reports false if the promise was
// already settled.
func (d *Deferred) Resolve(value any) bool {
	d.mu.Lock()
	if d.settled {
		d.mu.Unlock()
		return false
	}
	d.settled = true
	d.value = value
	callbacks := d.fulfilled
	d.fulfilled, d.failed = nil, nil
	d.mu.Unlock()

	for _, fn := range callbacks {
		fn(value)
	}
	return true
}

// Reject settles the promise with reason. A nil reason becomes ErrRejected.
func (d *Deferred) Reject(reason error) bool {
	if reason == nil {
		reason = ErrRejected
	}

	d.mu.Lock()
	if d.settled {
		d.mu.Unlock()
		return false
	}
	d.settled = true
	d.rejected = true
	d.reason = reason
	callbacks := d.failed
	d.fulfilled, d.failed = nil, nil
	d.mu.Unlock()

	for _, fn := range callbacks {
		fn(reason)
	}
	return true
}

// Then implements Promise. Callbacks registered after settlement run
// immediately on the calling goroutine.
func (d *Deferred) Then(onFulfilled func(any), onRejected func(error)) {
	d.mu.Lock()
	if !d.settled {
		if onFulfilled != nil {
			d.fulfilled = append(d.fulfilled, onFulfilled)
		}
		if onRejected != nil {
			d.failed = append(d.failed, onRejected)
		}
		d.mu.Unlock()
		return
	}
	rejected, value, reason := d.rejected, d.value, d.reason
	d.mu.Unlock()

	if rejected {
		if onRejected != nil {
			onRejected(reason)
		}
		return
	}
	if onFulfilled != nil {
		onFulfilled(value)
	}
}

// Settled reports whether Resolve or Reject has been called.
func (d *Deferred) Settled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Resolved returns a promise already fulfilled with value.
func Resolved(value any) Promise {
	d := NewDeferred()
	d.Resolve(value)
	return d
}

// Rejected returns a promise already rejected with reason.
func Rejected(reason error) Promise {
	d := NewDeferred()
	d.Reject(reason)
	return d
}

// Go runs fn on a new goroutine and returns a promise for its result.
func Go(ctx context.Context, fn func(context.Context) (any, error)) Promise {
	d := NewDeferred()
	go func() {
		value, err := fn(ctx)
		if err != nil {
			d.Reject(err)
			return
		}
		d.Resolve(value)
	}()
	return d
}

// Await blocks until p settles or ctx ends. A nil promise counts as fulfilled
// with a nil value. When ctx ends first, Await returns ctx.Err() and the
// promise is left running.
func Await(ctx context.Context, p Promise) (any, error) {
	if p == nil {
		return nil, nil
	}

	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)
	deliver := func(out outcome) {
		select {
		case done <- out:
		default:
		}
	}
	p.Then(
		func(value any) { deliver(outcome{value: value}) },
		func(reason error) {
			if reason == nil {
				reason = ErrRejected
			}
			deliver(outcome{err: reason})
		},
	)

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
