package button

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredResolveRunsCallbacksOnce(t *testing.T) {
	t.Parallel()

	d := NewDeferred()
	var got []any
	d.Then(func(v any) { got = append(got, v) }, func(error) { t.Fatal("unexpected rejection") })

	require.True(t, d.Resolve(42))
	require.False(t, d.Resolve(43))
	require.False(t, d.Reject(errors.New("late")))
	require.True(t, d.Settled())
	assert.Equal(t, []any{42}, got)
}

func TestDeferredThenAfterSettlement(t *testing.T) {
	t.Parallel()

	reason := errors.New("nope")
	p := Rejected(reason)

	var got error
	p.Then(nil, func(err error) { got = err })
	assert.Same(t, reason, got)

	var value any
	Resolved("ok").Then(func(v any) { value = v }, nil)
	assert.Equal(t, "ok", value)
}

func TestDeferredRejectNilReason(t *testing.T) {
	t.Parallel()

	_, err := Await(context.Background(), Rejected(nil))
	assert.ErrorIs(t, err, ErrRejected)
}

func TestDeferredConcurrentSettle(t *testing.T) {
	t.Parallel()

	d := NewDeferred()
	var calls int
	var mu sync.Mutex
	d.Then(func(any) { mu.Lock(); calls++; mu.Unlock() }, func(error) { mu.Lock(); calls++; mu.Unlock() })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				d.Resolve(i)
			} else {
				d.Reject(errors.New("x"))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestGoAndAwait(t *testing.T) {
	t.Parallel()

	p := Go(context.Background(), func(context.Context) (any, error) {
		return "done", nil
	})
	value, err := Await(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "done", value)

	boom := errors.New("boom")
	_, err = Await(context.Background(), Go(context.Background(), func(context.Context) (any, error) {
		return nil, boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestAwaitNilPromise(t *testing.T) {
	t.Parallel()

	value, err := Await(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestAwaitHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := Await(ctx, NewDeferred())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
