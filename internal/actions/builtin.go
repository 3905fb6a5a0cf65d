package actions

import (
	"context"
	"errors"
	"time"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// Func adapts blocking work into an action whose promise settles with the
// work's result.
func Func(fn func(ctx context.Context) (any, error)) button.Action {
	return func(ctx context.Context, supply button.SupplyFunc) {
		supply(button.Go(ctx, fn))
	}
}

// Sleep resolves with value after d, or rejects if ctx ends first.
func Sleep(d time.Duration, value any) button.Action {
	return Func(func(ctx context.Context) (any, error) {
		if err := wait(ctx, d); err != nil {
			return nil, err
		}
		return value, nil
	})
}

// Fail rejects with message after d.
func Fail(d time.Duration, message string) button.Action {
	if message == "" {
		message = "action failed"
	}
	return Func(func(ctx context.Context) (any, error) {
		if err := wait(ctx, d); err != nil {
			return nil, err
		}
		return nil, errors.New(message)
	})
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
