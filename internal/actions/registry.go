// Package actions provides the host side of button clicks: a registry of
// named actions that hand promises back to the buttons that sent them.
package actions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/logger"
	zzerrors "github.com/alexisbeaulieu97/zzbutton/pkg/errors"
)

// ErrUnknownAction is wrapped by Send when no action is registered under the
// requested name.
var ErrUnknownAction = errors.New("unknown action")

// Registry implements button.Dispatcher over an in-memory map of actions.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]button.Action
	log     *logger.Logger
}

var _ button.Dispatcher = (*Registry)(nil)

// NewRegistry creates an empty registry. log may be nil.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		actions: make(map[string]button.Action),
		log:     log,
	}
}

// Register stores action under name.
func (r *Registry) Register(name string, action button.Action) error {
	if name == "" {
		return fmt.Errorf("action name is required")
	}
	if action == nil {
		return fmt.Errorf("action %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("action %q already registered", name)
	}
	r.actions[name] = action
	return nil
}

// Names lists the registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Send invokes the named action with supply.
func (r *Registry) Send(ctx context.Context, name string, supply button.SupplyFunc) error {
	r.mu.RLock()
	action, ok := r.actions[name]
	r.mu.RUnlock()

	if !ok {
		err := zzerrors.NewActionError(name, ErrUnknownAction)
		r.log.Error(err, "dispatch failed")
		return err
	}

	r.log.With("action", name).Debug("dispatching action")
	action(ctx, supply)
	return nil
}
