package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zzbutton/internal/actions"
	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/components"
	"github.com/alexisbeaulieu97/zzbutton/internal/config"
	"github.com/alexisbeaulieu97/zzbutton/internal/logger"
)

// AppContext bundles what every command needs once the document is loaded.
type AppContext struct {
	Path       string
	Config     *config.Config
	Props      []button.Props
	Dispatcher *swappableDispatcher
	Logger     *logger.Logger
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	path := flags.configPath()
	if err := validateConfigPath(path); err != nil {
		return nil, err
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  flags.logLevel(cfg.Settings.LogLevel),
		Format: flags.logFormat(),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	reg, err := actions.FromConfig(cfg.Actions, log)
	if err != nil {
		return nil, err
	}

	components.SetTheme(components.ThemeByName(cfg.Settings.Theme))

	return &AppContext{
		Path:       path,
		Config:     cfg,
		Props:      cfg.ButtonProps(),
		Dispatcher: &swappableDispatcher{current: reg},
		Logger:     log.With("document", cfg.Name),
	}, nil
}

func (a *AppContext) props(id string) (button.Props, error) {
	for _, p := range a.Props {
		if p.ID == id {
			return p, nil
		}
	}
	return button.Props{}, fmt.Errorf("button %q not found in %s", id, a.Path)
}

// reload swaps in a freshly loaded document's actions and buttons.
func (a *AppContext) reload(cfg *config.Config) error {
	reg, err := actions.FromConfig(cfg.Actions, a.Logger)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Props = cfg.ButtonProps()
	a.Dispatcher.swap(reg)
	components.SetTheme(components.ThemeByName(cfg.Settings.Theme))
	return nil
}

// swappableDispatcher lets a running program pick up reloaded actions.
type swappableDispatcher struct {
	mu      sync.RWMutex
	current button.Dispatcher
}

func (d *swappableDispatcher) Send(ctx context.Context, action string, supply button.SupplyFunc) error {
	d.mu.RLock()
	current := d.current
	d.mu.RUnlock()
	return current.Send(ctx, action, supply)
}

func (d *swappableDispatcher) swap(next button.Dispatcher) {
	d.mu.Lock()
	d.current = next
	d.mu.Unlock()
}
