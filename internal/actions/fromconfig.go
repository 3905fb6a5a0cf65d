package actions

import (
	"fmt"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/config"
	"github.com/alexisbeaulieu97/zzbutton/internal/logger"
	zzerrors "github.com/alexisbeaulieu97/zzbutton/pkg/errors"
)

// FromConfig builds a registry holding every action declared in defs.
func FromConfig(defs []config.Action, log *logger.Logger) (*Registry, error) {
	reg := NewRegistry(log)
	for _, def := range defs {
		action, err := Build(def)
		if err != nil {
			return nil, zzerrors.NewActionError(def.Name, err)
		}
		if err := reg.Register(def.Name, action); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Build turns one action declaration into a button.Action.
func Build(def config.Action) (button.Action, error) {
	switch def.Type {
	case "sleep":
		var value any = def.Value
		if def.Value == "" {
			value = nil
		}
		return Sleep(def.Duration.Std(), value), nil
	case "fail":
		return Fail(def.Duration.Std(), def.Message), nil
	case "command":
		return Command(CommandOptions{
			Command: def.Command,
			Shell:   def.Shell,
			WorkDir: def.WorkDir,
			Env:     def.Env,
		}), nil
	case "git":
		return GitHead(def.Path), nil
	default:
		return nil, fmt.Errorf("unsupported action type %q", def.Type)
	}
}
