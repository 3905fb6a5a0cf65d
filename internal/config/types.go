package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents a button document.
type Config struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Actions     []Action `yaml:"actions,omitempty" validate:"omitempty,dive"`
	Buttons     []Button `yaml:"buttons" validate:"required,min=1,dive"`
}

// Settings holds presentation and logging preferences.
type Settings struct {
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// Action declares a host action that buttons can dispatch.
type Action struct {
	Name     string            `yaml:"name" validate:"required,button_id"`
	Type     string            `yaml:"type" validate:"required,oneof=sleep fail command git"`
	Duration Duration          `yaml:"duration,omitempty" validate:"min=0"`
	Value    string            `yaml:"value,omitempty"`
	Message  string            `yaml:"message,omitempty"`
	Command  string            `yaml:"command,omitempty"`
	Shell    string            `yaml:"shell,omitempty"`
	WorkDir  string            `yaml:"workdir,omitempty"`
	Env      map[string]string `yaml:"env,omitempty"`
	Path     string            `yaml:"path,omitempty"`
}

// Button declares one smart button.
type Button struct {
	ID      string            `yaml:"id,omitempty" validate:"omitempty,button_id"`
	Label   string            `yaml:"label,omitempty"`
	Icon    string            `yaml:"icon,omitempty"`
	Labels  map[string]string `yaml:"labels,omitempty" validate:"omitempty,dive,keys,oneof=pending fulfilled rejected,endkeys"`
	Icons   map[string]string `yaml:"icons,omitempty" validate:"omitempty,dive,keys,oneof=pending fulfilled rejected,endkeys"`
	Kind    *string           `yaml:"kind,omitempty"`
	Theme   *string           `yaml:"theme,omitempty"`
	Size    string            `yaml:"size,omitempty"`
	Enabled *bool             `yaml:"enabled,omitempty"`
	Delay   *Duration         `yaml:"delay,omitempty"`
	Action  string            `yaml:"action,omitempty"`
	Classes []string          `yaml:"classes,omitempty"`
}

// Duration accepts either a Go duration string ("250ms", "1s") or a bare
// number of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}

	raw := strings.TrimSpace(value.Value)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, raw)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ActionMap builds a lookup table for actions by name.
func ActionMap(actions []Action) map[string]Action {
	out := make(map[string]Action, len(actions))
	for _, action := range actions {
		out[action.Name] = action
	}
	return out
}
