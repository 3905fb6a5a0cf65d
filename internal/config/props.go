package config

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// Props converts the button declaration into widget props, applying the
// documented defaults. Buttons without an id get a random one.
func (b Button) Props() button.Props {
	p := button.DefaultProps()

	p.ID = b.ID
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Label = b.Label
	p.Icon = b.Icon
	p.Labels = statusMap(b.Labels)
	p.Icons = statusMap(b.Icons)
	p.Size = b.Size
	if p.Size == "" {
		p.Size = button.SizeMedium
	}
	switch {
	case b.Kind != nil:
		p.Kind = *b.Kind
	case b.Theme != nil:
		p.Kind = *b.Theme
	}
	if b.Enabled != nil {
		p.Enabled = *b.Enabled
	}
	if b.Delay != nil {
		p.Delay = b.Delay.Std()
	}
	p.Action = b.Action
	p.Classes = append([]string(nil), b.Classes...)

	return p
}

// ButtonProps converts every declared button, preserving order.
func (c *Config) ButtonProps() []button.Props {
	if c == nil {
		return nil
	}
	out := make([]button.Props, 0, len(c.Buttons))
	for _, b := range c.Buttons {
		out = append(out, b.Props())
	}
	return out
}

func statusMap(in map[string]string) map[button.Status]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[button.Status]string, len(in))
	for k, v := range in {
		out[button.Status(k)] = v
	}
	return out
}
