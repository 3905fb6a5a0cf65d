package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// kindSlots maps kind classes to palette slots. Kinds without an entry
// render with the neutral slot.
var kindSlots = map[string]PaletteSlot{
	"btn-default":   PaletteNeutral,
	"btn-primary":   PalettePrimary,
	"btn-secondary": PaletteSecondary,
	"btn-success":   PaletteSuccess,
	"btn-danger":    PaletteDanger,
	"btn-error":     PaletteDanger,
	"btn-warning":   PaletteWarning,
	"btn-info":      PaletteInfo,
	"btn-muted":     PaletteNeutral,
}

var sizePadding = map[string]SpacingSize{
	"btn-xs": SpacingSizeNone,
	"btn-sm": SpacingSizeSmall,
	"btn-lg": SpacingSizeLarge,
}

// ButtonOptions carries host-side decoration that is not part of the
// button's own state.
type ButtonOptions struct {
	Focused bool
	// Prefix is drawn before the icon, e.g. a spinner frame.
	Prefix string
}

// ButtonAppliers derives the style appliers for a button view from its
// classes and status.
func ButtonAppliers(v button.View, opts ButtonOptions) []StyleApplier {
	slot := PaletteSlot(nil)
	padding := SpacingSizeMedium
	for _, class := range v.Classes {
		if s, ok := kindSlots[class]; ok {
			slot = s
		}
		if size, ok := sizePadding[class]; ok {
			padding = size
		}
	}

	appliers := []StyleApplier{Rounded(), PaddingX(padding), Bold(true)}
	if slot != nil {
		appliers = append(appliers, Background(slot))
	}

	switch v.Status {
	case button.StatusFulfilled:
		appliers = append(appliers, BorderColour(PaletteSuccess))
	case button.StatusRejected:
		appliers = append(appliers, BorderColour(PaletteDanger))
	default:
		appliers = append(appliers, BorderColour(PaletteNeutral))
	}

	if opts.Focused && !v.Disabled {
		appliers = append(appliers, Thick(), BorderColour(PalettePrimary))
	}
	if v.Disabled {
		appliers = append(appliers, Faint(true))
	}
	return appliers
}

// RenderButton draws a button view with the given theme.
func RenderButton(theme Theme, v button.View, opts ButtonOptions) string {
	style := Style(theme, lipgloss.NewStyle(), ButtonAppliers(v, opts)...)
	return style.Render(ButtonContent(v, opts.Prefix))
}

// ButtonContent joins prefix, icon and label with single spaces.
func ButtonContent(v button.View, prefix string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{prefix, v.Icon, v.Label} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// JoinButtons lays rendered buttons out horizontally with spacing columns
// between them.
func JoinButtons(spacing int, rendered ...string) string {
	if len(rendered) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", spacing)
	parts := make([]string, 0, len(rendered)*2-1)
	for i, r := range rendered {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, r)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
