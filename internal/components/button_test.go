package components

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

func viewFor(kind, size string, status button.Status, enabled bool) button.View {
	p := button.DefaultProps()
	p.Label = "Save"
	p.Icon = "*"
	p.Kind = kind
	p.Size = size
	p.Enabled = enabled
	return button.ViewFor(p, status, nil)
}

func applied(v button.View, opts ButtonOptions) lipgloss.Style {
	return Style(DefaultTheme(), lipgloss.NewStyle(), ButtonAppliers(v, opts)...)
}

func TestButtonAppliersKindBackground(t *testing.T) {
	theme := DefaultTheme()

	style := applied(viewFor("primary", "medium", button.StatusDefault, true), ButtonOptions{})
	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())

	style = applied(viewFor("danger", "medium", button.StatusDefault, true), ButtonOptions{})
	assert.Equal(t, theme.Palette.Danger.Base, style.GetBackground())

	style = applied(viewFor("", "medium", button.StatusDefault, true), ButtonOptions{})
	assert.Equal(t, lipgloss.NoColor{}, style.GetBackground())
}

func TestButtonAppliersSizePadding(t *testing.T) {
	cases := map[string]int{
		"tiny":   0,
		"small":  1,
		"medium": 2,
		"large":  3,
		"huge":   2,
	}
	for size, want := range cases {
		style := applied(viewFor("primary", size, button.StatusDefault, true), ButtonOptions{})
		assert.Equal(t, want, style.GetPaddingLeft(), "size %s", size)
	}
}

func TestButtonAppliersStatusTreatment(t *testing.T) {
	theme := DefaultTheme()

	pending := applied(viewFor("primary", "medium", button.StatusPending, true), ButtonOptions{})
	assert.True(t, pending.GetFaint(), "pending buttons are disabled and render faint")

	fulfilled := applied(viewFor("primary", "medium", button.StatusFulfilled, true), ButtonOptions{})
	assert.Equal(t, theme.Palette.Success.Base, fulfilled.GetBorderTopForeground())
	assert.False(t, fulfilled.GetFaint())

	rejected := applied(viewFor("primary", "medium", button.StatusRejected, true), ButtonOptions{})
	assert.Equal(t, theme.Palette.Danger.Base, rejected.GetBorderTopForeground())
}

func TestButtonAppliersFocus(t *testing.T) {
	theme := DefaultTheme()

	focused := applied(viewFor("default", "medium", button.StatusDefault, true), ButtonOptions{Focused: true})
	assert.Equal(t, lipgloss.ThickBorder(), focused.GetBorderStyle())
	assert.Equal(t, theme.Palette.Primary.Base, focused.GetBorderTopForeground())

	disabled := applied(viewFor("default", "medium", button.StatusDefault, false), ButtonOptions{Focused: true})
	assert.Equal(t, lipgloss.RoundedBorder(), disabled.GetBorderStyle(), "disabled buttons do not show focus")
}

func TestButtonContent(t *testing.T) {
	v := viewFor("primary", "medium", button.StatusDefault, true)
	assert.Equal(t, "* Save", ButtonContent(v, ""))
	assert.Equal(t, "⣾ * Save", ButtonContent(v, "⣾"))

	v.Icon = ""
	assert.Equal(t, "Save", ButtonContent(v, " "))
}

func TestRenderButtonContainsContent(t *testing.T) {
	p := button.DefaultProps()
	p.Label = "Delete"
	p.Kind = "danger"
	v := button.ViewFor(p, button.StatusRejected, errors.New("x"))

	out := RenderButton(DefaultTheme(), v, ButtonOptions{})
	assert.Contains(t, out, "Delete")
}

func TestJoinButtons(t *testing.T) {
	assert.Equal(t, "", JoinButtons(1))
	assert.Equal(t, "a  b", JoinButtons(2, "a", "b"))
}
