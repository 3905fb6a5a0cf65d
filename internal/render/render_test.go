package render

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

func props() button.Props {
	p := button.DefaultProps()
	p.ID = "save"
	p.Label = "Save"
	p.Icon = "fa fa-save"
	p.Kind = "primary"
	p.Size = "small"
	p.Labels = map[button.Status]string{button.StatusPending: "Saving"}
	p.Icons = map[button.Status]string{button.StatusPending: "fa fa-spinner"}
	return p
}

func TestButtonDefault(t *testing.T) {
	t.Parallel()

	out, err := String(context.Background(), button.ViewFor(props(), button.StatusDefault, nil))
	require.NoError(t, err)
	assert.Equal(t,
		`<button id="save" class="zz-button btn btn-primary btn-sm" status="default" type="button"><i class="fa fa-save"></i> Save</button>`,
		out,
	)
}

func TestButtonPendingIsDisabled(t *testing.T) {
	t.Parallel()

	out, err := String(context.Background(), button.ViewFor(props(), button.StatusPending, nil))
	require.NoError(t, err)
	assert.Contains(t, out, `status="pending"`)
	assert.Contains(t, out, " disabled>")
	assert.Contains(t, out, `<i class="fa fa-spinner"></i> Saving</button>`)
}

func TestButtonRejectedCarriesErrorTitle(t *testing.T) {
	t.Parallel()

	out, err := String(context.Background(), button.ViewFor(props(), button.StatusRejected, errors.New(`quota "exceeded"`)))
	require.NoError(t, err)
	assert.Contains(t, out, `title="quota &#34;exceeded&#34;"`)
	assert.NotContains(t, out, "disabled")
}

func TestButtonEscapesLabel(t *testing.T) {
	t.Parallel()

	p := button.DefaultProps()
	p.Label = "<b>x</b>"
	out, err := String(context.Background(), button.ViewFor(p, button.StatusDefault, nil))
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;")
	assert.NotContains(t, out, "<i ")
	assert.NotContains(t, out, ` id=`)
}
