// Package render writes button views as HTML for server-rendered hosts.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// Button renders v as a <button> element. The status attribute lets
// stylesheets target `.zz-button[status=fulfilled]`.
func Button(v button.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<button")
		if v.ID != "" {
			writeAttr(&b, "id", v.ID)
		}
		writeAttr(&b, "class", v.Class())
		for _, attr := range v.Attributes() {
			if attr.Name == "disabled" {
				b.WriteString(" disabled")
				continue
			}
			writeAttr(&b, attr.Name, attr.Value)
		}
		if text := v.ErrorText(); text != "" {
			writeAttr(&b, "title", text)
		}
		b.WriteString(">")

		if v.Icon != "" {
			fmt.Fprintf(&b, `<i class="%s"></i>`, templ.EscapeString(v.Icon))
			if v.Label != "" {
				b.WriteString(" ")
			}
		}
		b.WriteString(templ.EscapeString(v.Label))
		b.WriteString("</button>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// String renders v to a string.
func String(ctx context.Context, v button.View) (string, error) {
	var b strings.Builder
	if err := Button(v).Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeAttr(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, ` %s="%s"`, name, templ.EscapeString(value))
}
