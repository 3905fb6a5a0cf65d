package button

import "strings"

// Attribute is a DOM attribute bound from button state.
type Attribute struct {
	Name  string
	Value string
}

// View is the derived presentation of a button in a given status.
type View struct {
	ID       string
	Label    string
	Icon     string
	Classes  []string
	Status   Status
	Disabled bool
	Err      error
	Value    any
}

// ViewFor computes the presentation of props in status without touching any
// live button. err is only kept for the rejected status.
func ViewFor(p Props, status Status, err error) View {
	if !status.Valid() {
		status = StatusDefault
	}
	if status != StatusRejected {
		err = nil
	}
	return View{
		ID:       p.ID,
		Label:    ResolveLabel(p, status),
		Icon:     ResolveIcon(p, status),
		Classes:  ClassList(p),
		Status:   status,
		Disabled: !p.Enabled || status == StatusPending,
		Err:      err,
	}
}

// Class joins the class list the way a class attribute expects.
func (v View) Class() string {
	return strings.Join(v.Classes, " ")
}

// Attributes returns the bound DOM attributes. disabled is only present when
// the button is disabled.
func (v View) Attributes() []Attribute {
	attrs := []Attribute{
		{Name: "status", Value: v.Status.String()},
		{Name: "type", Value: "button"},
	}
	if v.Disabled {
		attrs = append(attrs, Attribute{Name: "disabled", Value: "disabled"})
	}
	return attrs
}

// ErrorText returns the rejection reason as text, or "".
func (v View) ErrorText() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}
