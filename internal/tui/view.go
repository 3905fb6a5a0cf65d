package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	title := "zzbutton"
	if m.title != "" {
		title = fmt.Sprintf("zzbutton • %s", m.title)
	}
	sections = append(sections, titleStyle.Render(title))

	if len(m.buttons) == 0 {
		sections = append(sections, defaultStyle.Render("no buttons configured"))
	} else {
		sections = append(sections, "", m.renderRow())
		sections = append(sections, m.renderFocus())
	}

	if m.reloadErr != nil {
		sections = append(sections, rejectedStyle.Render("reload failed: "+m.reloadErr.Error()))
	}

	if len(m.transitions) > 0 {
		sections = append(sections, sectionStyle.Render("Activity"), renderTransitions(m.transitions))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRow() string {
	rendered := make([]string, 0, len(m.buttons))
	for i, bm := range m.buttons {
		b := bm.Button()
		opts := components.ButtonOptions{Focused: i == m.cursor}
		if b.Status() == button.StatusPending {
			opts.Prefix = m.spinner.View()
		}
		rendered = append(rendered, components.RenderButton(m.theme, b.View(), opts))
	}
	return components.JoinButtons(2, rendered...)
}

func (m Model) renderFocus() string {
	b := m.buttons[m.cursor].Button()
	line := fmt.Sprintf("%s %s  %s", StatusIcon(b.Status().String()), b.ID(), defaultStyle.Render(strings.Join(b.Classes(), " ")))
	if b.Disabled() {
		line += defaultStyle.Render("  (disabled)")
	}
	if b.Status() == button.StatusRejected {
		line += "\n" + rejectedStyle.Render("  "+b.View().ErrorText())
	}
	return line
}

func renderTransitions(ts []Transition) string {
	lines := make([]string, 0, len(ts))
	for _, t := range ts {
		line := fmt.Sprintf(" %s %s: %s → %s", StatusIcon(t.To.String()), t.ID, t.From, t.To)
		if t.Detail != "" {
			line = fmt.Sprintf("%s (%s)", line, t.Detail)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
