package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#00AAFF"})

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})

	styleFocusedLabel = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#00AAFF"})

	styleButton = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"})

	styleFocusedButton = styleButton.
				Bold(true).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#00AAFF"})

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"})

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}).
			Bold(true)
)

// View renders the open dialog body (title, fields, buttons, inline error).
// The caller wraps it in a modal frame.
func (c *Controller) View() string {
	if !c.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(c.desc.Title))
	b.WriteString("\n\n")

	kind, focused := c.Focused()
	for i, w := range c.widgets {
		label := styleLabel
		if kind == ElementField && focused == i {
			label = styleFocusedLabel
		}
		text := w.field.Label
		if w.field.Required {
			text += " *"
		}
		b.WriteString(label.Render(text))
		b.WriteString("\n")
		if w.field.Multiline {
			b.WriteString(w.area.View())
		} else {
			b.WriteString(w.input.View())
		}
		b.WriteString("\n\n")
	}

	b.WriteString(c.renderButtons())

	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(c.err))
	}

	return b.String()
}

func (c *Controller) renderButtons() string {
	kind, focused := c.Focused()

	submit := c.desc.SubmitLabel
	if submit == "" {
		submit = "Save"
	}

	buttons := []string{renderButton(submit, kind == ElementSubmit, false)}
	for i, a := range c.desc.Actions {
		buttons = append(buttons, renderButton(a.Label, kind == ElementAction && focused == i, a.Danger))
	}
	buttons = append(buttons, renderButton("Close", kind == ElementClose, false))

	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func renderButton(label string, focused, danger bool) string {
	style := styleButton
	if focused {
		style = styleFocusedButton
	}
	if danger {
		label = styleDanger.Render(label)
	}
	return style.Render(label)
}
