package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/flashcli/internal/keybinds"
)

// renderModal renders a modal box centered over the screen
func (m *Model) renderModal(title, content, footer string, width, height int) string {
	// For small terminals, use almost full screen
	maxWidth := m.width - ViewportPaddingHorizontal
	maxHeight := m.height - ModalHeightMarginSmall

	if width > maxWidth {
		width = maxWidth
	}
	if height > maxHeight {
		height = maxHeight
	}
	if width < 30 && m.width >= 30 {
		width = 30
	}

	fullContent := content
	if title != "" {
		fullContent = styleTitle.Render(title) + "\n\n" + content
	}
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Padding(1, 2)
	if height > 0 {
		style = style.Height(height)
	}
	modalBox := style.Render(fullContent)

	if width >= m.width-2 || height >= m.height-1 {
		return modalBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}

// renderDialog renders the open form dialog
func (m *Model) renderDialog() string {
	footer := fmt.Sprintf("%s: Next | %s: Save | %s: Close",
		m.keybinds.GetBindingString(keybinds.ContextModal, keybinds.ActionFocusNext),
		m.keybinds.GetBindingString(keybinds.ContextModal, keybinds.ActionSubmit),
		m.keybinds.GetBindingString(keybinds.ContextModal, keybinds.ActionCloseModal),
	)
	return m.renderModal("", m.dialog.View(), footer, min(DialogWidth, m.width-ModalWidthMargin), 0)
}

// renderConfirm renders the yes/no prompt
func (m *Model) renderConfirm() string {
	message := ""
	if m.confirm != nil {
		message = m.confirm.message
	}
	footer := fmt.Sprintf("%s: Yes | %s: No",
		m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionConfirm),
		m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionCancel),
	)
	return m.renderModal("Confirm", styleWarning.Render(message), footer, ConfirmWidth, ConfirmHeight)
}

// renderAlert renders a blocking message
func (m *Model) renderAlert() string {
	return m.renderModal("Notice", styleError.Render(m.alertMsg), "Press any key to continue", ConfirmWidth, ConfirmHeight)
}

// renderJump renders the fuzzy deck jump prompt
func (m *Model) renderJump() string {
	var b strings.Builder
	b.WriteString(m.jumpInput.View())
	b.WriteString("\n\n")

	if len(m.jumpMatches) == 0 {
		b.WriteString(styleSubtle.Render("No matching decks"))
	}

	pageSize := max(1, JumpHeight-ModalOverheadLines-4)
	start, end := window(m.jumpIndex, len(m.jumpMatches), pageSize)
	for i := start; i < end; i++ {
		match := m.jumpMatches[i]
		line := "  " + highlightMatches(match.deck.Name, match.matched)
		if i == m.jumpIndex {
			line = styleSelected.Render("> " + match.deck.Name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	footer := "Enter: Select | ↑/↓: Move | Esc: Cancel"
	return m.renderModal("Jump to deck", b.String(), footer, JumpWidth, JumpHeight)
}

// highlightMatches colors the runes of name at the matched positions
func highlightMatches(name string, matched []int) string {
	if len(matched) == 0 {
		return name
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(name) {
		if hit[i] {
			b.WriteString(styleWarning.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// renderHelp renders the keybinding overlay
func (m *Model) renderHelp() string {
	footer := fmt.Sprintf("↑/↓: Scroll | %s: Close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal))
	return m.renderModal("Keybindings", m.helpView.View(), footer, m.width-ModalWidthMargin, m.height-ModalHeightMarginSmall)
}

// updateHelpView rebuilds the help content from the registry
func (m *Model) updateHelpView() {
	m.helpView.SetContent(buildHelpContent(m.keybinds))
}

// buildHelpContent lists every binding grouped by context
func buildHelpContent(r *keybinds.Registry) string {
	var b strings.Builder

	for _, ctx := range keybinds.Contexts {
		bindings := r.ListBindings(ctx)
		if len(bindings) == 0 {
			continue
		}

		// One row per action, keys joined
		keysByAction := make(map[keybinds.Action][]string)
		var actions []keybinds.Action
		for _, bnd := range bindings {
			if _, seen := keysByAction[bnd.Action]; !seen {
				actions = append(actions, bnd.Action)
			}
			keysByAction[bnd.Action] = append(keysByAction[bnd.Action], keybinds.DisplayKey(bnd.Key))
		}
		sort.Slice(actions, func(i, j int) bool {
			return keybinds.GetActionInfo(actions[i]).Description < keybinds.GetActionInfo(actions[j]).Description
		})

		b.WriteString(styleTitle.Render(strings.ToUpper(string(ctx))))
		b.WriteString("\n")
		for _, a := range actions {
			keys := strings.Join(keysByAction[a], "/")
			b.WriteString(fmt.Sprintf("  %-18s %s\n", keys, keybinds.GetActionInfo(a).Description))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
