package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/studiowebux/flashcli/internal/keybinds"
	"github.com/studiowebux/flashcli/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleFace = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)
)

// updateSizes recomputes widget sizes after a terminal resize
func (m *Model) updateSizes() {
	_, rightWidth := m.columnWidths()
	m.search.Width = max(10, rightWidth-ViewportBorderWidth-len(m.search.Prompt)-1)

	m.helpView.Width = max(10, m.width-HelpViewWidthOffset)
	m.helpView.Height = max(1, m.height-ContentOffsetHelp)
	if m.mode == ModeHelp {
		m.updateHelpView()
	}

	if m.dialog.IsOpen() {
		m.dialog.SetWidth(min(DialogWidth, m.width-ModalWidthMargin) - ViewportPaddingHorizontal - ViewportBorderWidth)
	}
}

// columnWidths splits the terminal between the deck list and the right column
func (m *Model) columnWidths() (int, int) {
	sidebar := max(SidebarMinWidth, m.width*SidebarWidthRatio/100)
	if sidebar > m.width/2 {
		sidebar = m.width / 2
	}
	return sidebar, m.width - sidebar
}

// renderMain renders the main view (deck list + cards + study card)
func (m *Model) renderMain() string {
	sidebarWidth, rightWidth := m.columnWidths()
	mainHeight := m.height - StatusBarHeight

	studyHeight := StudyBoxHeight
	cardsHeight := mainHeight - studyHeight
	if cardsHeight < CardListOverhead {
		cardsHeight = CardListOverhead
	}

	sidebar := m.renderDeckList(sidebarWidth-ViewportBorderWidth, mainHeight-ViewportBorderWidth)
	cards := m.renderCardList(rightWidth-ViewportBorderWidth, cardsHeight-ViewportBorderWidth)
	study := m.renderStudyCard(rightWidth-ViewportBorderWidth, studyHeight-ViewportBorderWidth)

	sidebarBox := m.paneBox(PaneDecks, sidebarWidth, mainHeight).Render(sidebar)
	cardsBox := m.paneBox(PaneCards, rightWidth, cardsHeight).Render(cards)
	studyBox := m.paneBox(PaneStudy, rightWidth, studyHeight).Render(study)

	right := lipgloss.JoinVertical(lipgloss.Left, cardsBox, studyBox)
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, sidebarBox, right)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

// paneBox returns the border style of a pane, highlighted when focused
func (m *Model) paneBox(p Pane, width, height int) lipgloss.Style {
	border := colorGray
	if m.focus == p {
		border = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(1, width-ViewportBorderWidth)).
		Height(max(1, height-ViewportBorderWidth))
}

// renderDeckList renders the deck sidebar
func (m *Model) renderDeckList(width, height int) string {
	lines := []string{styleTitle.Render("Decks"), ""}

	decks := m.store.Decks()
	if len(decks) == 0 {
		lines = append(lines, styleSubtle.Render("No decks yet"))
		return strings.Join(lines, "\n")
	}

	activeID := ""
	if active, ok := m.store.ActiveDeck(); ok {
		activeID = active.ID
	}

	pageSize := max(1, height-len(lines))
	start, end := window(m.deckIndex, len(decks), pageSize)
	for i := start; i < end; i++ {
		d := decks[i]
		marker := "  "
		if d.ID == activeID {
			marker = "● "
		}
		count := fmt.Sprintf(" (%d)", len(m.store.Cards(d.ID)))
		name := runewidth.Truncate(d.Name, max(1, width-len(marker)-len(count)), "…")
		line := marker + name + count

		switch {
		case i == m.deckIndex && m.focus == PaneDecks:
			line = styleSelected.Render(runewidth.FillRight(line, width))
		case d.ID == activeID:
			line = styleSuccess.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderCardList renders the active deck title, the search box and the filtered cards
func (m *Model) renderCardList(width, height int) string {
	active, ok := m.store.ActiveDeck()
	title := "Select a deck"
	if ok {
		title = active.Name
	}

	lines := []string{
		styleTitle.Render(runewidth.Truncate(title, width, "…")),
		m.renderSearchLine(),
		"",
	}

	// No active deck: the card region stays empty
	if !ok {
		return strings.Join(lines, "\n")
	}

	cards := m.store.FilteredCards()
	if len(cards) == 0 {
		lines = append(lines, styleSubtle.Render("No cards found."))
		return strings.Join(lines, "\n")
	}

	pageSize := max(1, height-len(lines))
	start, end := window(m.cardIndex, len(cards), pageSize)
	for i := start; i < end; i++ {
		line := cardRow(cards[i], width)
		if i == m.cardIndex && m.focus == PaneCards {
			line = styleSelected.Render(runewidth.FillRight(line, width))
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderSearchLine shows the search box, live while editing
func (m *Model) renderSearchLine() string {
	if m.mode == ModeSearch {
		return m.search.View()
	}
	if q := m.store.SearchQuery(); q != "" {
		return styleWarning.Render("/ " + q)
	}
	hint := m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionOpenSearch)
	return styleSubtle.Render(fmt.Sprintf("%s to search", hint))
}

// cardRow renders one card as "front → back" on a single line
func cardRow(c types.Card, width int) string {
	front := oneLine(c.Front)
	back := oneLine(c.Back)
	half := max(1, (width-3)/2)
	return runewidth.Truncate(front, half, "…") + " → " + runewidth.Truncate(back, half, "…")
}

// oneLine collapses newlines so multi-line card text fits a list row
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// renderStudyCard renders the card at the study index
func (m *Model) renderStudyCard(width, height int) string {
	card, ok := m.store.StudyCard()
	if !ok {
		return styleSubtle.Render("No cards.")
	}

	face, text := "FRONT", card.Front
	if m.flipped {
		face, text = "BACK", card.Back
	}

	header := styleFace.Render(face) + styleSubtle.Render(fmt.Sprintf("  (%d/%d)", m.store.StudyIndex()+1, m.store.StudyCount()))
	body := lipgloss.NewStyle().Width(max(1, width)).MaxHeight(max(1, height-3)).Render(text)

	hints := styleSubtle.Render(fmt.Sprintf("%s flip | %s prev | %s next | %s shuffle",
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionFlip),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionPrevCard),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionNextCard),
		m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionShuffle),
	))

	return strings.Join([]string{header, "", body, hints}, "\n")
}

// renderStatusBar renders the bottom status bar
func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf("Decks: %d", len(m.store.Decks()))
	if active, ok := m.store.ActiveDeck(); ok {
		left += fmt.Sprintf(" | %s: %d cards", active.Name, len(m.store.Cards(active.ID)))
	}

	right := ""
	switch {
	case m.mode == ModeSearch:
		right = styleSubtle.Render("Type to filter | Enter/Esc: Done | ctrl+u: Clear")
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	default:
		right = styleSubtle.Render("Press / to search | ? for help | q to quit")
	}

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// window returns the [start, end) rows to show so that selected stays visible
func window(selected, total, pageSize int) (int, int) {
	start := 0
	if selected >= pageSize {
		start = selected - pageSize + 1
	}
	end := min(total, start+pageSize)
	return start, end
}
