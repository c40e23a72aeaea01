package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/dialog"
	"go.uber.org/zap"
)

// quit releases resources and stops the program
func (m *Model) quit() tea.Cmd {
	m.Cleanup()
	return tea.Quit
}

// cycleFocus moves focus between the deck list, card list and study card
func (m *Model) cycleFocus(delta int) {
	current := 0
	for i, p := range paneOrder {
		if p == m.focus {
			current = i
		}
	}
	n := len(paneOrder)
	m.focus = paneOrder[((current+delta)%n+n)%n]
}

// moveCursor moves the highlight in the focused list
func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case PaneDecks:
		m.deckIndex = clamp(m.deckIndex+delta, len(m.store.Decks()))
	case PaneCards:
		m.cardIndex = clamp(m.cardIndex+delta, len(m.store.FilteredCards()))
	}
}

// moveCursorTo jumps the highlight to the first (top) or last row
func (m *Model) moveCursorTo(top bool) {
	switch m.focus {
	case PaneDecks:
		if top {
			m.deckIndex = 0
		} else {
			m.deckIndex = clamp(len(m.store.Decks())-1, len(m.store.Decks()))
		}
	case PaneCards:
		n := len(m.store.FilteredCards())
		if top {
			m.cardIndex = 0
		} else {
			m.cardIndex = clamp(n-1, n)
		}
	}
}

// selectDeck makes a deck active, clearing the search box
func (m *Model) selectDeck(id string) {
	m.store.SelectDeck(id)
	m.search.SetValue("")
	m.cardIndex = 0

	for i, d := range m.store.Decks() {
		if d.ID == id {
			m.deckIndex = i
		}
	}
}

// selectHighlightedDeck selects the deck under the deck list cursor
func (m *Model) selectHighlightedDeck() tea.Cmd {
	decks := m.store.Decks()
	if len(decks) == 0 {
		return nil
	}
	d := decks[m.deckIndex]
	m.selectDeck(d.ID)
	return m.setStatusMessage("Switched to " + d.Name)
}

// highlightedCard returns the card under the card list cursor
func (m *Model) highlightedCard() (string, bool) {
	cards := m.store.FilteredCards()
	if len(cards) == 0 {
		return "", false
	}
	return cards[clamp(m.cardIndex, len(cards))].ID, true
}

// askConfirm shows a yes/no prompt over the current mode
func (m *Model) askConfirm(message string, onConfirm func() tea.Cmd) {
	m.confirm = &confirmState{message: message, onConfirm: onConfirm}
	m.returnMode = m.mode
	m.mode = ModeConfirm
}

// showAlert shows a blocking message dismissed by any key
func (m *Model) showAlert(message string) {
	m.alertMsg = message
	m.returnMode = m.mode
	m.mode = ModeAlert
}

// onDialogClose restores the pane that had focus when the dialog opened
func (m *Model) onDialogClose(returnFocus string) {
	m.mode = ModeNormal
	if returnFocus != "" {
		m.focus = Pane(returnFocus)
	}
}

// openDialog opens a dialog sized to the terminal
func (m *Model) openDialog(desc dialog.Descriptor) tea.Cmd {
	m.dialog.SetWidth(min(DialogWidth, m.width-ModalWidthMargin) - ViewportPaddingHorizontal - ViewportBorderWidth)
	cmd := m.dialog.Open(desc, string(m.focus))
	m.mode = ModeDialog
	return cmd
}

// openNewDeck opens the New Deck dialog
func (m *Model) openNewDeck() tea.Cmd {
	return m.openDialog(dialog.Descriptor{
		Title:       "New Deck",
		Fields:      []dialog.Field{{Name: "name", Label: "Deck Name", Placeholder: "e.g. Spanish", Required: true}},
		SubmitLabel: "Create",
		OnSubmit: func(v dialog.Values) error {
			d, err := m.store.CreateDeck(v["name"])
			if err != nil {
				return err
			}
			m.logger.Debug("deck created", zap.String("id", d.ID))
			m.deckIndex = len(m.store.Decks()) - 1
			m.cardIndex = 0
			m.search.SetValue(m.store.SearchQuery())
			m.statusMsg = "Created deck " + d.Name
			return nil
		},
	})
}

// openEditDeck opens the Edit Deck dialog for the highlighted deck
func (m *Model) openEditDeck() tea.Cmd {
	decks := m.store.Decks()
	if len(decks) == 0 {
		return nil
	}
	d := decks[m.deckIndex]

	return m.openDialog(dialog.Descriptor{
		Title:       "Edit Deck",
		Fields:      []dialog.Field{{Name: "name", Label: "Name", Value: d.Name, Required: true}},
		SubmitLabel: "Save",
		Actions: []dialog.Action{{
			Label:  "Delete Deck",
			Danger: true,
			Run: func(dialog.Values) bool {
				m.askConfirm("Delete this deck?", func() tea.Cmd {
					m.dialog.Close()
					return m.deleteDeck(d.ID, d.Name)
				})
				return false
			},
		}},
		OnSubmit: func(v dialog.Values) error {
			if err := m.store.RenameDeck(d.ID, v["name"]); err != nil {
				return err
			}
			m.statusMsg = "Renamed deck"
			return nil
		},
	})
}

// confirmDeleteDeck asks before deleting the highlighted deck
func (m *Model) confirmDeleteDeck() {
	decks := m.store.Decks()
	if len(decks) == 0 {
		return
	}
	d := decks[m.deckIndex]
	m.askConfirm("Delete this deck?", func() tea.Cmd {
		return m.deleteDeck(d.ID, d.Name)
	})
}

func (m *Model) deleteDeck(id, name string) tea.Cmd {
	m.store.DeleteDeck(id)
	m.logger.Debug("deck deleted", zap.String("id", id))
	m.syncDeckCursor()
	m.search.SetValue(m.store.SearchQuery())
	return m.setStatusMessage(fmt.Sprintf("Deleted deck %s", name))
}

// syncDeckCursor moves the deck list cursor onto the active deck
func (m *Model) syncDeckCursor() {
	active, ok := m.store.ActiveDeck()
	if !ok {
		m.deckIndex = 0
		return
	}
	for i, d := range m.store.Decks() {
		if d.ID == active.ID {
			m.deckIndex = i
		}
	}
}

// openNewCard opens the New Card dialog, or alerts when no deck is active
func (m *Model) openNewCard() tea.Cmd {
	active, ok := m.store.ActiveDeck()
	if !ok {
		m.showAlert("Select a deck first.")
		return nil
	}

	return m.openDialog(dialog.Descriptor{
		Title: "New Card",
		Fields: []dialog.Field{
			{Name: "front", Label: "Front", Multiline: true, Required: true},
			{Name: "back", Label: "Back", Multiline: true, Required: true},
		},
		SubmitLabel: "Create",
		OnSubmit: func(v dialog.Values) error {
			c, ok := m.store.CreateCard(active.ID, v["front"], v["back"])
			if !ok {
				return deck.ErrNoActiveDeck
			}
			m.logger.Debug("card created", zap.String("deck", active.ID), zap.String("id", c.ID))
			m.statusMsg = "Created card"
			return nil
		},
	})
}

// openEditCard opens the Edit Card dialog for the highlighted card
func (m *Model) openEditCard() tea.Cmd {
	active, ok := m.store.ActiveDeck()
	if !ok {
		return nil
	}
	cardID, ok := m.highlightedCard()
	if !ok {
		return nil
	}
	card, _ := m.store.Card(active.ID, cardID)

	return m.openDialog(dialog.Descriptor{
		Title: "Edit Card",
		Fields: []dialog.Field{
			{Name: "front", Label: "Front", Value: card.Front, Multiline: true, Required: true},
			{Name: "back", Label: "Back", Value: card.Back, Multiline: true, Required: true},
		},
		SubmitLabel: "Save",
		Actions: []dialog.Action{{
			Label:  "Delete",
			Danger: true,
			Run: func(dialog.Values) bool {
				m.askConfirm("Delete this card?", func() tea.Cmd {
					m.dialog.Close()
					return m.deleteCard(active.ID, card.ID)
				})
				return false
			},
		}},
		OnSubmit: func(v dialog.Values) error {
			m.store.UpdateCard(active.ID, card.ID, v["front"], v["back"])
			m.statusMsg = "Saved card"
			return nil
		},
	})
}

// confirmDeleteCard asks before deleting the highlighted card
func (m *Model) confirmDeleteCard() {
	active, ok := m.store.ActiveDeck()
	if !ok {
		return
	}
	cardID, ok := m.highlightedCard()
	if !ok {
		return
	}
	m.askConfirm("Delete card?", func() tea.Cmd {
		return m.deleteCard(active.ID, cardID)
	})
}

func (m *Model) deleteCard(deckID, cardID string) tea.Cmd {
	m.store.DeleteCard(deckID, cardID)
	m.logger.Debug("card deleted", zap.String("deck", deckID), zap.String("id", cardID))
	return m.setStatusMessage("Deleted card")
}

// openSearch focuses the search box
func (m *Model) openSearch() tea.Cmd {
	m.mode = ModeSearch
	m.focus = PaneCards
	return m.search.Focus()
}

// applySearch pushes the search box value into the store
func (m *Model) applySearch() {
	if q := m.search.Value(); q != m.store.SearchQuery() {
		m.store.SetSearchQuery(q)
		m.cardIndex = 0
	}
}

func (m *Model) toggleFlip() {
	m.flipped = !m.flipped
}

func (m *Model) nextCard() {
	m.store.Next()
	m.flipped = false
}

func (m *Model) prevCard() {
	m.store.Previous()
	m.flipped = false
}

// shuffleActive shuffles the active deck's cards
func (m *Model) shuffleActive() tea.Cmd {
	active, ok := m.store.ActiveDeck()
	if !ok {
		return m.setErrorMessage("No deck selected")
	}
	m.store.Shuffle(active.ID)
	return m.setStatusMessage("Shuffled " + active.Name)
}

// copyVisibleFace copies the face of the study card currently shown
func (m *Model) copyVisibleFace() tea.Cmd {
	card, ok := m.store.StudyCard()
	if !ok {
		return m.setErrorMessage("No card to copy")
	}

	text, face := card.Front, "Front"
	if m.flipped {
		text, face = card.Back, "Back"
	}

	if err := m.copyToClipboard(text); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		return m.setErrorMessage(fmt.Sprintf("Failed to copy: %v", err))
	}
	return m.setStatusMessage(face + " copied to clipboard")
}

// openHelp shows the keybinding overlay
func (m *Model) openHelp() {
	m.mode = ModeHelp
	m.updateHelpView()
	m.helpView.GotoTop()
}
