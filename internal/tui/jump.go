package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/flashcli/internal/types"
)

// jumpMatch is one ranked row of the deck jump prompt
type jumpMatch struct {
	deck    types.Deck
	matched []int // Rune positions in the deck name that matched the pattern
}

// rankDecks orders decks by fuzzy match against pattern.
// An empty pattern keeps every deck in stored order.
func rankDecks(decks []types.Deck, pattern string) []jumpMatch {
	if pattern == "" {
		matches := make([]jumpMatch, len(decks))
		for i, d := range decks {
			matches[i] = jumpMatch{deck: d}
		}
		return matches
	}

	names := make([]string, len(decks))
	for i, d := range decks {
		names[i] = d.Name
	}

	var matches []jumpMatch
	for _, r := range fuzzy.Find(pattern, names) {
		matches = append(matches, jumpMatch{
			deck:    decks[r.Index],
			matched: r.MatchedIndexes,
		})
	}
	return matches
}

// openJump shows the deck jump prompt with every deck listed
func (m *Model) openJump() tea.Cmd {
	m.jumpInput.SetValue("")
	m.jumpIndex = 0
	m.jumpMatches = rankDecks(m.store.Decks(), "")
	m.mode = ModeJump
	return m.jumpInput.Focus()
}

// refreshJump re-ranks decks after the pattern changed
func (m *Model) refreshJump() {
	m.jumpMatches = rankDecks(m.store.Decks(), m.jumpInput.Value())
	m.jumpIndex = clamp(m.jumpIndex, len(m.jumpMatches))
}

// closeJump leaves the jump prompt without selecting
func (m *Model) closeJump() {
	m.jumpInput.Blur()
	m.jumpMatches = nil
	m.jumpIndex = 0
	m.mode = ModeNormal
}

// confirmJump selects the highlighted match
func (m *Model) confirmJump() tea.Cmd {
	if len(m.jumpMatches) == 0 {
		m.closeJump()
		return nil
	}
	target := m.jumpMatches[m.jumpIndex].deck
	m.closeJump()
	m.selectDeck(target.ID)
	m.focus = PaneDecks
	return m.setStatusMessage("Switched to " + target.Name)
}
