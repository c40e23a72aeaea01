package deck

import (
	"strings"

	"github.com/studiowebux/flashcli/internal/types"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// State returns a deep copy of the current state
func (s *Store) State() types.State {
	return s.state.Clone()
}

// Decks returns the decks in stored order
func (s *Store) Decks() []types.Deck {
	out := make([]types.Deck, len(s.state.Decks))
	copy(out, s.state.Decks)
	return out
}

// Deck looks up a deck by id
func (s *Store) Deck(id string) (types.Deck, bool) {
	i := s.state.DeckIndex(id)
	if i < 0 {
		return types.Deck{}, false
	}
	return s.state.Decks[i], true
}

// ActiveDeck returns the active deck, if any
func (s *Store) ActiveDeck() (types.Deck, bool) {
	id := s.state.ActiveID()
	if id == "" {
		return types.Deck{}, false
	}
	return s.Deck(id)
}

// Cards returns a deck's cards in stored order
func (s *Store) Cards(deckID string) []types.Card {
	cards := s.state.CardsByDeckID[deckID]
	out := make([]types.Card, len(cards))
	copy(out, cards)
	return out
}

// Card looks up a card by deck and card id
func (s *Store) Card(deckID, cardID string) (types.Card, bool) {
	cards := s.state.CardsByDeckID[deckID]
	i := cardIndex(cards, cardID)
	if i < 0 {
		return types.Card{}, false
	}
	return cards[i], true
}

// SearchQuery returns the current search query
func (s *Store) SearchQuery() string {
	return s.state.SearchQuery
}

// FilteredCards returns the active deck's cards matching the search query.
// Returns nil when no deck is active.
func (s *Store) FilteredCards() []types.Card {
	id := s.state.ActiveID()
	if id == "" {
		return nil
	}
	return Filter(s.state.CardsByDeckID[id], s.state.SearchQuery)
}

// Filter returns the cards whose front followed by back contains query,
// ignoring case. A blank query matches every card.
func Filter(cards []types.Card, query string) []types.Card {
	out := make([]types.Card, 0, len(cards))
	if strings.TrimSpace(query) == "" {
		return append(out, cards...)
	}

	needle := fold.String(query)
	for _, c := range cards {
		if strings.Contains(fold.String(c.Front+c.Back), needle) {
			out = append(out, c)
		}
	}
	return out
}
