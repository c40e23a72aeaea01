package deck

import "github.com/studiowebux/flashcli/internal/types"

// StudyIndex returns the position of the study card in the active deck
func (s *Store) StudyIndex() int {
	return s.state.StudyIndex
}

// StudyCard returns the card at the study index of the active deck's unfiltered list
func (s *Store) StudyCard() (types.Card, bool) {
	cards := s.state.CardsByDeckID[s.state.ActiveID()]
	if len(cards) == 0 {
		return types.Card{}, false
	}
	i := s.state.StudyIndex
	if i < 0 || i >= len(cards) {
		i = 0
	}
	return cards[i], true
}

// StudyCount returns the number of cards in the active deck
func (s *Store) StudyCount() int {
	return len(s.state.CardsByDeckID[s.state.ActiveID()])
}

// Next advances the study index, wrapping to the first card
func (s *Store) Next() {
	s.step(1)
}

// Previous moves the study index back, wrapping to the last card
func (s *Store) Previous() {
	s.step(-1)
}

func (s *Store) step(delta int) {
	n := s.StudyCount()
	if n == 0 {
		return
	}
	s.state.StudyIndex = ((s.state.StudyIndex+delta)%n + n) % n
	s.notify(Change{Op: OpNavigate})
}
