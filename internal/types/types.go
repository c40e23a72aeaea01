package types

import "time"

// Timestamp is a point in time stored as Unix milliseconds
type Timestamp int64

// TimestampOf converts a time.Time to a Timestamp
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time returns the timestamp as a local time.Time
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts))
}

// Deck is a named collection of cards
type Deck struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Card is a front/back text pair belonging to exactly one deck
type Card struct {
	ID        string    `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// State is the whole application state, persisted as one blob
type State struct {
	Decks         []Deck            `json:"decks"`
	CardsByDeckID map[string][]Card `json:"cardsByDeckId"`
	ActiveDeckID  *string           `json:"activeDeckId"`
	StudyIndex    int               `json:"studyIndex"`
	SearchQuery   string            `json:"searchQuery"`
}

// NewState returns the default empty state (no decks, no active deck)
func NewState() State {
	return State{
		Decks:         []Deck{},
		CardsByDeckID: make(map[string][]Card),
	}
}

// ActiveID returns the active deck id, or "" when no deck is active
func (s *State) ActiveID() string {
	if s.ActiveDeckID == nil {
		return ""
	}
	return *s.ActiveDeckID
}

// SetActive sets the active deck id; an empty id clears it
func (s *State) SetActive(id string) {
	if id == "" {
		s.ActiveDeckID = nil
		return
	}
	s.ActiveDeckID = &id
}

// DeckIndex returns the position of a deck in the ordered list, or -1
func (s *State) DeckIndex(id string) int {
	for i := range s.Decks {
		if s.Decks[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	out := State{
		Decks:         make([]Deck, len(s.Decks)),
		CardsByDeckID: make(map[string][]Card, len(s.CardsByDeckID)),
		StudyIndex:    s.StudyIndex,
		SearchQuery:   s.SearchQuery,
	}
	copy(out.Decks, s.Decks)
	for id, cards := range s.CardsByDeckID {
		cp := make([]Card, len(cards))
		copy(cp, cards)
		out.CardsByDeckID[id] = cp
	}
	if s.ActiveDeckID != nil {
		out.SetActive(*s.ActiveDeckID)
	}
	return out
}
