package deck

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/studiowebux/flashcli/internal/idgen"
	"github.com/studiowebux/flashcli/internal/types"
	"go.uber.org/zap"
)

// Persister loads and saves the whole state
type Persister interface {
	Load() types.State
	Save(types.State) error
}

// Op names the operation that produced a Change
type Op string

const (
	OpCreateDeck Op = "create_deck"
	OpRenameDeck Op = "rename_deck"
	OpDeleteDeck Op = "delete_deck"
	OpSelectDeck Op = "select_deck"
	OpCreateCard Op = "create_card"
	OpUpdateCard Op = "update_card"
	OpDeleteCard Op = "delete_card"
	OpShuffle    Op = "shuffle"
	OpSearch     Op = "search"
	OpNavigate   Op = "navigate"
)

// Change is passed to the change hook after a mutation
type Change struct {
	Op Op
	// SaveErr is set when persisting the mutation failed; the in-memory change is kept
	SaveErr error
}

// Store owns the application state
type Store struct {
	state       types.State
	persister   Persister
	ids         idgen.Generator
	now         func() time.Time
	rng         *rand.Rand
	shuffleMode ShuffleMode
	logger      *zap.Logger
	onChange    func(Change)
}

// New loads the state from the persister and returns a store owning it
func New(persister Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		ids:       idgen.UUIDGenerator{},
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = persister.Load()
	if s.state.CardsByDeckID == nil {
		s.state.CardsByDeckID = make(map[string][]types.Card)
	}
	return s
}

// SetOnChange replaces the change hook
func (s *Store) SetOnChange(fn func(Change)) {
	s.onChange = fn
}

// commit persists the state and notifies the hook
func (s *Store) commit(op Op) {
	err := s.persister.Save(s.state)
	if err != nil {
		s.logger.Error("failed to persist state", zap.String("op", string(op)), zap.Error(err))
	}
	s.notify(Change{Op: op, SaveErr: err})
}

// notify calls the hook without persisting
func (s *Store) notify(change Change) {
	if s.onChange != nil {
		s.onChange(change)
	}
}

// CreateDeck appends a new deck with an empty card list and makes it active
func (s *Store) CreateDeck(name string) (types.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Deck{}, ErrEmptyName
	}

	d := types.Deck{
		ID:        s.ids.Generate(),
		Name:      name,
		CreatedAt: types.TimestampOf(s.now()),
	}
	s.state.Decks = append(s.state.Decks, d)
	s.state.CardsByDeckID[d.ID] = []types.Card{}
	s.state.SetActive(d.ID)
	s.state.StudyIndex = 0

	s.logger.Debug("deck created", zap.String("id", d.ID))
	s.commit(OpCreateDeck)
	return d, nil
}

// RenameDeck updates a deck's name; unknown ids are ignored
func (s *Store) RenameDeck(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}

	i := s.state.DeckIndex(id)
	if i < 0 {
		return nil
	}
	s.state.Decks[i].Name = newName

	s.commit(OpRenameDeck)
	return nil
}

// DeleteDeck removes a deck and its card list.
// If it was active, the first remaining deck (or none) becomes active.
func (s *Store) DeleteDeck(id string) {
	i := s.state.DeckIndex(id)
	if i < 0 {
		return
	}

	s.state.Decks = slices.Delete(s.state.Decks, i, i+1)
	delete(s.state.CardsByDeckID, id)

	if s.state.ActiveID() == id {
		next := ""
		if len(s.state.Decks) > 0 {
			next = s.state.Decks[0].ID
		}
		s.state.SetActive(next)
		s.state.StudyIndex = 0
	}

	s.logger.Debug("deck deleted", zap.String("id", id))
	s.commit(OpDeleteDeck)
}

// SelectDeck makes a deck active, clears the search query and restarts the study session
func (s *Store) SelectDeck(id string) {
	if s.state.DeckIndex(id) < 0 {
		return
	}

	s.state.SetActive(id)
	s.state.SearchQuery = ""
	s.state.StudyIndex = 0

	s.commit(OpSelectDeck)
}

// CreateCard appends a card to a deck.
// Returns false without changing anything when the deck does not exist.
func (s *Store) CreateCard(deckID, front, back string) (types.Card, bool) {
	if s.state.DeckIndex(deckID) < 0 {
		return types.Card{}, false
	}

	c := types.Card{
		ID:        s.ids.Generate(),
		Front:     front,
		Back:      back,
		UpdatedAt: types.TimestampOf(s.now()),
	}
	s.state.CardsByDeckID[deckID] = append(s.state.CardsByDeckID[deckID], c)

	s.logger.Debug("card created", zap.String("deck", deckID), zap.String("id", c.ID))
	s.commit(OpCreateCard)
	return c, true
}

// AddCard adds a card to the active deck; front and back are required
func (s *Store) AddCard(front, back string) (types.Card, error) {
	deckID := s.state.ActiveID()
	if deckID == "" {
		return types.Card{}, ErrNoActiveDeck
	}
	if strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
		return types.Card{}, ErrEmptyCard
	}

	c, _ := s.CreateCard(deckID, front, back)
	return c, nil
}

// UpdateCard replaces a card's text and refreshes its timestamp.
// The card keeps its id and position; unknown ids are ignored.
func (s *Store) UpdateCard(deckID, cardID, front, back string) {
	cards := s.state.CardsByDeckID[deckID]
	i := cardIndex(cards, cardID)
	if i < 0 {
		return
	}

	cards[i].Front = front
	cards[i].Back = back
	cards[i].UpdatedAt = types.TimestampOf(s.now())

	s.commit(OpUpdateCard)
}

// DeleteCard removes a card from a deck by id
func (s *Store) DeleteCard(deckID, cardID string) {
	cards := s.state.CardsByDeckID[deckID]
	i := cardIndex(cards, cardID)
	if i < 0 {
		return
	}

	s.state.CardsByDeckID[deckID] = slices.Delete(cards, i, i+1)

	// Keep the study index pointing at an existing card
	if deckID == s.state.ActiveID() {
		n := len(s.state.CardsByDeckID[deckID])
		if s.state.StudyIndex >= n {
			s.state.StudyIndex = max(n-1, 0)
		}
	}

	s.commit(OpDeleteCard)
}

// Shuffle reorders a deck's cards into a random permutation and resets the study index
func (s *Store) Shuffle(deckID string) {
	if s.state.DeckIndex(deckID) < 0 {
		return
	}

	cards := s.state.CardsByDeckID[deckID]
	switch s.shuffleMode {
	case ShuffleLegacy:
		sort.Slice(cards, func(i, j int) bool {
			return s.rng.Float64() < 0.5
		})
	default:
		s.rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}
	s.state.StudyIndex = 0

	s.commit(OpShuffle)
}

// SetSearchQuery stores the card-list search query
func (s *Store) SetSearchQuery(query string) {
	if s.state.SearchQuery == query {
		return
	}
	s.state.SearchQuery = query
	s.notify(Change{Op: OpSearch})
}

// cardIndex returns the position of a card in a list, or -1
func cardIndex(cards []types.Card, id string) int {
	for i := range cards {
		if cards[i].ID == id {
			return i
		}
	}
	return -1
}
