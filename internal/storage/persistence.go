package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studiowebux/flashcli/internal/types"
	"go.uber.org/zap"
)

// StateKey is the fixed key of the state blob; the schema version is part of the name
const StateKey = "flashcards-state-v1"

// Persistence loads and saves the whole application state under StateKey
type Persistence struct {
	kv     KV
	logger *zap.Logger
}

// NewPersistence wraps a KV backend. A nil logger disables logging.
func NewPersistence(kv KV, logger *zap.Logger) *Persistence {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persistence{kv: kv, logger: logger}
}

// Load returns the stored state.
// A missing key or an unreadable blob yields the default empty state; the
// failure is logged as a warning and never returned.
func (p *Persistence) Load() types.State {
	data, err := p.kv.Get(StateKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.logger.Warn("failed to read state, using empty state", zap.String("key", StateKey), zap.Error(err))
		}
		return types.NewState()
	}

	var state types.State
	if err := json.Unmarshal(data, &state); err != nil {
		p.logger.Warn("bad state, using empty state", zap.String("key", StateKey), zap.Error(err))
		return types.NewState()
	}

	for _, repair := range Normalize(&state) {
		p.logger.Warn("repaired state", zap.String("repair", repair))
	}

	return state
}

// Save serializes the whole state and overwrites the stored blob
func (p *Persistence) Save(state types.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := p.kv.Set(StateKey, data); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	p.logger.Debug("state saved", zap.Int("bytes", len(data)), zap.Int("decks", len(state.Decks)))
	return nil
}

// Normalize repairs a decoded state so that the deck/card-list invariants hold.
// It returns a description of each repair made.
func Normalize(state *types.State) []string {
	var repairs []string

	if state.Decks == nil {
		state.Decks = []types.Deck{}
	}
	if state.CardsByDeckID == nil {
		state.CardsByDeckID = make(map[string][]types.Card)
	}

	// Duplicate deck ids would make the grouping ambiguous; keep the first
	seen := make(map[string]bool, len(state.Decks))
	decks := state.Decks[:0]
	for _, d := range state.Decks {
		if seen[d.ID] {
			repairs = append(repairs, fmt.Sprintf("dropped duplicate deck %s", d.ID))
			continue
		}
		seen[d.ID] = true
		decks = append(decks, d)
	}
	state.Decks = decks

	for _, d := range state.Decks {
		if cards, ok := state.CardsByDeckID[d.ID]; !ok || cards == nil {
			state.CardsByDeckID[d.ID] = []types.Card{}
			if !ok {
				repairs = append(repairs, fmt.Sprintf("created missing card list for deck %s", d.ID))
			}
		}
	}

	for id := range state.CardsByDeckID {
		if !seen[id] {
			delete(state.CardsByDeckID, id)
			repairs = append(repairs, fmt.Sprintf("dropped card list of unknown deck %s", id))
		}
	}

	if active := state.ActiveID(); active != "" && !seen[active] {
		state.SetActive("")
		repairs = append(repairs, fmt.Sprintf("cleared unknown active deck %s", active))
	}

	n := len(state.CardsByDeckID[state.ActiveID()])
	if state.StudyIndex < 0 || (state.StudyIndex > 0 && state.StudyIndex >= n) {
		repairs = append(repairs, fmt.Sprintf("reset study index %d", state.StudyIndex))
		state.StudyIndex = 0
	}

	return repairs
}
