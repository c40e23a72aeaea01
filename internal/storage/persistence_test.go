package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/flashcli/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// memKV is an in-memory KV used to inject read failures
type memKV struct {
	data   map[string][]byte
	getErr error
}

func (m *memKV) Get(key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(key string, value []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Close() error { return nil }

func sampleState() types.State {
	s := types.NewState()
	s.Decks = []types.Deck{
		{ID: "d1", Name: "Spanish", CreatedAt: 1700000000000},
		{ID: "d2", Name: "Empty", CreatedAt: 1700000000500},
	}
	s.CardsByDeckID["d1"] = []types.Card{
		{ID: "c1", Front: "hola", Back: "hello", UpdatedAt: 1700000001000},
		{ID: "c2", Front: "adios", Back: "bye", UpdatedAt: 1700000002000},
	}
	s.CardsByDeckID["d2"] = []types.Card{}
	s.SetActive("d1")
	s.StudyIndex = 1
	s.SearchQuery = "hol"
	return s
}

func TestPersistence_RoundTrip(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := NewPersistence(kv, nil)
			want := sampleState()

			require.NoError(t, p.Save(want))
			got := p.Load()

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPersistence_RoundTripEmpty(t *testing.T) {
	p := NewPersistence(&memKV{}, nil)
	want := types.NewState()

	require.NoError(t, p.Save(want))
	if diff := cmp.Diff(want, p.Load()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestPersistence_LoadMissingIsDefaultWithoutWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := NewPersistence(&memKV{}, zap.New(core))

	got := p.Load()

	assert.Empty(t, got.Decks)
	assert.Nil(t, got.ActiveDeckID)
	assert.Equal(t, 0, logs.Len())
}

func TestPersistence_LoadCorruptFallsBackAndWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	kv := &memKV{}
	require.NoError(t, kv.Set(StateKey, []byte("{not json")))
	p := NewPersistence(kv, zap.New(core))

	got := p.Load()

	assert.Empty(t, got.Decks)
	assert.NotNil(t, got.CardsByDeckID)
	assert.Equal(t, 1, logs.FilterMessage("bad state, using empty state").Len())
}

func TestPersistence_LoadReadErrorFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := NewPersistence(&memKV{getErr: errors.New("disk on fire")}, zap.New(core))

	got := p.Load()

	assert.Empty(t, got.Decks)
	assert.Equal(t, 1, logs.Len())
}

func TestPersistence_FileLayout(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	p := NewPersistence(kv, nil)

	s := types.NewState()
	s.Decks = []types.Deck{{ID: "d1", Name: "A", CreatedAt: 5}}
	s.CardsByDeckID["d1"] = []types.Card{}
	require.NoError(t, p.Save(s))

	raw, err := kv.Get(StateKey)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"decks":[{"id":"d1","name":"A","createdAt":5}],"cardsByDeckId":{"d1":[]},"activeDeckId":null,"studyIndex":0,"searchQuery":""}`,
		string(raw))
	assert.FileExists(t, filepath.Join(dir, StateKey+".json"))
}

func TestNormalize(t *testing.T) {
	s := types.State{
		Decks: []types.Deck{{ID: "d1"}, {ID: "d2"}, {ID: "d1"}},
		CardsByDeckID: map[string][]types.Card{
			"d1":    {{ID: "c1"}},
			"ghost": {{ID: "c9"}},
		},
		StudyIndex: 4,
	}
	s.SetActive("d1")

	repairs := Normalize(&s)

	assert.Len(t, s.Decks, 2)
	assert.Contains(t, s.CardsByDeckID, "d2")
	assert.NotContains(t, s.CardsByDeckID, "ghost")
	assert.Equal(t, 0, s.StudyIndex)
	assert.Len(t, repairs, 4)
}

func TestNormalize_ClearsDanglingActiveDeck(t *testing.T) {
	s := types.NewState()
	s.SetActive("gone")

	repairs := Normalize(&s)

	assert.Nil(t, s.ActiveDeckID)
	assert.Len(t, repairs, 1)
}

func TestNormalize_ValidStateUntouched(t *testing.T) {
	s := sampleState()
	assert.Empty(t, Normalize(&s))
	if diff := cmp.Diff(sampleState(), s); diff != "" {
		t.Errorf("normalize changed a valid state (-want +got):\n%s", diff)
	}
}
