package tui

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/idgen"
	"github.com/studiowebux/flashcli/internal/storage"
	"go.uber.org/zap"
)

// CreateTestModel creates a Model backed by a file store in a temp directory
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	store := deck.New(
		storage.NewPersistence(kv, zap.NewNop()),
		deck.WithIDGenerator(idgen.NewSequenceGenerator("id")),
		deck.WithRand(rand.New(rand.NewPCG(1, 2))),
	)

	m := New(store, Options{
		Closers:   nil,
		Clipboard: func(string) error { return nil },
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return m
}

// CreateTestModelWithDeck creates a Model with one active deck holding the given front/back pairs
func CreateTestModelWithDeck(t *testing.T, name string, pairs ...[2]string) *Model {
	t.Helper()

	m := CreateTestModel(t)
	d, err := m.store.CreateDeck(name)
	if err != nil {
		t.Fatalf("Failed to create deck: %v", err)
	}
	for _, p := range pairs {
		if _, ok := m.store.CreateCard(d.ID, p[0], p[1]); !ok {
			t.Fatalf("Failed to create card %q", p[0])
		}
	}

	return m
}

// keyMsg builds the tea.KeyMsg bubbletea would deliver for a key name
func keyMsg(key string) tea.KeyMsg {
	named := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"home":      tea.KeyHome,
		"end":       tea.KeyEnd,
		"backspace": tea.KeyBackspace,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+s":    tea.KeyCtrlS,
		"ctrl+u":    tea.KeyCtrlU,
	}
	if kt, ok := named[key]; ok {
		return tea.KeyMsg{Type: kt}
	}
	if key == " " || key == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// PressKeys sends each key to the model in order and returns the last command
func PressKeys(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// TypeText sends each rune of s as a separate key press
func TypeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
