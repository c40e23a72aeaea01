package dialog

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardDescriptor(got *Values) Descriptor {
	return Descriptor{
		Title: "New Card",
		Fields: []Field{
			{Name: "front", Label: "Front", Required: true, Multiline: true},
			{Name: "back", Label: "Back", Required: true, Multiline: true},
		},
		SubmitLabel: "Add Card",
		OnSubmit: func(v Values) error {
			*got = v
			return nil
		},
	}
}

func deckDescriptor(deleted *bool) Descriptor {
	return Descriptor{
		Title:       "Edit Deck",
		Fields:      []Field{{Name: "name", Label: "Name", Value: "Spanish", Required: true}},
		SubmitLabel: "Save",
		Actions: []Action{{
			Label:  "Delete Deck",
			Danger: true,
			Run: func(Values) bool {
				*deleted = true
				return true
			},
		}},
	}
}

func typeText(c *Controller, s string) {
	for _, r := range s {
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestOpenClose_ReturnsFocus(t *testing.T) {
	c := New()
	assert.False(t, c.IsOpen())

	var got Values
	c.Open(cardDescriptor(&got), "cards")
	assert.True(t, c.IsOpen())
	assert.Equal(t, "New Card", c.Title())

	kind, i := c.Focused()
	assert.Equal(t, ElementField, kind)
	assert.Equal(t, 0, i)

	assert.Equal(t, "cards", c.Close())
	assert.False(t, c.IsOpen())
	assert.Empty(t, c.View())
}

func TestOnClose_ReportsTarget(t *testing.T) {
	c := New()
	var targets []string
	c.SetOnClose(func(target string) { targets = append(targets, target) })

	c.Open(Descriptor{
		Title:  "New Deck",
		Fields: []Field{{Name: "name", Label: "Name", Value: "Italian"}},
	}, "decks")
	require.True(t, c.Submit())

	// Closing an already closed dialog is a no-op
	c.Close()

	assert.Equal(t, []string{"decks"}, targets)
}

func TestOpen_ReplacesWithoutStacking(t *testing.T) {
	c := New()
	var got Values
	var deleted bool

	c.Open(cardDescriptor(&got), "cards")
	c.Open(deckDescriptor(&deleted), "decks")

	assert.Equal(t, "Edit Deck", c.Title())
	assert.Equal(t, "cards", c.Close(), "replaced dialog keeps the first return target")
	assert.False(t, c.IsOpen())
}

func TestFocusRing_Wraps(t *testing.T) {
	c := New()
	var deleted bool
	c.Open(deckDescriptor(&deleted), "decks")

	// name, submit, delete, close
	want := []ElementKind{ElementSubmit, ElementAction, ElementClose, ElementField}
	for _, k := range want {
		c.FocusNext()
		kind, _ := c.Focused()
		assert.Equal(t, k, kind)
	}

	// Shift+Tab from first wraps to last
	c.FocusPrev()
	kind, _ := c.Focused()
	assert.Equal(t, ElementClose, kind)
}

func TestSubmit_RequiredFieldBlocks(t *testing.T) {
	c := New()
	var got Values
	c.Open(cardDescriptor(&got), "cards")

	typeText(c, "hola")
	assert.False(t, c.Submit())
	assert.True(t, c.IsOpen())
	assert.Equal(t, "Back is required", c.Err())
	assert.Nil(t, got)

	kind, i := c.Focused()
	assert.Equal(t, ElementField, kind)
	assert.Equal(t, 1, i, "focus moves to the missing field")

	typeText(c, " hello ")
	require.True(t, c.Submit())
	assert.False(t, c.IsOpen())
	assert.Equal(t, Values{"front": "hola", "back": " hello "}, got, "values are not trimmed")
}

func TestSubmit_WhitespaceIsEmpty(t *testing.T) {
	c := New()
	c.Open(Descriptor{
		Title:  "New Deck",
		Fields: []Field{{Name: "name", Label: "Name", Required: true}},
	}, "decks")

	typeText(c, "   ")
	assert.False(t, c.Submit())
	assert.Equal(t, "Name is required", c.Err())
}

func TestSubmit_CallbackErrorKeepsOpen(t *testing.T) {
	c := New()
	c.Open(Descriptor{
		Title:    "New Card",
		Fields:   []Field{{Name: "front", Label: "Front"}},
		OnSubmit: func(Values) error { return errors.New("select a deck first") },
	}, "cards")

	assert.False(t, c.Submit())
	assert.True(t, c.IsOpen())
	assert.Equal(t, "select a deck first", c.Err())
}

func TestActivate(t *testing.T) {
	t.Run("enter on single-line field submits", func(t *testing.T) {
		c := New()
		var submitted Values
		c.Open(Descriptor{
			Fields:   []Field{{Name: "name", Label: "Name", Value: "French"}},
			OnSubmit: func(v Values) error { submitted = v; return nil },
		}, "decks")

		assert.True(t, c.Activate())
		assert.False(t, c.IsOpen())
		assert.Equal(t, "French", submitted["name"])
	})

	t.Run("enter on multiline field is not consumed", func(t *testing.T) {
		c := New()
		var got Values
		c.Open(cardDescriptor(&got), "cards")

		assert.True(t, c.FocusedMultiline())
		assert.False(t, c.Activate())
		assert.True(t, c.IsOpen())
	})

	t.Run("extra action closes when it says so", func(t *testing.T) {
		c := New()
		var deleted bool
		c.Open(deckDescriptor(&deleted), "decks")
		c.FocusNext()
		c.FocusNext()

		assert.True(t, c.Activate())
		assert.True(t, deleted)
		assert.False(t, c.IsOpen())
	})

	t.Run("close button", func(t *testing.T) {
		c := New()
		var deleted bool
		c.Open(deckDescriptor(&deleted), "decks")
		c.FocusPrev()

		assert.True(t, c.Activate())
		assert.False(t, c.IsOpen())
		assert.False(t, deleted)
	})
}

func TestView_ShowsFieldsAndError(t *testing.T) {
	c := New()
	var got Values
	c.Open(cardDescriptor(&got), "cards")
	c.Submit()

	view := c.View()
	assert.Contains(t, view, "New Card")
	assert.Contains(t, view, "Front")
	assert.Contains(t, view, "Add Card")
	assert.Contains(t, view, "Close")
	assert.Contains(t, view, "Front is required")
}
