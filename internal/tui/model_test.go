package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/types"
)

func TestNew_InitializesDefaultMode(t *testing.T) {
	m := CreateTestModel(t)

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "focus", m.focus, PaneDecks)
	AssertModelField(t, "flipped", m.flipped, false)
	AssertModelField(t, "dialog open", m.dialog.IsOpen(), false)
}

func TestFocus_CyclesPanes(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "tab")
	AssertModelField(t, "focus after tab", m.focus, PaneCards)
	PressKeys(m, "tab")
	AssertModelField(t, "focus after 2 tabs", m.focus, PaneStudy)
	PressKeys(m, "tab")
	AssertModelField(t, "focus wraps", m.focus, PaneDecks)
	PressKeys(m, "shift+tab")
	AssertModelField(t, "focus wraps back", m.focus, PaneStudy)
}

func TestFlip_SpaceToggles(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish", [2]string{"hola", "hello"})

	PressKeys(m, " ")
	AssertModelField(t, "flipped", m.flipped, true)
	PressKeys(m, " ")
	AssertModelField(t, "flipped", m.flipped, false)

	// Space flips from the card list too
	PressKeys(m, "tab", " ")
	AssertModelField(t, "flipped from cards pane", m.flipped, true)
}

func TestNavigation_ArrowsWrapAndClearFlip(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish",
		[2]string{"uno", "one"},
		[2]string{"dos", "two"},
		[2]string{"tres", "three"},
	)

	PressKeys(m, " ", "right")
	AssertModelField(t, "study index", m.store.StudyIndex(), 1)
	AssertModelField(t, "flipped cleared by next", m.flipped, false)

	PressKeys(m, " ", "left", "left")
	AssertModelField(t, "study index wraps", m.store.StudyIndex(), 2)
	AssertModelField(t, "flipped cleared by previous", m.flipped, false)

	PressKeys(m, "right")
	AssertModelField(t, "study index wraps forward", m.store.StudyIndex(), 0)
}

func TestNavigation_EmptyDeckIsNoOp(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Empty")

	PressKeys(m, "right", "left")
	AssertModelField(t, "study index", m.store.StudyIndex(), 0)
	if !strings.Contains(m.View(), "No cards.") {
		t.Error("expected empty study placeholder")
	}
}

func TestNewCard_NoDeckShowsAlert(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "a")
	AssertModelField(t, "mode", m.mode, ModeAlert)
	AssertModelField(t, "alert", m.alertMsg, "Select a deck first.")
	AssertModelField(t, "dialog open", m.dialog.IsOpen(), false)
	if !strings.Contains(m.View(), "Select a deck first.") {
		t.Error("alert should be rendered")
	}

	// Any key dismisses
	PressKeys(m, "x")
	AssertModelField(t, "mode after dismiss", m.mode, ModeNormal)
	AssertModelField(t, "alert cleared", m.alertMsg, "")
}

func TestNewDeckDialog_CreatesTrimmedDeck(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "N")
	AssertModelField(t, "mode", m.mode, ModeDialog)
	AssertModelField(t, "title", m.dialog.Title(), "New Deck")

	TypeText(m, "  Spanish ")
	PressKeys(m, "enter")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "dialog open", m.dialog.IsOpen(), false)

	decks := m.store.Decks()
	if len(decks) != 1 {
		t.Fatalf("decks = %d, want 1", len(decks))
	}
	AssertModelField(t, "deck name", decks[0].Name, "Spanish")

	active, ok := m.store.ActiveDeck()
	AssertModelField(t, "has active", ok, true)
	AssertModelField(t, "active deck", active.ID, decks[0].ID)
}

func TestNewDeckDialog_RequiredName(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "N")
	TypeText(m, "   ")
	PressKeys(m, "ctrl+s")

	AssertModelField(t, "dialog stays open", m.dialog.IsOpen(), true)
	AssertModelField(t, "error", m.dialog.Err(), "Deck Name is required")
	AssertModelField(t, "no deck created", len(m.store.Decks()), 0)
}

func TestDialog_EscRestoresFocus(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "tab", "N")
	AssertModelField(t, "mode", m.mode, ModeDialog)

	PressKeys(m, "esc")
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "focus restored", m.focus, PaneCards)
	AssertModelField(t, "no deck created", len(m.store.Decks()), 0)
}

func TestDialog_KeysDoNotLeak(t *testing.T) {
	m := CreateTestModel(t)

	// q and space are typed into the field instead of quitting or flipping
	PressKeys(m, "N")
	TypeText(m, "q s")
	AssertModelField(t, "mode", m.mode, ModeDialog)
	AssertModelField(t, "flipped", m.flipped, false)
	AssertModelField(t, "field value", m.dialog.Values()["name"], "q s")
}

func TestNewCardDialog_MultilineFields(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish")
	active, _ := m.store.ActiveDeck()

	PressKeys(m, "a")
	AssertModelField(t, "title", m.dialog.Title(), "New Card")

	TypeText(m, "hola")
	PressKeys(m, "enter")
	TypeText(m, "amigo")
	PressKeys(m, "tab")
	TypeText(m, "hello")
	PressKeys(m, "ctrl+s")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	cards := m.store.Cards(active.ID)
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	AssertModelField(t, "front", cards[0].Front, "hola\namigo")
	AssertModelField(t, "back", cards[0].Back, "hello")
}

func TestEditDeckDialog_Renames(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish")

	PressKeys(m, "e")
	AssertModelField(t, "title", m.dialog.Title(), "Edit Deck")
	AssertModelField(t, "prefilled", m.dialog.Values()["name"], "Spanish")

	PressKeys(m, "ctrl+u")
	TypeText(m, "Italian")
	PressKeys(m, "enter")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "deck name", m.store.Decks()[0].Name, "Italian")
}

func TestEditDeckDialog_DeleteNeedsConfirmation(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish", [2]string{"hola", "hello"})

	// name, Save, Delete Deck
	PressKeys(m, "e", "tab", "tab", "enter")
	AssertModelField(t, "mode", m.mode, ModeConfirm)
	AssertModelField(t, "message", m.confirm.message, "Delete this deck?")

	// Cancelling returns to the dialog
	PressKeys(m, "esc")
	AssertModelField(t, "mode after cancel", m.mode, ModeDialog)
	AssertModelField(t, "dialog still open", m.dialog.IsOpen(), true)
	AssertModelField(t, "deck kept", len(m.store.Decks()), 1)

	PressKeys(m, "enter", "y")
	AssertModelField(t, "mode after confirm", m.mode, ModeNormal)
	AssertModelField(t, "dialog closed", m.dialog.IsOpen(), false)
	AssertModelField(t, "deck deleted", len(m.store.Decks()), 0)

	_, ok := m.store.ActiveDeck()
	AssertModelField(t, "no active deck", ok, false)
}

func TestDeleteDeck_FromList(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish")

	PressKeys(m, "d")
	AssertModelField(t, "mode", m.mode, ModeConfirm)
	AssertModelField(t, "message", m.confirm.message, "Delete this deck?")

	PressKeys(m, "n")
	AssertModelField(t, "deck kept", len(m.store.Decks()), 1)

	PressKeys(m, "d", "y")
	AssertModelField(t, "deck deleted", len(m.store.Decks()), 0)
}

func TestDeleteCard_RequiresConfirmation(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish",
		[2]string{"hola", "hello"},
		[2]string{"adios", "goodbye"},
	)
	active, _ := m.store.ActiveDeck()

	PressKeys(m, "tab", "down", "d")
	AssertModelField(t, "mode", m.mode, ModeConfirm)
	AssertModelField(t, "message", m.confirm.message, "Delete card?")

	// Other keys are ignored while the prompt is up
	PressKeys(m, "x")
	AssertModelField(t, "still confirming", m.mode, ModeConfirm)

	PressKeys(m, "n")
	AssertModelField(t, "cards kept", len(m.store.Cards(active.ID)), 2)

	PressKeys(m, "d", "y")
	cards := m.store.Cards(active.ID)
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	AssertModelField(t, "remaining card", cards[0].Front, "hola")
	AssertModelField(t, "cursor clamped", m.cardIndex, 0)
}

func TestEditCardDialog_UpdatesAndDeletes(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish", [2]string{"hola", "hello"})
	active, _ := m.store.ActiveDeck()

	PressKeys(m, "tab", "enter")
	AssertModelField(t, "title", m.dialog.Title(), "Edit Card")

	// Move to Back and append
	PressKeys(m, "tab")
	TypeText(m, "!")
	PressKeys(m, "ctrl+s")

	card := m.store.Cards(active.ID)[0]
	AssertModelField(t, "back", card.Back, "hello!")
	AssertModelField(t, "front kept", card.Front, "hola")

	// front, back, Save, Delete
	PressKeys(m, "enter", "tab", "tab", "tab", "enter")
	AssertModelField(t, "message", m.confirm.message, "Delete this card?")
	PressKeys(m, "y")
	AssertModelField(t, "card deleted", len(m.store.Cards(active.ID)), 0)
	AssertModelField(t, "focus restored", m.focus, PaneCards)
}

func TestSearch_FiltersCards(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish",
		[2]string{"hola", "hello"},
		[2]string{"adios", "goodbye"},
	)

	PressKeys(m, "/")
	AssertModelField(t, "mode", m.mode, ModeSearch)

	// q is typed, not quit
	TypeText(m, "HOL")
	AssertModelField(t, "query", m.store.SearchQuery(), "HOL")
	AssertModelField(t, "filtered", len(m.store.FilteredCards()), 1)

	PressKeys(m, "ctrl+u")
	AssertModelField(t, "query cleared", m.store.SearchQuery(), "")

	TypeText(m, "zzq")
	AssertModelField(t, "mode", m.mode, ModeSearch)
	AssertModelField(t, "no match", len(m.store.FilteredCards()), 0)

	PressKeys(m, "enter")
	AssertModelField(t, "mode after done", m.mode, ModeNormal)
	if !strings.Contains(m.View(), "No cards found.") {
		t.Error("expected empty search placeholder")
	}

	// Study card ignores the filter
	card, ok := m.store.StudyCard()
	AssertModelField(t, "study card present", ok, true)
	AssertModelField(t, "study card", card.Front, "hola")
}

func TestSelectDeck_ClearsSearch(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish")
	if _, err := m.store.CreateDeck("French"); err != nil {
		t.Fatal(err)
	}

	PressKeys(m, "/")
	TypeText(m, "x")
	PressKeys(m, "esc", "shift+tab")
	AssertModelField(t, "focus", m.focus, PaneDecks)
	AssertModelField(t, "query", m.store.SearchQuery(), "x")

	// Cursor is on Spanish (row 0); French is active
	PressKeys(m, "enter")
	active, _ := m.store.ActiveDeck()
	AssertModelField(t, "active", active.Name, "Spanish")
	AssertModelField(t, "query cleared", m.store.SearchQuery(), "")
	AssertModelField(t, "input cleared", m.search.Value(), "")
}

func TestJump_FuzzySelectsDeck(t *testing.T) {
	m := CreateTestModel(t)
	for _, name := range []string{"spanish", "french", "german"} {
		if _, err := m.store.CreateDeck(name); err != nil {
			t.Fatal(err)
		}
	}

	PressKeys(m, "g")
	AssertModelField(t, "mode", m.mode, ModeJump)
	AssertModelField(t, "all listed", len(m.jumpMatches), 3)

	TypeText(m, "frn")
	if len(m.jumpMatches) != 1 {
		t.Fatalf("matches = %d, want 1", len(m.jumpMatches))
	}
	AssertModelField(t, "best match", m.jumpMatches[0].deck.Name, "french")

	PressKeys(m, "enter")
	AssertModelField(t, "mode", m.mode, ModeNormal)
	active, _ := m.store.ActiveDeck()
	AssertModelField(t, "active", active.Name, "french")
	AssertModelField(t, "cursor on deck", m.deckIndex, 1)
}

func TestJump_EscCancels(t *testing.T) {
	m := CreateTestModelWithDeck(t, "spanish")
	PressKeys(m, "g", "esc")
	AssertModelField(t, "mode", m.mode, ModeNormal)
}

func TestCopyFace_CopiesVisibleFace(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish", [2]string{"hola", "hello"})

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	PressKeys(m, "c")
	AssertModelField(t, "copied front", copied, "hola")

	PressKeys(m, " ", "c")
	AssertModelField(t, "copied back", copied, "hello")
	AssertModelField(t, "status", m.statusMsg, "Back copied to clipboard")

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	PressKeys(m, "c")
	if !strings.HasPrefix(m.errorMsg, "Failed to copy") {
		t.Errorf("errorMsg = %q", m.errorMsg)
	}
}

func TestShuffle_NoDeck(t *testing.T) {
	m := CreateTestModel(t)
	PressKeys(m, "s")
	AssertModelField(t, "error", m.errorMsg, "No deck selected")
}

func TestShuffle_ResetsStudyIndex(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish",
		[2]string{"uno", "one"},
		[2]string{"dos", "two"},
	)
	PressKeys(m, "right", "s")
	AssertModelField(t, "study index", m.store.StudyIndex(), 0)
	AssertModelField(t, "status", m.statusMsg, "Shuffled Spanish")
}

func TestHelp_OpensAndCloses(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "?")
	AssertModelField(t, "mode", m.mode, ModeHelp)
	view := m.View()
	if !strings.Contains(view, "Keybindings") {
		t.Error("help title missing")
	}

	PressKeys(m, "esc")
	AssertModelField(t, "mode", m.mode, ModeNormal)
}

func TestBuildHelpContent_ListsActions(t *testing.T) {
	m := CreateTestModel(t)
	content := buildHelpContent(m.keybinds)

	for _, want := range []string{"GLOBAL", "Flip card", "space", "Delete card", "Jump to deck"} {
		if !strings.Contains(content, want) {
			t.Errorf("help content missing %q", want)
		}
	}
}

func TestCtrlC_QuitsFromAnyMode(t *testing.T) {
	m := CreateTestModel(t)

	PressKeys(m, "/")
	cmd := PressKeys(m, "ctrl+c")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestView_Placeholders(t *testing.T) {
	m := CreateTestModel(t)
	view := m.View()

	for _, want := range []string{"No decks yet", "Select a deck", "No cards."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_StudyCardFaces(t *testing.T) {
	m := CreateTestModelWithDeck(t, "Spanish", [2]string{"hola", "hello"})

	view := m.View()
	if !strings.Contains(view, "FRONT") || !strings.Contains(view, "(1/1)") {
		t.Error("expected front face with position")
	}

	PressKeys(m, " ")
	if !strings.Contains(m.View(), "BACK") {
		t.Error("expected back face after flip")
	}
}

type failingPersister struct{}

func (failingPersister) Load() types.State     { return types.NewState() }
func (failingPersister) Save(types.State) error { return errors.New("disk full") }

func TestSaveFailure_ShownInStatusBar(t *testing.T) {
	store := deck.New(failingPersister{})
	m := New(store, Options{Clipboard: func(string) error { return nil }})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	PressKeys(m, "N")
	TypeText(m, "Spanish")
	PressKeys(m, "enter")

	AssertModelField(t, "deck kept in memory", len(store.Decks()), 1)
	AssertModelField(t, "error", m.errorMsg, "Failed to save: disk full")
}
