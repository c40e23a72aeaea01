package tui

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/dialog"
	"github.com/studiowebux/flashcli/internal/keybinds"
	"go.uber.org/zap"
)

// Options configures a Model
type Options struct {
	// Keybinds defaults to the built-in bindings
	Keybinds *keybinds.Registry
	Logger   *zap.Logger

	// Closers are closed by Cleanup (storage handles)
	Closers []io.Closer

	// Clipboard defaults to the system clipboard
	Clipboard func(string) error
}

// New creates a new TUI model bound to a store.
// The model registers itself as the store's change hook.
func New(store *deck.Store, opts Options) *Model {
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search cards..."
	search.CharLimit = 200
	search.SetValue(store.SearchQuery())

	jump := textinput.New()
	jump.Prompt = "> "
	jump.Placeholder = "Deck name"
	jump.CharLimit = 100

	m := &Model{
		store:           store,
		keybinds:        opts.Keybinds,
		logger:          opts.Logger,
		closers:         opts.Closers,
		mode:            ModeNormal,
		focus:           PaneDecks,
		dialog:          dialog.New(),
		search:          search,
		jumpInput:       jump,
		helpView:        viewport.New(80, 20),
		copyToClipboard: opts.Clipboard,
	}

	// Start on the active deck
	if active, ok := store.ActiveDeck(); ok {
		for i, d := range store.Decks() {
			if d.ID == active.ID {
				m.deckIndex = i
			}
		}
	}

	store.SetOnChange(m.onStoreChange)
	m.dialog.SetOnClose(m.onDialogClose)

	return m
}

// Run starts the TUI and blocks until it exits
func Run(store *deck.Store, opts Options) error {
	m := New(store, opts)
	defer m.Cleanup()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
