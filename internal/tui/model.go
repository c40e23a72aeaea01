package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/dialog"
	"github.com/studiowebux/flashcli/internal/keybinds"
	"go.uber.org/zap"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeDialog
	ModeConfirm
	ModeAlert
	ModeHelp
	ModeJump
)

// Pane identifies a focusable region of the main view
type Pane string

const (
	PaneDecks Pane = "decks"
	PaneCards Pane = "cards"
	PaneStudy Pane = "study"
)

var paneOrder = []Pane{PaneDecks, PaneCards, PaneStudy}

// context returns the keybinding context for a pane
func (p Pane) context() keybinds.Context {
	switch p {
	case PaneCards:
		return keybinds.ContextCards
	case PaneStudy:
		return keybinds.ContextStudy
	default:
		return keybinds.ContextDecks
	}
}

// statusTimeout is how long transient status messages stay in the status bar
const statusTimeout = 4 * time.Second

// saveFailedPrefix marks status bar errors that last until the next successful save
const saveFailedPrefix = "Failed to save"

// confirmState is a pending yes/no question
type confirmState struct {
	message   string
	onConfirm func() tea.Cmd
}

// Model represents the TUI state
type Model struct {
	// Core state
	store    *deck.Store
	keybinds *keybinds.Registry
	logger   *zap.Logger
	closers  []io.Closer
	cleaned  bool
	mode     Mode

	// Main view
	focus     Pane
	deckIndex int  // Highlighted row in the deck list
	cardIndex int  // Highlighted row in the filtered card list
	flipped   bool // Study card shows its back face

	// Overlays
	dialog     *dialog.Controller
	confirm    *confirmState
	alertMsg   string
	returnMode Mode // Mode restored when a confirm or alert closes

	// Search input (card list filter)
	search textinput.Model

	// Deck jump
	jumpInput   textinput.Model
	jumpMatches []jumpMatch
	jumpIndex   int

	helpView viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string

	copyToClipboard func(string) error
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup flushes the logger and closes storage handles. Safe to call more than once.
func (m *Model) Cleanup() {
	if m.cleaned {
		return
	}
	m.cleaned = true

	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			m.logger.Error("failed to close resource", zap.Error(err))
		}
	}
	_ = m.logger.Sync()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case clearStatusMsg:
		m.statusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""

	default:
		// Cursor blink and other widget messages
		switch m.mode {
		case ModeSearch:
			m.search, cmd = m.search.Update(msg)
		case ModeJump:
			m.jumpInput, cmd = m.jumpInput.Update(msg)
		case ModeDialog:
			cmd = m.dialog.Update(msg)
		}
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeDialog:
		return m.renderDialog()
	case ModeConfirm:
		return m.renderConfirm()
	case ModeAlert:
		return m.renderAlert()
	case ModeJump:
		return m.renderJump()
	default:
		return m.renderMain()
	}
}

// onStoreChange runs after every store mutation, before the next render
func (m *Model) onStoreChange(c deck.Change) {
	if c.SaveErr != nil {
		m.errorMsg = fmt.Sprintf("%s: %v", saveFailedPrefix, c.SaveErr)
	} else if strings.HasPrefix(m.errorMsg, saveFailedPrefix) {
		m.errorMsg = ""
	}
	m.clampCursors()
}

// clampCursors keeps the list highlights on existing rows
func (m *Model) clampCursors() {
	decks := m.store.Decks()
	m.deckIndex = clamp(m.deckIndex, len(decks))
	m.cardIndex = clamp(m.cardIndex, len(m.store.FilteredCards()))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Custom message types
type clearStatusMsg struct{}
type clearErrorMsg struct{}

// Helper methods for setting messages with a timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
