package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/flashcli/internal/keybinds"
)

// handleKeyPress processes keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Force quit works in every mode, including text inputs
	if action, ok := m.keybinds.MatchExact(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		return m.quit()
	}

	// Mode-specific handling
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeDialog:
		return m.handleDialogKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeAlert:
		return m.handleAlertKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeJump:
		return m.handleJumpKeys(msg)
	}

	return nil
}

// handleNormalKeys handles keys when no overlay or input is active
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(m.focus.context(), msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()

	case keybinds.ActionOpenHelp:
		m.openHelp()

	case keybinds.ActionFocusNext:
		m.cycleFocus(1)

	case keybinds.ActionFocusPrev:
		m.cycleFocus(-1)

	case keybinds.ActionNavigateUp:
		m.moveCursor(-1)

	case keybinds.ActionNavigateDown:
		m.moveCursor(1)

	case keybinds.ActionPageUp:
		m.moveCursor(-PageSize)

	case keybinds.ActionPageDown:
		m.moveCursor(PageSize)

	case keybinds.ActionGoToTop:
		m.moveCursorTo(true)

	case keybinds.ActionGoToBottom:
		m.moveCursorTo(false)

	case keybinds.ActionSelectDeck:
		return m.selectHighlightedDeck()

	case keybinds.ActionNewDeck:
		return m.openNewDeck()

	case keybinds.ActionEditDeck:
		return m.openEditDeck()

	case keybinds.ActionDeleteDeck:
		m.confirmDeleteDeck()

	case keybinds.ActionOpenJump:
		return m.openJump()

	case keybinds.ActionNewCard:
		return m.openNewCard()

	case keybinds.ActionEditCard:
		return m.openEditCard()

	case keybinds.ActionDeleteCard:
		m.confirmDeleteCard()

	case keybinds.ActionOpenSearch:
		return m.openSearch()

	case keybinds.ActionFlip:
		m.toggleFlip()

	case keybinds.ActionNextCard:
		m.nextCard()

	case keybinds.ActionPrevCard:
		m.prevCard()

	case keybinds.ActionShuffle:
		return m.shuffleActive()

	case keybinds.ActionCopyFace:
		return m.copyVisibleFace()
	}

	return nil
}

// handleSearchKeys handles keys while the search box has focus
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.MatchExact(keybinds.ContextSearch, msg.String()); ok {
		switch action {
		case keybinds.ActionSearchDone:
			m.search.Blur()
			m.mode = ModeNormal
			return nil
		case keybinds.ActionSearchClear:
			m.search.SetValue("")
			m.applySearch()
			return nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return cmd
}

// handleDialogKeys handles keys while a dialog is open
func (m *Model) handleDialogKeys(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	action, ok := m.keybinds.MatchExact(keybinds.ContextModal, msg.String())
	switch {
	case ok && action == keybinds.ActionCloseModal:
		m.dialog.Close()
	case ok && action == keybinds.ActionFocusNext:
		cmd = m.dialog.FocusNext()
	case ok && action == keybinds.ActionFocusPrev:
		cmd = m.dialog.FocusPrev()
	case ok && action == keybinds.ActionSubmit:
		m.dialog.Submit()
	case ok && action == keybinds.ActionActivate:
		if !m.dialog.Activate() {
			// Enter inside a multiline field inserts a newline
			cmd = m.dialog.Update(msg)
		}
	default:
		cmd = m.dialog.Update(msg)
	}

	// A submitted dialog leaves its message behind; give it a timeout
	if !m.dialog.IsOpen() && m.statusMsg != "" {
		return tea.Batch(cmd, m.setStatusMessage(m.statusMsg))
	}
	return cmd
}

// handleConfirmKeys handles the yes/no prompt
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.MatchExact(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	c := m.confirm
	m.confirm = nil
	m.mode = m.returnMode

	switch action {
	case keybinds.ActionConfirm:
		if c != nil && c.onConfirm != nil {
			return c.onConfirm()
		}
	case keybinds.ActionCancel:
		return m.setStatusMessage("Cancelled")
	}
	return nil
}

// handleAlertKeys dismisses the alert on any key
func (m *Model) handleAlertKeys(tea.KeyMsg) tea.Cmd {
	m.alertMsg = ""
	m.mode = m.returnMode
	return nil
}

// handleHelpKeys handles keys in the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.MatchExact(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.ScrollDown(1)
	}
	return nil
}

// handleJumpKeys handles keys in the deck jump prompt
func (m *Model) handleJumpKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.MatchExact(keybinds.ContextJump, msg.String()); ok {
		switch action {
		case keybinds.ActionCloseModal:
			m.closeJump()
			return nil
		case keybinds.ActionSelectDeck:
			return m.confirmJump()
		case keybinds.ActionNavigateUp:
			m.jumpIndex = clamp(m.jumpIndex-1, len(m.jumpMatches))
			return nil
		case keybinds.ActionNavigateDown:
			m.jumpIndex = clamp(m.jumpIndex+1, len(m.jumpMatches))
			return nil
		}
	}

	before := m.jumpInput.Value()
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	if m.jumpInput.Value() != before {
		m.jumpIndex = 0
		m.refreshJump()
	}
	return cmd
}
