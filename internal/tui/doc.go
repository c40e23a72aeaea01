/*
Package tui implements the terminal user interface for flashcli.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: UI-only state (focus, cursors, flipped flag, overlays) on top of a deck.Store
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state, Update/View dispatch, store change hook
  - keys.go: Keyboard input handling and keybind routing per mode
  - actions.go: Dialog openers, confirmations, study controls
  - render.go: Deck list, card list, study card and status bar
  - modals.go: Dialog, confirm, alert, jump and help overlays
  - jump.go: Fuzzy deck jump

# Modes

Exactly one mode is active at a time. ModeNormal routes keys through the
focused pane's keybinding context (decks, cards or study, falling back to
global). Modes that own a text input (search, dialog, jump) only match their
own context so printable keys reach the input.

Deletions always go through ModeConfirm. Confirm and alert overlays remember
the mode they interrupted, so a delete started from an edit dialog returns to
that dialog when cancelled.

# Persistence

Every store mutation saves synchronously. The model installs itself as the
store's change hook; a failed save is shown in the status bar until the next
successful one.
*/
package tui
