/*
Package keybinds provides customizable keyboard binding management.

# Overview

Bindings are context-aware: the same key can trigger different actions
depending on which pane or overlay has focus. Users override the defaults
through keybinds.json in the config directory.

# Key Concepts

Contexts:
  - Global: bindings available whenever no text input has focus
  - Decks, Cards, Study: the three panes; they fall back to global
  - Search, Modal, Jump: own a text input; matched exactly, no fallback
  - Confirm, Help: overlays; matched exactly

Action System:
  - Actions are constants (ActionFlip, ActionNewDeck, etc.)
  - Keys map to actions within contexts
  - Same action can have different keys in different contexts

# Configuration File Format

Each section maps an action to a comma-separated key list. Comments are
allowed.

	{
	  // study controls
	  "global": {
	    "flip": " ,f",
	    "next_card": "right,n"
	  },
	  "decks": {
	    "delete_deck": "x"
	  }
	}

# Validation

The validator checks for:
  - The same key bound to two actions in one section (error)
  - Unknown action names and empty key lists (error)
  - Reserved key rebindings (warning)
  - Pane bindings shadowing global ones (warning)

# Example Usage

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		registry = keybinds.NewDefaultRegistry()
	}

	if action, ok := registry.Match(keybinds.ContextDecks, msg.String()); ok {
		// Handle action
	}

The Registry is not safe for concurrent writes. Register during
initialization, then only read.
*/
package keybinds
