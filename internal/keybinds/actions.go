package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available everywhere except text input
	ContextDecks   Context = "decks"   // Deck list focused
	ContextCards   Context = "cards"   // Card list focused
	ContextStudy   Context = "study"   // Study card focused
	ContextSearch  Context = "search"  // Search input focused
	ContextModal   Context = "modal"   // Dialog open
	ContextConfirm Context = "confirm" // Confirmation prompt
	ContextHelp    Context = "help"    // Help overlay
	ContextJump    Context = "jump"    // Deck jump prompt
)

// Contexts lists every context in display order
var Contexts = []Context{
	ContextGlobal,
	ContextDecks,
	ContextCards,
	ContextStudy,
	ContextSearch,
	ContextModal,
	ContextConfirm,
	ContextHelp,
	ContextJump,
}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move up one item
	ActionNavigateDown Action = "navigate_down" // Move down one item
	ActionGoToTop      Action = "go_to_top"     // Go to first item
	ActionGoToBottom   Action = "go_to_bottom"  // Go to last item
	ActionPageUp       Action = "page_up"       // Scroll up one page
	ActionPageDown     Action = "page_down"     // Scroll down one page

	// Focus
	ActionFocusNext Action = "focus_next" // Next pane or dialog element
	ActionFocusPrev Action = "focus_prev" // Previous pane or dialog element

	// Deck actions
	ActionSelectDeck Action = "select_deck" // Make the highlighted deck active
	ActionNewDeck    Action = "new_deck"    // Open the New Deck dialog
	ActionEditDeck   Action = "edit_deck"   // Open the Edit Deck dialog
	ActionDeleteDeck Action = "delete_deck" // Delete deck (with confirm)
	ActionOpenJump   Action = "open_jump"   // Fuzzy deck jump

	// Card actions
	ActionNewCard    Action = "new_card"    // Open the New Card dialog
	ActionEditCard   Action = "edit_card"   // Open the Edit Card dialog
	ActionDeleteCard Action = "delete_card" // Delete card (with confirm)
	ActionOpenSearch Action = "open_search" // Focus the search input

	// Study actions
	ActionFlip     Action = "flip"      // Toggle front/back
	ActionNextCard Action = "next_card" // Next study card
	ActionPrevCard Action = "prev_card" // Previous study card
	ActionShuffle  Action = "shuffle"   // Shuffle the active deck
	ActionCopyFace Action = "copy_face" // Copy the visible face to the clipboard

	// Search input actions
	ActionSearchClear Action = "search_clear" // Clear the query
	ActionSearchDone  Action = "search_done"  // Leave the search input

	// Modal actions
	ActionCloseModal Action = "close_modal" // Close current modal
	ActionSubmit     Action = "submit"      // Submit dialog
	ActionActivate   Action = "activate"    // Press the focused dialog element
	ActionConfirm    Action = "confirm"     // Confirm action (y/Y)
	ActionCancel     Action = "cancel"      // Cancel action (n/N)

	ActionOpenHelp Action = "open_help" // Open help overlay
	ActionNoOp     Action = "noop"      // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:         {ActionQuit, "Quit", "Global"},
	ActionQuitForce:    {ActionQuitForce, "Force quit", "Global"},
	ActionOpenHelp:     {ActionOpenHelp, "Toggle help", "Global"},
	ActionFocusNext:    {ActionFocusNext, "Next pane", "Global"},
	ActionFocusPrev:    {ActionFocusPrev, "Previous pane", "Global"},
	ActionNavigateUp:   {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown: {ActionNavigateDown, "Move down", "Navigation"},
	ActionGoToTop:      {ActionGoToTop, "First item", "Navigation"},
	ActionGoToBottom:   {ActionGoToBottom, "Last item", "Navigation"},
	ActionPageUp:       {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:     {ActionPageDown, "Page down", "Navigation"},
	ActionSelectDeck:   {ActionSelectDeck, "Select deck", "Decks"},
	ActionNewDeck:      {ActionNewDeck, "New deck", "Decks"},
	ActionEditDeck:     {ActionEditDeck, "Edit deck", "Decks"},
	ActionDeleteDeck:   {ActionDeleteDeck, "Delete deck", "Decks"},
	ActionOpenJump:     {ActionOpenJump, "Jump to deck", "Decks"},
	ActionNewCard:      {ActionNewCard, "New card", "Cards"},
	ActionEditCard:     {ActionEditCard, "Edit card", "Cards"},
	ActionDeleteCard:   {ActionDeleteCard, "Delete card", "Cards"},
	ActionOpenSearch:   {ActionOpenSearch, "Search cards", "Cards"},
	ActionFlip:         {ActionFlip, "Flip card", "Study"},
	ActionNextCard:     {ActionNextCard, "Next card", "Study"},
	ActionPrevCard:     {ActionPrevCard, "Previous card", "Study"},
	ActionShuffle:      {ActionShuffle, "Shuffle deck", "Study"},
	ActionCopyFace:     {ActionCopyFace, "Copy visible face", "Study"},
	ActionSearchClear:  {ActionSearchClear, "Clear search", "Search"},
	ActionSearchDone:   {ActionSearchDone, "Leave search", "Search"},
	ActionCloseModal:   {ActionCloseModal, "Close", "Dialogs"},
	ActionSubmit:       {ActionSubmit, "Submit", "Dialogs"},
	ActionActivate:     {ActionActivate, "Press focused button", "Dialogs"},
	ActionConfirm:      {ActionConfirm, "Confirm", "Dialogs"},
	ActionCancel:       {ActionCancel, "Cancel", "Dialogs"},
	ActionNoOp:         {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one of the defined actions
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsKnownContext reports whether context is one of the defined contexts
func IsKnownContext(context Context) bool {
	for _, c := range Contexts {
		if c == context {
			return true
		}
	}
	return false
}
