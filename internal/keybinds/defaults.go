package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerDeckBindings(r)
	registerCardBindings(r)
	registerStudyBindings(r)
	registerSearchBindings(r)
	registerModalBindings(r)
	registerConfirmBindings(r)
	registerHelpBindings(r)
	registerJumpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available whenever no text input has focus
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextGlobal, "?", ActionOpenHelp)
	r.Register(ContextGlobal, "tab", ActionFocusNext)
	r.Register(ContextGlobal, "shift+tab", ActionFocusPrev)

	r.Register(ContextGlobal, "N", ActionNewDeck)
	r.Register(ContextGlobal, "a", ActionNewCard)
	r.Register(ContextGlobal, "/", ActionOpenSearch)
	r.Register(ContextGlobal, "g", ActionOpenJump)

	// Study controls work from any pane
	r.Register(ContextGlobal, " ", ActionFlip)
	r.Register(ContextGlobal, "right", ActionNextCard)
	r.Register(ContextGlobal, "left", ActionPrevCard)
	r.Register(ContextGlobal, "s", ActionShuffle)
	r.Register(ContextGlobal, "c", ActionCopyFace)
}

func registerDeckBindings(r *Registry) {
	r.RegisterMultiple(ContextDecks, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextDecks, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextDecks, "home", ActionGoToTop)
	r.RegisterMultiple(ContextDecks, []string{"end", "G"}, ActionGoToBottom)
	r.Register(ContextDecks, "enter", ActionSelectDeck)
	r.Register(ContextDecks, "n", ActionNewDeck)
	r.Register(ContextDecks, "e", ActionEditDeck)
	r.Register(ContextDecks, "d", ActionDeleteDeck)
}

func registerCardBindings(r *Registry) {
	r.RegisterMultiple(ContextCards, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextCards, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextCards, "home", ActionGoToTop)
	r.RegisterMultiple(ContextCards, []string{"end", "G"}, ActionGoToBottom)
	r.Register(ContextCards, "pgup", ActionPageUp)
	r.Register(ContextCards, "pgdown", ActionPageDown)
	r.Register(ContextCards, "n", ActionNewCard)
	r.RegisterMultiple(ContextCards, []string{"enter", "e"}, ActionEditCard)
	r.Register(ContextCards, "d", ActionDeleteCard)
}

func registerStudyBindings(r *Registry) {
	r.Register(ContextStudy, "enter", ActionFlip)
	r.Register(ContextStudy, "l", ActionNextCard)
	r.Register(ContextStudy, "h", ActionPrevCard)
}

func registerSearchBindings(r *Registry) {
	r.RegisterMultiple(ContextSearch, []string{"enter", "esc", "tab"}, ActionSearchDone)
	r.Register(ContextSearch, "ctrl+u", ActionSearchClear)
}

func registerModalBindings(r *Registry) {
	r.Register(ContextModal, "esc", ActionCloseModal)
	r.Register(ContextModal, "tab", ActionFocusNext)
	r.Register(ContextModal, "shift+tab", ActionFocusPrev)
	r.Register(ContextModal, "ctrl+s", ActionSubmit)
	r.Register(ContextModal, "enter", ActionActivate)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
}

func registerJumpBindings(r *Registry) {
	r.Register(ContextJump, "esc", ActionCloseModal)
	r.Register(ContextJump, "enter", ActionSelectDeck)
	r.RegisterMultiple(ContextJump, []string{"up", "ctrl+p"}, ActionNavigateUp)
	r.RegisterMultiple(ContextJump, []string{"down", "ctrl+n"}, ActionNavigateDown)
}
