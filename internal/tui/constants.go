package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Modal Dimensions
	ModalWidthMargin       = 6 // Standard horizontal margin (m.width - 6)
	ModalHeightMarginSmall = 2 // Small vertical margin (m.height - 2)
	DialogWidth            = 70
	ConfirmWidth           = 44
	ConfirmHeight          = 9
	JumpWidth              = 50
	JumpHeight             = 16

	// Viewport Padding and Borders
	ViewportBorderWidth       = 2 // Width consumed by borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Main view
	SidebarMinWidth   = 24 // Deck list never gets narrower than this
	SidebarWidthRatio = 30 // Percent of the terminal width for the deck list
	StatusBarHeight   = 1
	StudyBoxHeight    = 9 // Study card region including borders
	CardListOverhead  = 5 // Title, search line, blank line, borders
	PageSize          = 10

	// Help viewer
	HelpViewWidthOffset = 14
	ContentOffsetHelp   = 10

	// Modal Content Calculations
	ModalOverheadLines   = 6 // Title (2) + padding (2) + border (2)
	ModalOverheadMinimal = 4 // Border + title for minimal modals
)
