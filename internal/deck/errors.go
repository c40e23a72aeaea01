package deck

import "errors"

var (
	// ErrEmptyName is returned when a deck name is blank
	ErrEmptyName = errors.New("deck name cannot be empty")

	// ErrNoActiveDeck is returned when an operation needs an active deck and none is selected
	ErrNoActiveDeck = errors.New("select a deck first")

	// ErrEmptyCard is returned when a card's front or back is blank
	ErrEmptyCard = errors.New("card front and back are required")
)
