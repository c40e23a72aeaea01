/*
Package types defines the data model shared by the store, the persistence
adapter and the terminal UI.

# Entities

Deck:
  - Named collection of cards
  - Identity is the id; the name is mutable

Card:
  - Front/back text pair
  - Grouped under a deck through State.CardsByDeckID, not through an embedded field

State:
  - Ordered decks, card lists keyed by deck id, the active deck, the study
    index and the current search query
  - Serialized wholesale as a single JSON blob

# Timestamps

Timestamps are stored as Unix milliseconds so the persisted blob keeps the
same layout as earlier versions of the state file.
*/
package types
