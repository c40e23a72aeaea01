// Package cli implements the non-interactive deck and card commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrNotFound is returned when a deck or card id does not exist
	ErrNotFound = errors.New("not found")

	// ErrCancelled is returned when the user declines a confirmation prompt
	ErrCancelled = errors.New("cancelled")
)

// App runs CLI operations against a store
type App struct {
	Store  *deck.Store
	Out    io.Writer
	Prompt *Prompter
	Logger *zap.Logger

	// Format is text, json or yaml
	Format string
}

// DeckRow is the listed form of a deck
type DeckRow struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Cards  int    `json:"cards" yaml:"cards"`
	Active bool   `json:"active" yaml:"active"`
}

// CardRow is the listed form of a card
type CardRow struct {
	ID    string `json:"id" yaml:"id"`
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// ListDecks prints every deck in stored order
func (a *App) ListDecks() error {
	activeID := ""
	if active, ok := a.Store.ActiveDeck(); ok {
		activeID = active.ID
	}

	decks := a.Store.Decks()
	rows := make([]DeckRow, len(decks))
	for i, d := range decks {
		rows[i] = DeckRow{
			ID:     d.ID,
			Name:   d.Name,
			Cards:  len(a.Store.Cards(d.ID)),
			Active: d.ID == activeID,
		}
	}

	return a.write(rows, func(w io.Writer) {
		if len(rows) == 0 {
			fmt.Fprintln(w, "No decks yet")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range rows {
			marker := " "
			if r.Active {
				marker = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d cards\n", marker, r.ID, r.Name, r.Cards)
		}
		tw.Flush()
	})
}

// AddDeck creates a deck, which becomes the active deck
func (a *App) AddDeck(name string) error {
	d, err := a.Store.CreateDeck(name)
	if err != nil {
		return err
	}
	a.logger().Debug("deck created", zap.String("id", d.ID), zap.String("name", d.Name))
	fmt.Fprintln(a.Out, d.ID)
	return nil
}

// RenameDeck renames a deck
func (a *App) RenameDeck(id, name string) error {
	if _, ok := a.Store.Deck(id); !ok {
		return fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}
	if err := a.Store.RenameDeck(id, name); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Renamed deck %s\n", id)
	return nil
}

// RemoveDeck deletes a deck and its cards after confirmation (skipped with yes)
func (a *App) RemoveDeck(id string, yes bool) error {
	d, ok := a.Store.Deck(id)
	if !ok {
		return fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}

	if !yes {
		question := fmt.Sprintf("Delete deck %q and its %d cards?", d.Name, len(a.Store.Cards(id)))
		if err := a.confirm(question); err != nil {
			return err
		}
	}

	a.Store.DeleteDeck(id)
	a.logger().Debug("deck deleted", zap.String("id", id))
	fmt.Fprintf(a.Out, "Deleted deck %s\n", d.Name)
	return nil
}

// UseDeck makes a deck active
func (a *App) UseDeck(id string) error {
	d, ok := a.Store.Deck(id)
	if !ok {
		return fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}
	a.Store.SelectDeck(id)
	fmt.Fprintf(a.Out, "Switched to %s\n", d.Name)
	return nil
}

// resolveDeck returns deckID, or the active deck when deckID is empty
func (a *App) resolveDeck(deckID string) (string, error) {
	if deckID == "" {
		active, ok := a.Store.ActiveDeck()
		if !ok {
			return "", deck.ErrNoActiveDeck
		}
		return active.ID, nil
	}
	if _, ok := a.Store.Deck(deckID); !ok {
		return "", fmt.Errorf("deck %s: %w", deckID, ErrNotFound)
	}
	return deckID, nil
}

// ListCards prints a deck's cards, optionally filtered like the card list search
func (a *App) ListCards(deckID, search string) error {
	id, err := a.resolveDeck(deckID)
	if err != nil {
		return err
	}

	cards := deck.Filter(a.Store.Cards(id), search)
	rows := make([]CardRow, len(cards))
	for i, c := range cards {
		rows[i] = CardRow{ID: c.ID, Front: c.Front, Back: c.Back}
	}

	return a.write(rows, func(w io.Writer) {
		if len(rows) == 0 {
			fmt.Fprintln(w, "No cards found.")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, oneLine(r.Front), oneLine(r.Back))
		}
		tw.Flush()
	})
}

// AddCard adds a card to deckID, or to the active deck when deckID is empty
func (a *App) AddCard(deckID, front, back string) error {
	var (
		c   types.Card
		err error
	)

	if deckID == "" {
		c, err = a.Store.AddCard(front, back)
		if err != nil {
			return err
		}
	} else {
		if strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
			return deck.ErrEmptyCard
		}
		var ok bool
		c, ok = a.Store.CreateCard(deckID, front, back)
		if !ok {
			return fmt.Errorf("deck %s: %w", deckID, ErrNotFound)
		}
	}

	fmt.Fprintln(a.Out, c.ID)
	return nil
}

// EditCard replaces a card's text
func (a *App) EditCard(deckID, cardID, front, back string) error {
	id, err := a.resolveDeck(deckID)
	if err != nil {
		return err
	}
	if _, ok := a.Store.Card(id, cardID); !ok {
		return fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	if strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
		return deck.ErrEmptyCard
	}

	a.Store.UpdateCard(id, cardID, front, back)
	fmt.Fprintf(a.Out, "Saved card %s\n", cardID)
	return nil
}

// RemoveCard deletes a card after confirmation (skipped with yes)
func (a *App) RemoveCard(deckID, cardID string, yes bool) error {
	id, err := a.resolveDeck(deckID)
	if err != nil {
		return err
	}
	c, ok := a.Store.Card(id, cardID)
	if !ok {
		return fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}

	if !yes {
		if err := a.confirm(fmt.Sprintf("Delete card %q?", oneLine(c.Front))); err != nil {
			return err
		}
	}

	a.Store.DeleteCard(id, cardID)
	fmt.Fprintf(a.Out, "Deleted card %s\n", cardID)
	return nil
}

// confirm asks a yes/no question; no prompter or a "no" answer cancels
func (a *App) confirm(question string) error {
	if a.Prompt == nil {
		return fmt.Errorf("%w: confirmation required (use --yes)", ErrCancelled)
	}
	ok, err := a.Prompt.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// write renders rows in the selected format; text uses the given printer
func (a *App) write(rows any, text func(io.Writer)) error {
	switch a.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		fmt.Fprintln(a.Out, string(data))

	case FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		fmt.Fprint(a.Out, string(data))

	case FormatText, "":
		text(a.Out)

	default:
		return fmt.Errorf("unknown output format %q (text, json, yaml)", a.Format)
	}
	return nil
}

// oneLine collapses whitespace so multi-line card text fits a table row
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
