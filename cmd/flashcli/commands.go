package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/flashcli/internal/cli"
	"github.com/studiowebux/flashcli/internal/config"
)

// Flags for deck/card commands
var (
	flagYes    bool
	flagDeck   string
	flagSearch string
	flagOutput string
)

// Flags for query
var (
	flagFilter  string
	flagNoColor bool
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks (* marks the active deck)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.ListDecks() })
	},
}

var deckAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a deck and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.AddDeck(args[0]) })
	},
}

var deckRenameCmd = &cobra.Command{
	Use:   "rename <deck-id> <name>",
	Short: "Rename a deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.RenameDeck(args[0], args[1]) })
	},
}

var deckRmCmd = &cobra.Command{
	Use:   "rm <deck-id>",
	Short: "Delete a deck and all its cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.RemoveDeck(args[0], flagYes) })
	},
}

var deckUseCmd = &cobra.Command{
	Use:   "use <deck-id>",
	Short: "Make a deck active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.UseDeck(args[0]) })
	},
}

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards (of the active deck unless --deck is given)",
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.ListCards(flagDeck, flagSearch) })
	},
}

var cardAddCmd = &cobra.Command{
	Use:   "add <front> <back>",
	Short: "Add a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.AddCard(flagDeck, args[0], args[1]) })
	},
}

var cardEditCmd = &cobra.Command{
	Use:   "edit <card-id> <front> <back>",
	Short: "Replace a card's text",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.EditCard(flagDeck, args[0], args[1], args[2]) })
	},
}

var cardRmCmd = &cobra.Command{
	Use:   "rm <card-id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *cli.App) error { return a.RemoveCard(flagDeck, args[0], flagYes) })
	},
}

var queryCmd = &cobra.Command{
	Use:   "query [expression]",
	Short: "Evaluate a JMESPath expression against the stored state",
	Long: `Evaluate a JMESPath expression against the stored state.

--filter narrows first, then the expression transforms the result.
An expression of the form $(command) pipes the JSON to a shell command.
Without an expression the whole state is printed.

Examples:
  flashcli query 'decks[].name'
  flashcli query --filter "decks[?name=='Spanish']" '[0].id'
  flashcli query 'cardsByDeckId' '$(jq "map_values(length)")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expression := ""
		if len(args) > 0 {
			expression = args[0]
		}
		color := !flagNoColor && cli.IsTerminal(os.Stdout)
		return withApp(cmd, func(a *cli.App) error {
			return a.Query(cmd.Context(), flagFilter, expression, color)
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Keybinding configuration",
}

var keybindsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate keybinds.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.CheckKeybinds(config.KeybindsFile, cmd.OutOrStdout())
	},
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the default keybindings as a keybinds.json template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ExportKeybinds(cmd.OutOrStdout())
	},
}

func init() {
	for _, c := range []*cobra.Command{deckListCmd, cardListCmd} {
		c.Flags().StringVarP(&flagOutput, "output", "o", cli.FormatText, "Output format (text/json/yaml)")
	}
	for _, c := range []*cobra.Command{deckRmCmd, cardRmCmd} {
		c.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	}
	for _, c := range []*cobra.Command{cardListCmd, cardAddCmd, cardEditCmd, cardRmCmd} {
		c.Flags().StringVarP(&flagDeck, "deck", "d", "", "Deck id (default: active deck)")
	}
	cardListCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Case-insensitive text filter")

	queryCmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "JMESPath filter applied before the expression")
	queryCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable syntax highlighting")

	deckCmd.AddCommand(deckListCmd, deckAddCmd, deckRenameCmd, deckRmCmd, deckUseCmd)
	cardCmd.AddCommand(cardListCmd, cardAddCmd, cardEditCmd, cardRmCmd)
	keybindsCmd.AddCommand(keybindsCheckCmd, keybindsExportCmd)
}
