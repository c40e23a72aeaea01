package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/flashcli/internal/cli"
	"github.com/studiowebux/flashcli/internal/config"
	"github.com/studiowebux/flashcli/internal/deck"
	"github.com/studiowebux/flashcli/internal/idgen"
	"github.com/studiowebux/flashcli/internal/keybinds"
	"github.com/studiowebux/flashcli/internal/logging"
	"github.com/studiowebux/flashcli/internal/storage"
	"github.com/studiowebux/flashcli/internal/tui"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flashcli",
	Short: "Flashcards in the terminal",
	Long: `flashcli manages decks of front/back flashcards and lets you study them
in an interactive TUI.

Run without arguments to start the TUI. The subcommands work on the same
store without opening the interface.

Examples:
  flashcli                              # Start interactive TUI
  flashcli deck add Spanish             # Create a deck (becomes active)
  flashcli card add hola hello          # Add a card to the active deck
  flashcli card list --search hol       # Search the active deck
  flashcli query 'decks[].name'         # JMESPath over the stored state`,
	Version:           version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Global flags
var (
	flagHome    string
	flagVerbose bool
)

// settings is loaded once by initialize
var settings config.Settings

// initialize sets up the config directory and loads config.yaml
func initialize(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(flagHome); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	loaded, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		// Invalid values already fell back to defaults
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	settings = loaded
	return nil
}

// openStore opens the configured backend and builds the domain store
func openStore(logger *zap.Logger) (*deck.Store, storage.KV, error) {
	kv, err := storage.Open(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store := deck.New(
		storage.NewPersistence(kv, logger),
		deck.WithIDGenerator(idgen.ForFormat(settings.IDs.Format)),
		deck.WithShuffleMode(deck.ParseShuffleMode(settings.Study.Shuffle)),
		deck.WithLogger(logger),
	)
	return store, kv, nil
}

// runTUI starts the interactive TUI. Logs go to the log file since the TUI owns the terminal.
func runTUI() error {
	logger, err := logging.New(logging.Options{
		Level:      settings.Log.Level,
		Verbose:    flagVerbose,
		OutputPath: config.LogFile,
	})
	if err != nil {
		return err
	}

	store, kv, err := openStore(logger)
	if err != nil {
		_ = logger.Sync()
		return err
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("keybindings rejected", zap.Error(err))
		registry = keybinds.NewDefaultRegistry()
	}

	logger.Info("starting tui", zap.String("backend", settings.Storage.Backend))
	return tui.Run(store, tui.Options{
		Keybinds: registry,
		Logger:   logger,
		Closers:  []io.Closer{kv},
	})
}

// withApp opens the store for a CLI command and closes it afterwards
func withApp(cmd *cobra.Command, fn func(*cli.App) error) error {
	logger, err := logging.New(logging.Options{
		Level:   settings.Log.Level,
		Verbose: flagVerbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, kv, err := openStore(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	app := &cli.App{
		Store:  store,
		Out:    cmd.OutOrStdout(),
		Logger: logger,
		Format: flagOutput,
	}
	if cli.IsTerminal(os.Stdin) {
		app.Prompt = cli.NewPrompter(os.Stdin, cmd.ErrOrStderr())
	}
	return fn(app)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "Config directory (default ~/.flashcli)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(keybindsCmd)
}
