package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/studiowebux/flashcli/internal/keybinds"
)

// ErrInvalidKeybinds is returned when keybinds.json has validation errors
var ErrInvalidKeybinds = errors.New("invalid keybindings")

// CheckKeybinds validates a keybinds.json file and prints the report.
// A missing file checks the built-in defaults.
func CheckKeybinds(path string, out io.Writer) error {
	validator := keybinds.NewValidator()

	cfg, err := keybinds.LoadConfig(path)
	var result *keybinds.ValidationResult
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(out, "%s not found, checking defaults\n", path)
		result = validator.ValidateRegistry(keybinds.NewDefaultRegistry())
	case err != nil:
		return err
	default:
		result = validator.ValidateConfig(cfg)
	}

	if !result.HasErrors() && !result.HasWarnings() {
		fmt.Fprintln(out, "Keybindings OK")
		return nil
	}

	fmt.Fprint(out, result.String())
	if result.HasErrors() {
		return ErrInvalidKeybinds
	}
	return nil
}

// ExportKeybinds prints the default bindings in keybinds.json format
func ExportKeybinds(out io.Writer) error {
	data, err := json.MarshalIndent(keybinds.ExportDefaults(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode keybindings: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
