package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration.
// Each section maps an action name to a comma-separated list of keys.
type Config struct {
	Version string            `json:"version,omitempty"`
	Global  map[string]string `json:"global,omitempty"`
	Decks   map[string]string `json:"decks,omitempty"`
	Cards   map[string]string `json:"cards,omitempty"`
	Study   map[string]string `json:"study,omitempty"`
	Search  map[string]string `json:"search,omitempty"`
	Modal   map[string]string `json:"modal,omitempty"`
	Confirm map[string]string `json:"confirm,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
	Jump    map[string]string `json:"jump,omitempty"`
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextDecks:   c.Decks,
		ContextCards:   c.Cards,
		ContextStudy:   c.Study,
		ContextSearch:  c.Search,
		ContextModal:   c.Modal,
		ContextConfirm: c.Confirm,
		ContextHelp:    c.Help,
		ContextJump:    c.Jump,
	}
}

// ParseConfig parses keybinding configuration. Comments and trailing commas are allowed.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return &config, nil
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// SplitKeys splits a comma-separated key list. A lone "," is the comma key.
func SplitKeys(s string) []string {
	if s == "," {
		return []string{","}
	}
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k == " " {
			keys = append(keys, k)
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ApplyConfig applies user configuration to a registry
// User bindings override default bindings
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		actions := make([]string, 0, len(section))
		for a := range section {
			actions = append(actions, a)
		}
		// Sorted so that conflicting entries resolve the same way every run
		sort.Strings(actions)

		for _, actionStr := range actions {
			action := Action(actionStr)
			if !IsKnownAction(action) {
				return fmt.Errorf("unknown action '%s' in section '%s'", actionStr, context)
			}
			for _, key := range SplitKeys(section[actionStr]) {
				registry.Register(context, key, action)
			}
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err != nil {
		// If config doesn't exist, that's fine - use defaults
		return registry, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	if result := NewValidator().ValidateConfig(config); result.HasErrors() {
		return nil, fmt.Errorf("invalid keybinds.json: %s", result.Errors[0].Error())
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	return registry, nil
}

// ExportDefaults exports the default keybindings as a config
func ExportDefaults() *Config {
	r := NewDefaultRegistry()
	config := &Config{Version: "1.0"}
	for context := range config.sections() {
		section := make(map[string]string)
		for _, b := range r.ListBindings(context) {
			if prev, ok := section[string(b.Action)]; ok {
				section[string(b.Action)] = prev + "," + b.Key
			} else {
				section[string(b.Action)] = b.Key
			}
		}
		config.setSection(context, section)
	}
	return config
}

func (c *Config) setSection(context Context, section map[string]string) {
	switch context {
	case ContextGlobal:
		c.Global = section
	case ContextDecks:
		c.Decks = section
	case ContextCards:
		c.Cards = section
	case ContextStudy:
		c.Study = section
	case ContextSearch:
		c.Search = section
	case ContextModal:
		c.Modal = section
	case ContextConfirm:
		c.Confirm = section
	case ContextHelp:
		c.Help = section
	case ContextJump:
		c.Jump = section
	}
}
