package keybinds

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]bool

	// contextHierarchy defines which contexts fall back to global on a miss.
	// Text-input contexts (search, modal, jump) and overlays match exactly.
	contextHierarchy map[Context]Context
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+c": true, // Force quit should always work
		},
		contextHierarchy: map[Context]Context{
			ContextDecks: ContextGlobal,
			ContextCards: ContextGlobal,
			ContextStudy: ContextGlobal,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkUnknownActions(registry, result)
	v.checkReservedKeys(registry, result)

	// Check for shadowing (context-specific binding hiding global binding)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a configuration before applying it.
// Config bindings are checked on their own and then merged over the defaults.
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkDuplicateBindings(config, result)
	if result.HasErrors() {
		return result
	}

	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Message: err.Error(),
		})
		return result
	}

	merged := v.ValidateRegistry(registry)
	result.Errors = append(result.Errors, merged.Errors...)
	result.Warnings = append(result.Warnings, merged.Warnings...)
	return result
}

// checkDuplicateBindings checks for a key assigned to more than one action in the same section
func (v *Validator) checkDuplicateBindings(config *Config, result *ValidationResult) {
	for _, context := range Contexts {
		section := config.sections()[context]

		owners := make(map[string][]string)
		for actionStr, keys := range section {
			if !IsKnownAction(Action(actionStr)) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Message: fmt.Sprintf("unknown action '%s'", actionStr),
				})
				continue
			}

			split := SplitKeys(keys)
			if len(split) == 0 {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Message: fmt.Sprintf("no keys for action '%s'", actionStr),
				})
			}
			for _, key := range split {
				if err := ValidateKey(key); err != nil {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "invalid",
						Context: context,
						Key:     key,
						Message: err.Error(),
					})
					continue
				}
				if !slices.Contains(owners[key], actionStr) {
					owners[key] = append(owners[key], actionStr)
				}
			}
		}

		keys := make([]string, 0, len(owners))
		for key := range owners {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if actions := owners[key]; len(actions) > 1 {
				sort.Strings(actions)
				result.Errors = append(result.Errors, ValidationError{
					Type:    "conflict",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("key bound %d times (%s)", len(actions), strings.Join(actions, ", ")),
				})
			}
		}
	}
}

// checkUnknownActions reports bindings to actions the application does not define
func (v *Validator) checkUnknownActions(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if !IsKnownAction(action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action '%s'", action),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if v.reservedKeys[key] && action != ActionQuitForce {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for context, parent := range v.contextHierarchy {
		if parent != ContextGlobal {
			continue
		}
		for key, action := range registry.bindings[context] {
			if globalAction, hasGlobal := globalBindings[key]; hasGlobal && action != globalAction {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
				})
			}
		}
	}
}

// FindConflicts finds all conflicting keybindings in a config
func FindConflicts(config *Config) []string {
	validator := NewValidator()
	result := validator.ValidateConfig(config)

	var conflicts []string
	for _, err := range result.Errors {
		if err.Type == "conflict" {
			conflicts = append(conflicts, err.Error())
		}
	}

	return conflicts
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}
