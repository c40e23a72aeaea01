package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Id formats
const (
	IDFormatUUID   = "uuid"
	IDFormatNanoID = "nanoid"
)

// Shuffle modes
const (
	ShuffleUniform = "uniform"
	ShuffleLegacy  = "legacy"
)

// Settings is the content of config.yaml
type Settings struct {
	Storage StorageSettings `yaml:"storage"`
	IDs     IDSettings      `yaml:"ids"`
	Study   StudySettings   `yaml:"study"`
	Log     LogSettings     `yaml:"log"`
}

// StorageSettings selects the key-value backend
type StorageSettings struct {
	Backend string `yaml:"backend"`
}

// IDSettings selects the id generator
type IDSettings struct {
	Format string `yaml:"format"`
}

// StudySettings configures study sessions
type StudySettings struct {
	Shuffle string `yaml:"shuffle"`
}

// LogSettings configures the logger
type LogSettings struct {
	Level string `yaml:"level"`
}

// DefaultSettings returns the settings used when config.yaml is absent
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{Backend: BackendFile},
		IDs:     IDSettings{Format: IDFormatUUID},
		Study:   StudySettings{Shuffle: ShuffleUniform},
		Log:     LogSettings{Level: "info"},
	}
}

// LoadSettings reads config.yaml. A missing file yields the defaults.
// Invalid values are replaced by their defaults and reported in the returned error,
// so callers can warn and continue with the usable settings.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file: %w", err)
	}

	return settings, settings.normalize()
}

// SaveSettings writes settings to path as YAML
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// normalize fills empty fields with defaults and resets invalid ones
func (s *Settings) normalize() error {
	defaults := DefaultSettings()
	var errs []error

	check := func(field *string, name, def string, allowed ...string) {
		if *field == "" {
			*field = def
			return
		}
		for _, a := range allowed {
			if *field == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("invalid %s %q (using %q)", name, *field, def))
		*field = def
	}

	check(&s.Storage.Backend, "storage.backend", defaults.Storage.Backend, BackendFile, BackendSQLite)
	check(&s.IDs.Format, "ids.format", defaults.IDs.Format, IDFormatUUID, IDFormatNanoID)
	check(&s.Study.Shuffle, "study.shuffle", defaults.Study.Shuffle, ShuffleUniform, ShuffleLegacy)
	check(&s.Log.Level, "log.level", defaults.Log.Level, "debug", "info", "warn", "error")

	return errors.Join(errs...)
}
