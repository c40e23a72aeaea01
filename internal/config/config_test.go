package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesLayout(t *testing.T) {
	home := filepath.Join(t.TempDir(), "flash")

	require.NoError(t, Initialize(home))

	assert.Equal(t, home, ConfigDir)
	assert.Equal(t, filepath.Join(home, "store"), StoreDir)
	assert.Equal(t, filepath.Join(home, "flashcli.db"), DatabasePath)

	info, err := os.Stat(StoreDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	settings, err := LoadSettings(SettingsFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestInitialize_KeepsExistingSettings(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: sqlite\n"), FilePermissions))

	require.NoError(t, Initialize(home))

	settings, err := LoadSettings(SettingsFile)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, settings.Storage.Backend)
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Settings
		wantErr bool
	}{
		{
			name:    "partial file keeps defaults for missing fields",
			content: "study:\n  shuffle: legacy\n",
			want: Settings{
				Storage: StorageSettings{Backend: BackendFile},
				IDs:     IDSettings{Format: IDFormatUUID},
				Study:   StudySettings{Shuffle: ShuffleLegacy},
				Log:     LogSettings{Level: "info"},
			},
		},
		{
			name:    "invalid value falls back with error",
			content: "ids:\n  format: sequential\nlog:\n  level: debug\n",
			want: Settings{
				Storage: StorageSettings{Backend: BackendFile},
				IDs:     IDSettings{Format: IDFormatUUID},
				Study:   StudySettings{Shuffle: ShuffleUniform},
				Log:     LogSettings{Level: "debug"},
			},
			wantErr: true,
		},
		{
			name:    "malformed yaml yields defaults",
			content: "storage: [unterminated",
			want:    DefaultSettings(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), FilePermissions))

			got, err := LoadSettings(path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}
