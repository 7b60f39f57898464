package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDir(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		xdg     string
		home    string
		wantDir string
	}{
		{
			name:    "XDG Set",
			xdg:     filepath.Join(base, "xdg"),
			home:    filepath.Join(base, "home"),
			wantDir: filepath.Join(base, "xdg", "scribe"),
		},
		{
			name:    "Home Fallback",
			home:    filepath.Join(base, "home"),
			wantDir: filepath.Join(base, "home", ".local", "share", "scribe"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_DATA_HOME", tt.xdg)
			t.Setenv("HOME", tt.home)

			got, err := DataDir()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	got, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "scribe", "config.yaml"), got)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	got, err = ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cfg", "scribe", "config.yaml"), got)
}
