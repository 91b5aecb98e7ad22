package padnav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padnav/internal/config"
	"padnav/internal/demo"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := loadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("secs_between_inputs = 0.1\nallow_gamepads = false\n"), 0o644))
	t.Setenv("PADNAV_ALLOW_MOUSE_BUTTONS", "true")
	t.Setenv("PADNAV_SECS_AFTER_FIRST_INPUT", "0.25")

	s, err := loadSettings(path)
	require.NoError(t, err)
	assert.True(t, s.AllowMouseButtons)
	assert.False(t, s.AllowGamepads, "from the file")
	assert.InDelta(t, 0.1, s.SecsBetweenInputs, 1e-9)
	assert.InDelta(t, 0.25, s.SecsAfterFirstInput, 1e-9)
}

func TestLoadSettingsRejectsInvalidEnv(t *testing.T) {
	t.Setenv("PADNAV_SECS_BETWEEN_INPUTS", "0")
	_, err := loadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestPlainSheet(t *testing.T) {
	s := config.DefaultSettings()
	s.DisableDefaultNavigation = true
	out := plainSheet(demo.Bindings(s).Entries())

	assert.Contains(t, out, "Delete")
	assert.Contains(t, out, "User(Delete)")
	assert.Contains(t, out, "Click")
	assert.NotContains(t, out, "NavigateUp", "default navigation disabled")
	assert.Empty(t, plainSheet(nil))
}
