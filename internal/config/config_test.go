package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"padnav/internal/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.True(t, s.AllowKeyboard)
	assert.True(t, s.AllowGamepads)
	assert.False(t, s.AllowMouseButtons)
	assert.Equal(t, 600*time.Millisecond, s.FirstDelay())
	assert.Equal(t, 40*time.Millisecond, s.RepeatInterval())
	assert.Equal(t, 1, s.InvalidationCooldownFrames)

	nav := s.NavigationFilter()
	assert.True(t, nav.Keyboard)
	assert.False(t, nav.MouseButtons, "navigation never reads mouse buttons")
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope", "settings.toml"))
	s, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padnav", "settings.toml")
	svc := NewConfigService(path)

	s := DefaultSettings()
	s.AllowMouseWheel = true
	s.SecsBetweenInputs = 0.1
	s.PreventLossOfFocus = true
	require.NoError(t, svc.Save(s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "allow_mouse_wheel = true")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte("focus_on_mouse_movement = true\n"))
	require.NoError(t, err)
	assert.True(t, s.FocusOnMouseMovement)
	assert.True(t, s.AllowKeyboard)
	assert.Equal(t, 0.6, s.SecsAfterFirstInput)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("secs_between_inputs = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidSettings)

	_, err = Parse([]byte("invalidation_cooldown_frames = -2\n"))
	assert.ErrorIs(t, err, ErrInvalidSettings)

	_, err = Parse([]byte("allow_keyboard = [nope"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSettings)

	svc := NewConfigService(filepath.Join(t.TempDir(), "s.toml"))
	bad := DefaultSettings()
	bad.SecsAfterFirstInput = -1
	assert.ErrorIs(t, svc.Save(bad), ErrInvalidSettings)
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventSettingsLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "settings.toml")
	_, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		assert.Equal(t, path, e.(eventbus.SettingsLoadedEvent).Path)
	case <-time.After(time.Second):
		t.Fatal("SettingsLoaded not published")
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, NewConfigService(path).Save(DefaultSettings()))

	w, err := NewWatcher(path, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer w.Close()

	reloads := w.Start()
	<-w.Ready()

	require.NoError(t, os.WriteFile(path, []byte("allow_mouse_buttons = true\n"), 0o644))

	select {
	case r := <-reloads:
		require.NoError(t, r.Error)
		assert.True(t, r.Settings.AllowMouseButtons)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "settings.toml"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, open := <-w.Start()
	assert.False(t, open)
}
