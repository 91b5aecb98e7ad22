package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"padnav/internal/eventbus"
	"padnav/internal/input"
)

// ErrInvalidSettings is wrapped by Validate failures
var ErrInvalidSettings = errors.New("invalid settings")

// Settings controls the navigator. Key bindings are deliberately absent;
// they live in code only.
type Settings struct {
	AllowKeyboard           bool `toml:"allow_keyboard" mapstructure:"allow_keyboard"`
	AllowMouseButtons       bool `toml:"allow_mouse_buttons" mapstructure:"allow_mouse_buttons"`
	AllowMouseWheel         bool `toml:"allow_mouse_wheel" mapstructure:"allow_mouse_wheel"`
	AllowMouseWheelSideways bool `toml:"allow_mouse_wheel_sideways" mapstructure:"allow_mouse_wheel_sideways"`
	AllowGamepads           bool `toml:"allow_gamepads" mapstructure:"allow_gamepads"`

	// SecsAfterFirstInput is how long a held input waits before repeating
	SecsAfterFirstInput float64 `toml:"secs_after_first_input" mapstructure:"secs_after_first_input"`
	// SecsBetweenInputs is the repeat interval once repeating
	SecsBetweenInputs float64 `toml:"secs_between_inputs" mapstructure:"secs_between_inputs"`

	DisableDefaultNavigation bool `toml:"disable_default_navigation" mapstructure:"disable_default_navigation"`
	DisableDefaultActivation bool `toml:"disable_default_activation" mapstructure:"disable_default_activation"`

	// PreventLossOfFocus refocuses the last focused node when focus vanishes
	PreventLossOfFocus bool `toml:"prevent_loss_of_focus" mapstructure:"prevent_loss_of_focus"`
	// FocusOnMouseMovement focuses navigable nodes the pointer moves over
	FocusOnMouseMovement bool `toml:"focus_on_mouse_movement" mapstructure:"focus_on_mouse_movement"`

	InvalidationCooldownFrames int `toml:"invalidation_cooldown_frames" mapstructure:"invalidation_cooldown_frames"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		AllowKeyboard:              true,
		AllowGamepads:              true,
		SecsAfterFirstInput:        0.6,
		SecsBetweenInputs:          0.04,
		InvalidationCooldownFrames: 1,
	}
}

// Validate rejects values the navigator cannot run with
func (s *Settings) Validate() error {
	if s.SecsAfterFirstInput < 0 {
		return fmt.Errorf("%w: secs_after_first_input must not be negative", ErrInvalidSettings)
	}
	if s.SecsBetweenInputs <= 0 {
		return fmt.Errorf("%w: secs_between_inputs must be positive", ErrInvalidSettings)
	}
	if s.InvalidationCooldownFrames < 0 {
		return fmt.Errorf("%w: invalidation_cooldown_frames must not be negative", ErrInvalidSettings)
	}
	return nil
}

// FirstDelay is SecsAfterFirstInput as a duration
func (s *Settings) FirstDelay() time.Duration {
	return secs(s.SecsAfterFirstInput)
}

// RepeatInterval is SecsBetweenInputs as a duration
func (s *Settings) RepeatInterval() time.Duration {
	return secs(s.SecsBetweenInputs)
}

func secs(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// NavigationFilter selects the devices that drive navigation
func (s *Settings) NavigationFilter() input.Filter {
	return input.Filter{
		Keyboard: s.AllowKeyboard,
		Gamepads: s.AllowGamepads,
	}
}

// CaptureFilter selects the devices read while recording a binding
func (s *Settings) CaptureFilter() input.Filter {
	return input.Filter{
		Keyboard:           s.AllowKeyboard,
		MouseButtons:       s.AllowMouseButtons,
		MouseWheel:         s.AllowMouseWheel,
		MouseWheelSideways: s.AllowMouseWheelSideways,
		Gamepads:           s.AllowGamepads,
	}
}

// ConfigService handles settings persistence
type ConfigService interface {
	Load() (*Settings, error)
	Save(settings *Settings) error
	LoadFromPath(path string) (*Settings, error)
	SaveToPath(settings *Settings, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the settings file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "padnav", "settings.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when
// path is empty.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the settings from file. A missing file yields the defaults.
func (cs *configService) Load() (*Settings, error) {
	var settings *Settings
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		settings = DefaultSettings()
	} else {
		settings, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.SettingsLoadedEvent{Path: cs.filePath})
	}
	return settings, nil
}

// Save saves the settings to file
func (cs *configService) Save(settings *Settings) error {
	if err := cs.SaveToPath(settings, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.SettingsSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads settings from a specific path. Keys absent from the
// file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML settings on top of the defaults and validates them
func Parse(data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveToPath saves settings to a specific path
func (cs *configService) SaveToPath(settings *Settings, path string) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
