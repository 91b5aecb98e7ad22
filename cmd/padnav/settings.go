package padnav

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"padnav/internal/config"
)

// loadSettings reads the settings file and lays PADNAV_* environment
// variables over it, e.g. PADNAV_ALLOW_MOUSE_BUTTONS=true.
func loadSettings(path string) (*config.Settings, error) {
	base, err := config.NewConfigService(path).Load()
	if err != nil {
		return nil, err
	}
	return overlayEnv(base)
}

func overlayEnv(base *config.Settings) (*config.Settings, error) {
	data, err := toml.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s config.Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
