package padnav

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"padnav/internal/config"
	"padnav/internal/demo"
	"padnav/internal/eventbus"
	"padnav/internal/nav"
	"padnav/internal/padhost"
	"padnav/internal/termhost"
	"padnav/internal/toolkit"
)

var (
	frameInterval time.Duration
	holdWindow    time.Duration
	noWatch       bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the navigation demo in the terminal",
	Long: `Run the navigation demo in the terminal. Arrow keys navigate, Enter or
Space activate, Tab cycles focus and F1 shows the binding sheet.

Terminals report key presses but not releases, so a key counts as held for
--hold-window after its last press or auto-repeat. The window has to cover
the terminal's auto-repeat delay for a held key to repeat at the
secs_after_first_input pace, and has to stay below secs_after_first_input
for a single tap to move only once. Actions that fire on release, like
Back, fire once the window has passed.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runHost(func(app *demo.App, logger *slog.Logger) error {
			settings := app.Navigator().Settings()
			if first := settings.FirstDelay(); holdWindow >= first {
				logger.Warn("hold window reaches the first repeat delay, single taps will repeat",
					"hold_window", holdWindow, "first_delay", first)
			}
			model := termhost.New(app,
				termhost.WithFrameInterval(frameInterval),
				termhost.WithHoldWindow(holdWindow),
				termhost.WithLogger(logger),
			)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
			_, err := p.Run()
			return err
		})
	},
}

var gamepadCmd = &cobra.Command{
	Use:              "gamepad",
	Short:            "Run the navigation demo in a window that reads gamepads",
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runHost(padhost.Run)
	},
}

func init() {
	demoCmd.Flags().DurationVar(&frameInterval, "frame-interval", termhost.DefaultFrameInterval, "time between frames")
	demoCmd.Flags().DurationVar(&holdWindow, "hold-window", termhost.DefaultHoldWindow, "how long a key stays held after its last press")
	for _, cmd := range []*cobra.Command{demoCmd, gamepadCmd} {
		cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the settings file when it changes")
	}
}

// runHost wires settings, logging and the event bus around a demo app and
// hands it to run.
func runHost(run func(*demo.App, *slog.Logger) error) error {
	logger, closer := setupLogging()
	defer closer.Close()

	path := config.NewConfigService(settingsPath()).Path()
	settings, err := loadSettings(path)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	bus := eventbus.New(logger)
	defer bus.Close()
	unsubscribe := logEvents(bus, logger)
	defer unsubscribe()

	app := newApp(settings, bus, logger)

	if !noWatch {
		watcher, err := config.NewWatcher(path, bus, logger)
		if err != nil {
			logger.Warn("settings will not reload", "error", err)
		} else {
			defer watcher.Close()
			go applyReloads(watcher.Start(), app.Navigator(), logger)
		}
	}

	logger.Info("padnav starting", "settings", path)
	return run(app, logger)
}

func newApp(settings *config.Settings, bus eventbus.EventBus, logger *slog.Logger) *demo.App {
	tk := toolkit.New()
	n := nav.New(tk,
		nav.WithSettings(settings),
		nav.WithBindingsFunc(demo.Bindings),
		nav.WithEventBus(bus),
		nav.WithLogger(logger),
	)
	return demo.New(tk, n, logger)
}

// applyReloads feeds reloaded settings to the navigator until reloads closes
func applyReloads(reloads <-chan config.Reload, n *nav.Navigator, logger *slog.Logger) {
	for r := range reloads {
		if r.Error != nil {
			logger.Warn("settings reload rejected", "error", r.Error)
			continue
		}
		s, err := overlayEnv(r.Settings)
		if err != nil {
			logger.Warn("settings reload rejected", "error", err)
			continue
		}
		n.ApplySettings(s)
		logger.Info("settings reloaded")
	}
}

// logEvents mirrors navigator events into the log
func logEvents(bus eventbus.EventBus, logger *slog.Logger) func() {
	types := []eventbus.EventType{
		eventbus.EventFocusMoved,
		eventbus.EventActivated,
		eventbus.EventUserAction,
		eventbus.EventCaptureStarted,
		eventbus.EventCaptureFinished,
		eventbus.EventCaptureAbandoned,
		eventbus.EventInputCleared,
		eventbus.EventSettingsReloaded,
		eventbus.EventError,
	}
	var unsubs []func()
	for _, t := range types {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.Debug("event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
