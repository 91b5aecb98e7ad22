// Package padnav holds the padnav command line.
package padnav

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"padnav/internal/logging"
)

const envPrefix = "padnav"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "padnav",
	Short: "Keyboard and gamepad navigation for immediate-mode UIs",
	Long: `padnav drives an immediate-mode widget toolkit with directional
navigation, held-input repeat, activation and input capture.

Run "padnav demo" for the terminal demo or "padnav gamepad" for a window
that reads real gamepads.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is the user config dir)")
	flags.String("log-file", "padnav.log", "file receiving log records, empty to discard")
	flags.String("log-level", "info", "log level: debug, info, warn or error")

	cobra.CheckErr(viper.BindPFlag("log-file", flags.Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag("log-level", flags.Lookup("log-level")))

	rootCmd.AddCommand(demoCmd, gamepadCmd, bindingsCmd, configCmd)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// settingsPath is the settings file the commands read and watch
func settingsPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return viper.GetString("config")
}

// bindFlags fills unset flags from the environment. Explicit flags win.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !viper.IsSet(f.Name) {
			return
		}
		val := viper.Get(f.Name)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			fmt.Fprintf(os.Stderr, "ignoring %s from the environment: %v\n", f.Name, err)
		}
	})
}

// setupLogging builds the logger for a host run
func setupLogging() (*slog.Logger, io.Closer) {
	logger, closer := logging.Setup(viper.GetString("log-file"), logging.ParseLevel(viper.GetString("log-level")))
	slog.SetDefault(logger)
	return logger, closer
}
