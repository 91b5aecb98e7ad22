package padnav

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"padnav/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

var configInitCmd = &cobra.Command{
	Use:              "init",
	Short:            "Write the default settings file",
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cs := config.NewConfigService(settingsPath())
		if _, err := os.Stat(cs.Path()); err == nil && !forceInit {
			return fmt.Errorf("%s already exists, use --force to overwrite", cs.Path())
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := cs.Save(config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cs.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:              "show",
	Short:            "Print the effective settings, environment included",
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.NewConfigService(settingsPath()).Path()
		settings, err := loadSettings(path)
		if err != nil {
			return err
		}
		data, err := toml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
