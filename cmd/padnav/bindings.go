package padnav

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"padnav/internal/bindings"
	"padnav/internal/demo"
	"padnav/internal/termhost"
)

var noPager bool

var bindingsCmd = &cobra.Command{
	Use:              "bindings",
	Short:            "Show the demo's input bindings",
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings(settingsPath())
		if err != nil {
			return err
		}
		entries := demo.Bindings(settings).Entries()
		if noPager || !term.IsTerminal(int(os.Stdout.Fd())) {
			_, err := fmt.Fprint(cmd.OutOrStdout(), plainSheet(entries))
			return err
		}
		return termhost.ShowInPager(termhost.BindingSheet(entries))
	},
}

func init() {
	bindingsCmd.Flags().BoolVar(&noPager, "no-pager", false, "print the table instead of paging it")
}

// plainSheet is the unstyled table for pipes
func plainSheet(entries []bindings.Entry) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Input))
	}
	var out string
	for _, e := range entries {
		out += fmt.Sprintf("%-*s  %s\n", width, e.Input, e.Command)
	}
	return out
}
