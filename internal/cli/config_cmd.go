package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.cfg.Path != "" {
				fmt.Fprintf(out, "# loaded from %s\n", app.cfg.Path)
			} else {
				fmt.Fprintln(out, "# built-in defaults")
			}
			if err := toml.NewEncoder(out).Encode(app.cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
