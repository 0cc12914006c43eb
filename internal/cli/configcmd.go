package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zfake/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change persisted settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", config.Path(app.DataDir))
			for _, l := range app.Config.Lines() {
				fmt.Fprintln(out, l)
			}
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(config.Path(app.DataDir), cfg); err != nil {
				return err
			}
			app.Config = cfg
			fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", config.Path(app.DataDir))
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}
