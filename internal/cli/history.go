package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/zfake/internal/document"
	"github.com/zarlcorp/zfake/internal/history"
)

var errNoHistory = errors.New("history is unavailable")

func newHistoryCmd(app *App) *cobra.Command {
	var (
		clearAll bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "history [kind]",
		Short: "List or clear recently generated values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return errNoHistory
			}

			kinds := document.Kinds
			if len(args) == 1 {
				k, err := document.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []document.Kind{k}
			}

			if clearAll {
				for _, k := range kinds {
					if err := app.History.Clear(k); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "history cleared")
				return nil
			}

			var all []history.Entry
			for _, k := range kinds {
				entries, err := app.History.List(k)
				if err != nil {
					return err
				}
				all = append(all, entries...)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if all == nil {
					all = []history.Entry{}
				}
				return printJSON(out, all)
			}

			if len(all) == 0 {
				fmt.Fprintln(out, "no history")
				return nil
			}

			fmt.Fprintln(out, historyTable(all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove history instead of listing it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

// historyTable lays entries out as borderless kind/value/time columns.
func historyTable(entries []history.Entry) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		})
	for _, e := range entries {
		t.Row(e.Kind.String(), e.Value, e.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return t.String()
}
