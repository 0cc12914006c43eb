package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zfake/internal/document"
)

type validation struct {
	Kind  document.Kind `json:"kind"`
	Value string        `json:"value"`
	Valid bool          `json:"valid"`
}

func newValidateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <cpf|cnpj|rg> [number]",
		Short: "Check the check digits of a document number",
		Long: `Check the check digits of a CPF, CNPJ or RG. Separators are ignored.
When the number is omitted and stdout is a terminal, it is prompted for.
Exits non-zero when the number is invalid.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := document.ParseKind(args[0])
			if err != nil {
				return err
			}

			var value string
			switch {
			case len(args) == 2:
				value = args[1]
			case app.Interactive():
				value, err = app.Prompt(fmt.Sprintf("%s number", kind.Label()))
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("validate %s: missing number", kind)
			}
			value = strings.TrimSpace(value)

			ok, err := document.Validate(kind, value)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := printJSON(out, validation{Kind: kind, Value: value, Valid: ok}); err != nil {
					return err
				}
			} else if ok {
				fmt.Fprintf(out, "%s %s is valid\n", kind.Label(), value)
			} else {
				fmt.Fprintf(out, "%s %s is invalid\n", kind.Label(), value)
			}

			if !ok {
				return ErrInvalid
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
