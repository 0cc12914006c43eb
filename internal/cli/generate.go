package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zfake/internal/document"
)

type generateFlags struct {
	count  int
	mask   bool
	noMask bool
	head   bool
	upper  bool
	comp   bool
	asJSON bool
	copy   bool
}

// generated is the JSON shape of a generate run.
type generated struct {
	Kind   document.Kind `json:"kind"`
	Masked bool          `json:"masked,omitempty"`
	Values []string      `json:"values"`
}

func newDocumentCmd(app *App, kind document.Kind) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: fmt.Sprintf("Generate fake %s numbers", kind.Label()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			masked := f.mask
			if f.noMask {
				masked = false
			}
			opts := document.Options{Masked: masked, HeadOffice: f.head}
			return app.runGenerate(cmd, kind, f, opts)
		},
	}

	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "How many numbers to generate")
	cmd.Flags().BoolVarP(&f.mask, "mask", "m", app.Config.Masked, "Render with separators")
	cmd.Flags().BoolVar(&f.noMask, "no-mask", false, "Render digits only")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "Copy the result to the clipboard")
	if kind == document.CNPJ {
		cmd.Flags().BoolVar(&f.head, "head-office", false, "Fix the branch segment to 0001")
	}

	return cmd
}

func newUUIDCmd(app *App) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := document.Options{UUID: document.UUIDFormat{Upper: f.upper, Compact: f.comp}}
			return app.runGenerate(cmd, document.UUID, f, opts)
		},
	}

	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "How many UUIDs to generate")
	cmd.Flags().BoolVarP(&f.upper, "upper", "u", app.Config.UUIDUpper, "Uppercase hex digits")
	cmd.Flags().BoolVar(&f.comp, "compact", app.Config.UUIDCompact, "Drop hyphens")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "Copy the result to the clipboard")

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, kind document.Kind, f generateFlags, opts document.Options) error {
	values, err := a.Gen.Batch(kind, f.count, opts)
	if err != nil {
		return err
	}
	a.record(kind, values)

	out := cmd.OutOrStdout()
	if f.asJSON {
		if err := printJSON(out, generated{Kind: kind, Masked: opts.Masked, Values: values}); err != nil {
			return err
		}
	} else {
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
	}

	if f.copy && len(values) > 0 {
		return a.copyOut(cmd, strings.Join(values, "\n"))
	}
	return nil
}
