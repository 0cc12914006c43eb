package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/zfake/internal/color"
	"github.com/zarlcorp/zfake/internal/sampler"
)

// colorReport is the JSON shape of a converted color.
type colorReport struct {
	Hex  string     `json:"hex"`
	RGB  color.RGB  `json:"rgb"`
	CMYK color.CMYK `json:"cmyk"`
	Text string     `json:"cmyk_text"`
}

func reportFor(c color.RGB) colorReport {
	k := c.CMYK()
	return colorReport{Hex: c.Hex(), RGB: c, CMYK: k, Text: k.String()}
}

func newColorCmd(app *App) *cobra.Command {
	var (
		asJSON bool
		plain  bool
		copyAs string
	)

	cmd := &cobra.Command{
		Use:   "color <#rrggbb|r,g,b|rgb(r,g,b)>",
		Short: "Convert a color between HEX, RGB and CMYK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			rep := reportFor(c)

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				if err := printJSON(out, rep); err != nil {
					return err
				}
			case plain || !app.Interactive():
				writePlain(out, rep)
			default:
				writeMarkdown(out, rep)
			}

			if copyAs == "" {
				return nil
			}
			text, err := pick(rep, copyAs)
			if err != nil {
				return err
			}
			return app.copyOut(cmd, text)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain text even on a terminal")
	cmd.Flags().StringVarP(&copyAs, "copy", "c", "", "Copy one format to the clipboard: hex, rgb or cmyk")

	cmd.AddCommand(newColorWatchCmd(app))
	return cmd
}

func newColorWatchCmd(app *App) *cobra.Command {
	var (
		x, y     int
		interval time.Duration
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sample a screen pixel and print each color change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			src := app.Source(x, y)
			slog.Debug("color watch", "x", x, "y", y, "interval", interval)

			err := sampler.Run(cmd.Context(), src, interval, func(r sampler.Reading) {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "sample: %v\n", r.Err)
					return
				}
				rep := reportFor(r.Color)
				if asJSON {
					if err := printCompact(out, rep); err != nil {
						slog.Debug("write reading", "err", err)
					}
					return
				}
				fmt.Fprintf(out, "%s  %s  %s\n", rep.Hex, r.Color, rep.Text)
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&x, "x", app.Config.SampleX, "Screen x coordinate")
	cmd.Flags().IntVar(&y, "y", app.Config.SampleY, "Screen y coordinate")
	cmd.Flags().DurationVar(&interval, "interval", app.Config.SampleInterval, "Sampling interval")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per line")
	return cmd
}

func pick(rep colorReport, format string) (string, error) {
	switch format {
	case "hex":
		return rep.Hex, nil
	case "rgb":
		return rep.RGB.String(), nil
	case "cmyk":
		return rep.Text, nil
	}
	return "", fmt.Errorf("copy format %q: want hex, rgb or cmyk", format)
}

func writePlain(w io.Writer, rep colorReport) {
	fmt.Fprintf(w, "HEX   %s\n", rep.Hex)
	fmt.Fprintf(w, "RGB   %s\n", rep.RGB)
	fmt.Fprintf(w, "CMYK  %s\n", rep.Text)
}

func writeMarkdown(w io.Writer, rep colorReport) {
	md := fmt.Sprintf(`# %s

| format | value |
|--------|-------|
| HEX | %s |
| RGB | %s |
| CMYK | %s |
`, rep.Hex, rep.Hex, rep.RGB, rep.Text)

	rendered, err := glamour.Render(md, "dark")
	if err != nil {
		slog.Debug("render markdown", "err", err)
		writePlain(w, rep)
		return
	}
	fmt.Fprint(w, rendered)
}
