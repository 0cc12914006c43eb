// Package cli implements zfake's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfake/internal/clipboard"
	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/document"
	"github.com/zarlcorp/zfake/internal/history"
	"github.com/zarlcorp/zfake/internal/sampler"
	"golang.org/x/term"
)

// ErrInvalid is returned by validate when the number fails its check digits.
// Callers should exit non-zero without printing it again.
var ErrInvalid = errors.New("document is invalid")

// App holds the collaborators shared by all subcommands.
type App struct {
	Version string
	DataDir string
	Config  config.Config
	Gen     *document.Generator
	// History is nil when the data dir could not be prepared.
	History *history.Store

	Copy        func(string) error
	Prompt      func(title string) (string, error)
	Interactive func() bool
	Source      func(x, y int) sampler.Source
}

// NewApp loads config and history from dataDir, wiring the real clipboard,
// prompt and screen source.
func NewApp(version, dataDir string) (*App, error) {
	cfg, err := config.Load(config.Path(dataDir))
	if err != nil {
		return nil, err
	}

	app := &App{
		Version:     version,
		DataDir:     dataDir,
		Config:      cfg,
		Gen:         document.New(),
		Copy:        clipboard.Copy,
		Prompt:      promptValue,
		Interactive: stdoutIsTerminal,
		Source: func(x, y int) sampler.Source {
			return sampler.ScreenSource{X: x, Y: y}
		},
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		slog.Warn("history disabled", "dir", dataDir, "err", err)
		return app, nil
	}
	h, err := history.Open(zfilesystem.NewOSFileSystem(dataDir), cfg.HistorySize)
	if err != nil {
		slog.Warn("history disabled", "dir", dataDir, "err", err)
		return app, nil
	}
	app.History = h
	return app, nil
}

// Execute runs the CLI with args (without the program name).
func Execute(ctx context.Context, version string, args []string) error {
	app, err := NewApp(version, config.DataDir())
	if err != nil {
		return err
	}

	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "zfake",
		Short: "Fake Brazilian document numbers, UUIDs and color conversion",
		Long: `zfake generates check-digit-correct test data and converts colors:
  - CPF, CNPJ and RG numbers, optionally masked
  - version 4 UUIDs
  - HEX, RGB and CMYK color conversion and screen sampling

Run without arguments for the interactive TUI.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				slog.SetDefault(slog.New(h))
			}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(
		newDocumentCmd(app, document.CPF),
		newDocumentCmd(app, document.CNPJ),
		newDocumentCmd(app, document.RG),
		newUUIDCmd(app),
		newValidateCmd(app),
		newColorCmd(app),
		newHistoryCmd(app),
		newConfigCmd(app),
		newVersionCmd(app),
	)

	return root
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zfake %s\n", app.Version)
		},
	}
}

// record appends values to history; failures are logged, not fatal.
func (a *App) record(kind document.Kind, values []string) {
	if a.History == nil {
		return
	}
	for _, v := range values {
		if err := a.History.Add(kind, v); err != nil {
			slog.Debug("record history", "kind", kind.String(), "err", err)
			return
		}
	}
}

// copyOut places text on the clipboard and notes it on stderr.
func (a *App) copyOut(cmd *cobra.Command, text string) error {
	if err := a.Copy(text); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "copied")
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// printCompact writes v as one JSON line.
func printCompact(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func promptValue(title string) (string, error) {
	var v string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&v),
	)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return v, nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
