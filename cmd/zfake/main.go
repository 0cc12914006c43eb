package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zfake/internal/cli"
	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/history"
	"github.com/zarlcorp/zfake/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zfake"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		err := cli.Execute(ctx, version, os.Args[1:])
		_ = app.Close()
		if err != nil {
			if !errors.Is(err, cli.ErrInvalid) {
				fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
			}
			os.Exit(1)
		}
		return
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context) error {
	dataDir := config.DataDir()

	a, err := cli.NewApp(version, dataDir)
	if err != nil {
		return err
	}

	// the screen belongs to bubbletea; send logs to a file
	if f, err := os.OpenFile(filepath.Join(dataDir, "zfake.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	}

	opts := tui.Options{
		Version: version,
		DataDir: dataDir,
		Config:  a.Config,
		Gen:     a.Gen,
		History: a.History,
		Source:  a.Source(a.Config.SampleX, a.Config.SampleY),
	}
	if a.History != nil {
		events, err := history.Watch(ctx, dataDir)
		if err != nil {
			slog.Warn("watch history", "err", err)
		} else {
			opts.Events = events
		}
	}

	p := tea.NewProgram(tui.New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
