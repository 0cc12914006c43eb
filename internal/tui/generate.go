package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/document"
)

// generateModel displays one generated value with actions.
type generateModel struct {
	kind  document.Kind
	value string
	flash string
}

// regenerateMsg requests a fresh value of the current kind.
type regenerateMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(kind document.Kind, value string) generateModel {
	return generateModel{kind: kind, value: value}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if err := copyToClipboard(m.value); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied!"), clearFlashAfter()
	}

	switch msg.String() {
	case "n":
		return m, func() tea.Msg { return regenerateMsg{} }
	case "m":
		return m, func() tea.Msg { return toggleMaskMsg{} }
	}

	return m, nil
}

// reformat re-renders the current value with or without separators.
// UUIDs are left alone.
func (m generateModel) reformat(masked bool) generateModel {
	if !m.kind.HasCheckDigits() {
		return m
	}
	digits := document.Unmask(m.value)
	if !masked {
		m.value = digits
		return m
	}
	if v, err := document.Mask(m.kind, digits); err == nil {
		m.value = v
	}
	return m
}

func (m generateModel) setFlash(msg string) generateModel {
	m.flash = msg
	return m
}

// flashDuration is how long status messages stay on screen.
var flashDuration = time.Second

func clearFlashAfter() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m generateModel) View() string {
	title := zstyle.Title.Render("generated " + m.kind.Label())
	s := fmt.Sprintf("\n  %s\n\n", title)

	label := zstyle.MutedText.Render(fmt.Sprintf("%-6s", m.kind.String()))
	s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, m.value)) + "\n"

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
