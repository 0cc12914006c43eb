package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/color"
	"github.com/zarlcorp/zfake/internal/sampler"
)

// colorModel converts a typed color and optionally follows a screen pixel.
type colorModel struct {
	input    textinput.Model
	current  color.RGB
	valid    bool
	errMsg   string
	source   sampler.Source
	interval time.Duration
	sampling bool
	// run numbers each sampling session so results from a stopped one are dropped
	run   int
	flash string
}

// sampleTickMsg asks the color view to take a sample.
type sampleTickMsg struct {
	run int
}

// sampledMsg carries the result of one sample.
type sampledMsg struct {
	run   int
	color color.RGB
	err   error
}

func newColorModel(src sampler.Source, interval time.Duration) colorModel {
	if interval <= 0 {
		interval = sampler.DefaultInterval
	}

	ti := textinput.New()
	ti.Placeholder = "#rrggbb or r,g,b"
	ti.CharLimit = 24
	ti.Width = 24
	ti.Prompt = "color: "
	ti.Focus()

	return colorModel{input: ti, source: src, interval: interval}
}

func (m colorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m colorModel) Update(msg tea.Msg) (colorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)

	case sampleTickMsg:
		if !m.sampling || m.source == nil || msg.run != m.run {
			return m, nil
		}
		return m, sampleCmd(m.source, m.run)

	case sampledMsg:
		if !m.sampling || msg.run != m.run {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = "sample: " + msg.err.Error()
		} else if !m.valid || msg.color != m.current {
			m = m.show(msg.color)
			m.input.SetValue(msg.color.Hex())
		}
		return m, sampleAfter(m.interval, m.run)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m colorModel) updateInput(msg tea.KeyMsg) (colorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, zstyle.KeyTab), key.Matches(msg, zstyle.KeyEnter), key.Matches(msg, zstyle.KeyBack):
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m = m.parse()
	return m, cmd
}

func (m colorModel) handleKey(msg tea.KeyMsg) (colorModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyTab) {
		m.sampling = false
		return m, m.input.Focus()
	}

	switch msg.String() {
	case "h":
		return m.copyFormat(m.current.Hex())
	case "r":
		return m.copyFormat(m.current.String())
	case "k":
		return m.copyFormat(m.current.CMYK().String())
	case "s":
		if m.source == nil {
			m.flash = "no sampler configured"
			return m, clearFlashAfter()
		}
		m.sampling = !m.sampling
		if m.sampling {
			m.run++
			return m, sampleCmd(m.source, m.run)
		}
		return m, nil
	}

	return m, nil
}

func (m colorModel) copyFormat(text string) (colorModel, tea.Cmd) {
	if !m.valid {
		return m, nil
	}
	if err := copyToClipboard(text); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = "copied " + text
	return m, clearFlashAfter()
}

// parse converts the input as typed; an empty field is not an error.
func (m colorModel) parse() colorModel {
	v := m.input.Value()
	if v == "" {
		m.valid = false
		m.errMsg = ""
		return m
	}
	c, err := color.Parse(v)
	if err != nil {
		m.valid = false
		m.errMsg = err.Error()
		return m
	}
	return m.show(c)
}

func (m colorModel) show(c color.RGB) colorModel {
	m.current = c
	m.valid = true
	m.errMsg = ""
	return m
}

func sampleCmd(src sampler.Source, run int) tea.Cmd {
	return func() tea.Msg {
		c, err := src.Sample(context.Background())
		return sampledMsg{run: run, color: c, err: err}
	}
}

func sampleAfter(d time.Duration, run int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return sampleTickMsg{run: run}
	})
}

func (m colorModel) View() string {
	s := "\n  " + m.input.View() + "\n\n"

	if m.valid {
		s += "  " + swatch(m.current) + "\n\n"
		s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render("hex "), m.current.Hex())
		s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render("rgb "), m.current.String())
		s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render("cmyk"), m.current.CMYK().String())
	} else {
		s += "\n\n\n\n\n\n"
	}

	s += "\n"
	switch {
	case m.errMsg != "":
		s += "  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	case m.flash != "":
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	case m.sampling:
		s += "  " + zstyle.StatusWarn.Render("sampling") + "\n"
	default:
		s += "\n"
	}

	return s
}

func swatch(c color.RGB) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(swatchForeground(c)).
		Padding(0, 4).
		Render(c.Hex())
}

// swatchForeground picks black or white text by perceptual lightness.
func swatchForeground(c color.RGB) lipgloss.Color {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, _, _ := cc.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
