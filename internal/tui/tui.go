// Package tui implements the root Bubble Tea model for zfake.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/document"
	"github.com/zarlcorp/zfake/internal/history"
	"github.com/zarlcorp/zfake/internal/sampler"
)

type viewID int

const (
	viewMenu viewID = iota
	viewGenerate
	viewColor
	viewValidate
	viewHistory
)

// Options configures the root model.
type Options struct {
	Version string
	// DataDir is where config changes are saved; empty disables saving.
	DataDir string
	Config  config.Config
	Gen     *document.Generator
	// History may be nil.
	History *history.Store
	// Source enables live sampling in the color view when non-nil.
	Source sampler.Source
	// Events delivers history changes made by other processes.
	Events <-chan document.Kind
}

// Model is the root TUI model.
type Model struct {
	version string
	dataDir string
	cfg     config.Config
	gen     *document.Generator
	store   *history.Store
	source  sampler.Source
	events  <-chan document.Kind

	active   viewID
	menu     menuModel
	generate generateModel
	color    colorModel
	validate validateModel
	history  historyModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(opts Options) Model {
	gen := opts.Gen
	if gen == nil {
		gen = document.New()
	}
	return Model{
		version: opts.Version,
		dataDir: opts.DataDir,
		cfg:     opts.Config,
		gen:     gen,
		store:   opts.History,
		source:  opts.Source,
		events:  opts.Events,
		active:  viewMenu,
		menu:    newMenuModel(opts.Version, opts.Config.Masked),
		history: newHistoryModel(document.Kinds[0], nil, opts.Config.HistorySize),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForHistory(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg)

	case quickGenerateMsg:
		return m.handleQuickGenerate(msg.kind)

	case toggleMaskMsg:
		return m.handleToggleMask()

	case regenerateMsg:
		return m.handleRegenerate()

	case historyKindMsg:
		m.history = m.loadHistory(msg.kind, m.history.cursor)
		return m, nil

	case clearHistoryMsg:
		return m.handleClearHistory(msg.kind)

	case historyChangedMsg:
		if m.active == viewHistory && m.history.kind == msg.kind {
			m.history = m.loadHistory(msg.kind, m.history.cursor)
		}
		return m, waitForHistory(m.events)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	if m.active == viewMenu {
		return m.menu.View()
	}

	// all other views: header + separator + content + footer
	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewColor:
		content = m.color.View()
	case viewValidate:
		content = m.validate.View()
	case viewHistory:
		content = m.history.View()
	}

	header := renderHeader(viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func renderHeader(title string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		zstyle.Title.Render("zfake"),
		zstyle.MutedText.Render(" / "),
		zstyle.Subtitle.Render(title),
	)
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate"
	case viewColor:
		return "Color"
	case viewValidate:
		return "Validate"
	case viewHistory:
		return "History"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy"},
			{Key: "n", Desc: "new"},
			{Key: "m", Desc: "mask"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewColor:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "edit"},
			{Key: "h/r/k", Desc: "copy hex/rgb/cmyk"},
			{Key: "s", Desc: "sample"},
			{Key: "esc", Desc: "back"},
		}
	case viewValidate:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "kind"},
			{Key: "enter", Desc: "check"},
			{Key: "esc", Desc: "back"},
		}
	case viewHistory:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "kind"},
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy"},
			{Key: "x", Desc: "clear"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewColor:
		m.color, cmd = m.color.Update(msg)
	case viewValidate:
		m.validate, cmd = m.validate.Update(msg)
	case viewHistory:
		m.history, cmd = m.history.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	switch msg.view {
	case viewMenu:
		m.menu = newMenuModel(m.version, m.cfg.Masked)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		v, err := m.produce(msg.kind)
		if err != nil {
			m.menu.flash = "generate: " + err.Error()
			return m, clearFlashAfter()
		}
		m.generate = newGenerateModel(msg.kind, v)
		m.active = viewGenerate
		return m, tea.ClearScreen

	case viewColor:
		m.color = newColorModel(m.source, m.cfg.SampleInterval)
		m.active = viewColor
		return m, tea.Batch(tea.ClearScreen, m.color.Init())

	case viewValidate:
		m.validate = newValidateModel()
		m.active = viewValidate
		return m, tea.Batch(tea.ClearScreen, m.validate.Init())

	case viewHistory:
		m.history = m.loadHistory(m.history.kind, 0)
		m.active = viewHistory
		return m, tea.ClearScreen
	}

	return m, nil
}

// produce generates one value of kind using the current settings and
// records it in history.
func (m Model) produce(kind document.Kind) (string, error) {
	v, err := m.gen.Generate(kind, m.options())
	if err != nil {
		return "", err
	}
	if m.store != nil {
		if err := m.store.Add(kind, v); err != nil {
			slog.Warn("record history", "kind", kind.String(), "err", err)
		}
	}
	return v, nil
}

func (m Model) options() document.Options {
	return document.Options{
		Masked: m.cfg.Masked,
		UUID:   document.UUIDFormat{Upper: m.cfg.UUIDUpper, Compact: m.cfg.UUIDCompact},
	}
}

func (m Model) handleQuickGenerate(kind document.Kind) (tea.Model, tea.Cmd) {
	v, err := m.produce(kind)
	if err != nil {
		m.menu.flash = "generate: " + err.Error()
		return m, clearFlashAfter()
	}
	if err := copyToClipboard(v); err != nil {
		m.menu.flash = v + "  (copy: " + err.Error() + ")"
		return m, clearFlashAfter()
	}
	m.menu.flash = "copied " + v
	return m, clearFlashAfter()
}

func (m Model) handleRegenerate() (tea.Model, tea.Cmd) {
	v, err := m.produce(m.generate.kind)
	if err != nil {
		m.generate.flash = "generate: " + err.Error()
		return m, clearFlashAfter()
	}
	m.generate = newGenerateModel(m.generate.kind, v)
	return m, nil
}

// handleToggleMask flips the mask setting, persists it and reformats
// the value on screen.
func (m Model) handleToggleMask() (tea.Model, tea.Cmd) {
	m.cfg.Masked = !m.cfg.Masked
	m.menu.masked = m.cfg.Masked

	flash := "mask off"
	if m.cfg.Masked {
		flash = "mask on"
	}

	if m.dataDir != "" {
		if err := config.Save(config.Path(m.dataDir), m.cfg); err != nil {
			flash = "save: " + err.Error()
		}
	}

	if m.active == viewGenerate {
		m.generate = m.generate.reformat(m.cfg.Masked)
		m.generate.flash = flash
		return m, clearFlashAfter()
	}

	m.menu.flash = flash
	return m, clearFlashAfter()
}

func (m Model) loadHistory(kind document.Kind, cursor int) historyModel {
	if m.store == nil {
		hm := newHistoryModel(kind, nil, m.cfg.HistorySize)
		hm.flash = "history unavailable"
		return hm
	}

	entries, err := m.store.List(kind)
	if err != nil {
		hm := newHistoryModel(kind, nil, m.store.Limit())
		hm.flash = "load: " + err.Error()
		return hm
	}

	hm := newHistoryModel(kind, entries, m.store.Limit())
	hm.cursor = min(cursor, max(len(entries)-1, 0))
	return hm
}

func (m Model) handleClearHistory(kind document.Kind) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	if err := m.store.Clear(kind); err != nil {
		m.history.flash = "clear: " + err.Error()
		return m, clearFlashAfter()
	}
	m.history = m.loadHistory(kind, 0)
	m.history.flash = "cleared"
	return m, clearFlashAfter()
}

// Masked reports the current mask setting.
func (m Model) Masked() bool { return m.cfg.Masked }

// historyChangedMsg reports a history file change from the watcher.
type historyChangedMsg struct {
	kind document.Kind
}

func waitForHistory(ch <-chan document.Kind) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		k, ok := <-ch
		if !ok {
			return nil
		}
		return historyChangedMsg{kind: k}
	}
}
