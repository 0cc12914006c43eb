package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/document"
)

type menuChoice int

const (
	menuRG menuChoice = iota
	menuCPF
	menuCNPJ
	menuUUID
	menuColor
	menuValidate
	menuHistory
	menuQuit
)

var menuItems = []string{
	"Generate RG",
	"Generate CPF",
	"Generate CNPJ",
	"Generate UUID",
	"Color converter",
	"Validate document",
	"History",
	"Quit",
}

// quick-generate hotkeys, in menu order
var quickKeys = map[string]document.Kind{
	"1": document.RG,
	"2": document.CPF,
	"3": document.CNPJ,
	"4": document.UUID,
}

// menuModel is the main menu view.
type menuModel struct {
	cursor  int
	version string
	masked  bool
	flash   string
}

// navigateMsg tells the root model to switch views. kind is used by the
// generate view.
type navigateMsg struct {
	view viewID
	kind document.Kind
}

// quickGenerateMsg tells the root to generate, copy and record a value
// without leaving the menu.
type quickGenerateMsg struct {
	kind document.Kind
}

// toggleMaskMsg flips the mask setting.
type toggleMaskMsg struct{}

func newMenuModel(version string, masked bool) menuModel {
	return menuModel{version: version, masked: masked}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}

		if k, ok := quickKeys[msg.String()]; ok {
			return m, func() tea.Msg { return quickGenerateMsg{kind: k} }
		}

		if msg.String() == "*" {
			return m, func() tea.Msg { return toggleMaskMsg{} }
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuRG:
		return navigate(viewGenerate, document.RG)
	case menuCPF:
		return navigate(viewGenerate, document.CPF)
	case menuCNPJ:
		return navigate(viewGenerate, document.CNPJ)
	case menuUUID:
		return navigate(viewGenerate, document.UUID)
	case menuColor:
		return navigate(viewColor, 0)
	case menuValidate:
		return navigate(viewValidate, 0)
	case menuHistory:
		return navigate(viewHistory, 0)
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func navigate(v viewID, k document.Kind) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v, kind: k} }
}

func (m menuModel) View() string {
	title := zstyle.Title.Render("zfake")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n\n", title, ver)

	for i, item := range menuItems {
		hot := " "
		if i < len(quickKeys) {
			hot = fmt.Sprint(i + 1)
		}
		if m.cursor == i {
			s += zstyle.Highlight.Render(fmt.Sprintf("  > %s %s", hot, item)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render(hot), item)
		}
	}

	mask := zstyle.StatusWarn.Render("off")
	if m.masked {
		mask = zstyle.StatusOK.Render("on")
	}
	s += "\n  mask " + mask + "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  1-4 quick copy  * mask  q quit") + "\n\n"
	return s
}
