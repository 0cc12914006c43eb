package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/document"
)

// kinds that carry check digits, in tab order
var checkedKinds = []document.Kind{document.CPF, document.CNPJ, document.RG}

// validateModel checks a typed document number.
type validateModel struct {
	input   textinput.Model
	kindIdx int
	checked bool
	valid   bool
	errMsg  string
}

func newValidateModel() validateModel {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	m := validateModel{input: ti}
	m.input.Placeholder = m.kind().Label() + " number"
	return m
}

func (m validateModel) kind() document.Kind {
	return checkedKinds[m.kindIdx]
}

func (m validateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m validateModel) Update(msg tea.Msg) (validateModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyTab) {
			m.kindIdx = (m.kindIdx + 1) % len(checkedKinds)
			m.input.Placeholder = m.kind().Label() + " number"
			m.checked = false
			m.errMsg = ""
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.check(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.checked = false
		m.errMsg = ""
	}
	return m, cmd
}

func (m validateModel) check() validateModel {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m
	}

	ok, err := document.Validate(m.kind(), v)
	if err != nil {
		m.checked = false
		m.errMsg = err.Error()
		return m
	}
	m.checked = true
	m.valid = ok
	m.errMsg = ""
	return m
}

func (m validateModel) View() string {
	var tabs []string
	for i, k := range checkedKinds {
		if i == m.kindIdx {
			tabs = append(tabs, zstyle.Highlight.Render(k.Label()))
		} else {
			tabs = append(tabs, zstyle.MutedText.Render(k.Label()))
		}
	}

	s := fmt.Sprintf("\n  %s\n\n", strings.Join(tabs, "  "))
	s += "  " + m.input.View() + "\n\n"

	switch {
	case m.errMsg != "":
		s += "  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	case m.checked && m.valid:
		s += "  " + zstyle.StatusOK.Render("valid") + "\n"
	case m.checked:
		s += "  " + zstyle.StatusErr.Render("invalid") + "\n"
	default:
		s += "\n"
	}

	return s
}
