package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/document"
	"github.com/zarlcorp/zfake/internal/history"
)

// historyModel lists recent values for one kind.
type historyModel struct {
	kind    document.Kind
	entries []history.Entry
	limit   int
	cursor  int
	flash   string
}

// historyKindMsg asks the root to load history for kind.
type historyKindMsg struct {
	kind document.Kind
}

// clearHistoryMsg asks the root to clear history for kind.
type clearHistoryMsg struct {
	kind document.Kind
}

func newHistoryModel(kind document.Kind, entries []history.Entry, limit int) historyModel {
	return historyModel{kind: kind, entries: entries, limit: limit}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m historyModel) handleKey(msg tea.KeyMsg) (historyModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyTab) {
		next := nextKind(m.kind)
		return m, func() tea.Msg { return historyKindMsg{kind: next} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if len(m.entries) == 0 {
			return m, nil
		}
		v := m.entries[m.cursor].Value
		if err := copyToClipboard(v); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied " + v
		return m, clearFlashAfter()
	}

	if msg.String() == "x" {
		k := m.kind
		return m, func() tea.Msg { return clearHistoryMsg{kind: k} }
	}

	return m, nil
}

func nextKind(k document.Kind) document.Kind {
	for i, v := range document.Kinds {
		if v == k {
			return document.Kinds[(i+1)%len(document.Kinds)]
		}
	}
	return document.Kinds[0]
}

func (m historyModel) View() string {
	var tabs []string
	for _, k := range document.Kinds {
		if k == m.kind {
			tabs = append(tabs, zstyle.Highlight.Render(k.Label()))
		} else {
			tabs = append(tabs, zstyle.MutedText.Render(k.Label()))
		}
	}
	s := fmt.Sprintf("\n  %s\n\n", strings.Join(tabs, "  "))

	if len(m.entries) == 0 {
		s += "  " + zstyle.MutedText.Render("nothing generated yet") + "\n"
	}

	for i, e := range m.entries {
		when := zstyle.MutedText.Render(e.CreatedAt.Format("15:04:05"))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s  %s", e.Value, when)) + "\n"
		} else {
			s += fmt.Sprintf("    %s  %s\n", e.Value, when)
		}
	}

	s += "\n  " + zstyle.MutedText.Render(fmt.Sprintf("%d/%d kept", len(m.entries), m.limit)) + "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
