package tui

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zfake/internal/clipboard"
	"github.com/zarlcorp/zfake/internal/color"
	"github.com/zarlcorp/zfake/internal/document"
	"github.com/zarlcorp/zfake/internal/history"
	"github.com/zarlcorp/zfake/internal/sampler"
)

func TestMain(m *testing.M) {
	flashDuration = time.Millisecond
	os.Exit(m.Run())
}

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// stubClipboard records copied text for the duration of the test.
func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var got []string
	restore := clipboard.Stub(func(s string) error {
		got = append(got, s)
		return nil
	})
	t.Cleanup(restore)
	return &got
}

func typeText[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, s string) M {
	for _, r := range s {
		m, _ = m.Update(keyMsg(r))
	}
	return m
}

// menu view tests

func TestMenuViewShowsItems(t *testing.T) {
	m := newMenuModel("1.0", true)
	view := m.View()

	for _, item := range menuItems {
		if !strings.Contains(view, item) {
			t.Errorf("menu should contain %q", item)
		}
	}
	if !strings.Contains(view, "1.0") {
		t.Error("menu should show version")
	}
	if !strings.Contains(view, "mask") {
		t.Error("menu should show mask state")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newMenuModel("1.0", false)

	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// don't go below 0
	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}

	for range menuItems {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want %d (clamped)", m.cursor, len(menuItems)-1)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		cursor int
		view   viewID
		kind   document.Kind
	}{
		{0, viewGenerate, document.RG},
		{1, viewGenerate, document.CPF},
		{2, viewGenerate, document.CNPJ},
		{3, viewGenerate, document.UUID},
		{4, viewColor, 0},
		{5, viewValidate, 0},
		{6, viewHistory, 0},
	}

	for _, tt := range tests {
		t.Run(menuItems[tt.cursor], func(t *testing.T) {
			m := newMenuModel("1.0", false)
			m.cursor = tt.cursor

			_, cmd := m.Update(enterKey())
			if cmd == nil {
				t.Fatal("enter should produce command")
			}
			nav, ok := cmd().(navigateMsg)
			if !ok {
				t.Fatal("should emit navigateMsg")
			}
			if nav.view != tt.view || nav.kind != tt.kind {
				t.Errorf("got %+v, want view %d kind %s", nav, tt.view, tt.kind)
			}
		})
	}
}

func TestMenuQuickKeys(t *testing.T) {
	tests := []struct {
		key  rune
		kind document.Kind
	}{
		{'1', document.RG},
		{'2', document.CPF},
		{'3', document.CNPJ},
		{'4', document.UUID},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			m := newMenuModel("1.0", false)
			_, cmd := m.Update(keyMsg(tt.key))
			if cmd == nil {
				t.Fatal("hotkey should produce command")
			}
			msg, ok := cmd().(quickGenerateMsg)
			if !ok {
				t.Fatal("should emit quickGenerateMsg")
			}
			if msg.kind != tt.kind {
				t.Errorf("kind = %s, want %s", msg.kind, tt.kind)
			}
		})
	}
}

func TestMenuMaskToggleKey(t *testing.T) {
	m := newMenuModel("1.0", false)
	_, cmd := m.Update(keyMsg('*'))
	if cmd == nil {
		t.Fatal("* should produce command")
	}
	if _, ok := cmd().(toggleMaskMsg); !ok {
		t.Error("should emit toggleMaskMsg")
	}
}

func TestMenuQuit(t *testing.T) {
	m := newMenuModel("1.0", false)
	m.cursor = int(menuQuit)
	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("quit should produce command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("should emit tea.QuitMsg")
	}
}

// generate view tests

func TestGenerateCopy(t *testing.T) {
	copied := stubClipboard(t)
	m := newGenerateModel(document.CPF, "529.982.247-25")

	m, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Error("copy should schedule flash clear")
	}
	if len(*copied) != 1 || (*copied)[0] != "529.982.247-25" {
		t.Errorf("copied = %v", *copied)
	}
	if !strings.Contains(m.View(), "copied!") {
		t.Error("view should show copy flash")
	}

	m, _ = m.Update(flashMsg{})
	if m.flash != "" {
		t.Error("flashMsg should clear flash")
	}
}

func TestGenerateKeys(t *testing.T) {
	m := newGenerateModel(document.RG, "12.345.678-2")

	_, cmd := m.Update(keyMsg('n'))
	if _, ok := cmd().(regenerateMsg); !ok {
		t.Error("n should emit regenerateMsg")
	}

	_, cmd = m.Update(keyMsg('m'))
	if _, ok := cmd().(toggleMaskMsg); !ok {
		t.Error("m should emit toggleMaskMsg")
	}

	_, cmd = m.Update(escKey())
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.view != viewMenu {
		t.Error("esc should navigate to menu")
	}
}

func TestGenerateReformat(t *testing.T) {
	tests := []struct {
		name   string
		kind   document.Kind
		value  string
		masked bool
		want   string
	}{
		{"unmask cpf", document.CPF, "529.982.247-25", false, "52998224725"},
		{"mask cpf", document.CPF, "52998224725", true, "529.982.247-25"},
		{"mask cnpj", document.CNPJ, "11222333000181", true, "11.222.333/0001-81"},
		{"mask rg", document.RG, "123456782", true, "12.345.678-2"},
		{"uuid untouched", document.UUID, "2b1e0f5c-6a57-4a8e-9f0e-2d9b1c7a3e41", false, "2b1e0f5c-6a57-4a8e-9f0e-2d9b1c7a3e41"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newGenerateModel(tt.kind, tt.value).reformat(tt.masked)
			if got.value != tt.want {
				t.Errorf("reformat = %q, want %q", got.value, tt.want)
			}
		})
	}
}

// color view tests

func TestColorLiveConversion(t *testing.T) {
	m := newColorModel(nil, 0)
	m = typeText(m, "#ff0000")

	if !m.valid {
		t.Fatalf("input %q should parse", m.input.Value())
	}
	view := m.View()
	for _, want := range []string{"#ff0000", "rgb(255, 0, 0)", "0%, 100%, 100%, 0%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestColorInvalidInput(t *testing.T) {
	m := newColorModel(nil, 0)
	m = typeText(m, "#ff00")

	if m.valid {
		t.Error("partial hex should not be valid")
	}
	if m.errMsg == "" {
		t.Error("partial hex should show an error")
	}
}

func TestColorCopyFormats(t *testing.T) {
	copied := stubClipboard(t)
	m := newColorModel(nil, 0)
	m = typeText(m, "0,255,0")

	m, _ = m.Update(specialKey(tea.KeyTab))
	if m.input.Focused() {
		t.Fatal("tab should leave the input")
	}

	m, _ = m.Update(keyMsg('h'))
	m, _ = m.Update(keyMsg('r'))
	m, _ = m.Update(keyMsg('k'))

	want := []string{"#00ff00", "rgb(0, 255, 0)", "100%, 0%, 100%, 0%"}
	if strings.Join(*copied, "|") != strings.Join(want, "|") {
		t.Errorf("copied = %v, want %v", *copied, want)
	}
}

func TestColorCopyIgnoredWithoutColor(t *testing.T) {
	copied := stubClipboard(t)
	m := newColorModel(nil, 0)
	m, _ = m.Update(specialKey(tea.KeyTab))
	m, _ = m.Update(keyMsg('h'))
	if len(*copied) != 0 {
		t.Errorf("nothing should be copied, got %v", *copied)
	}
}

func TestColorSampling(t *testing.T) {
	want := color.RGB{R: 0x11, G: 0x22, B: 0x33}
	src := sampler.SourceFunc(func(context.Context) (color.RGB, error) {
		return want, nil
	})

	m := newColorModel(src, 0)
	m, _ = m.Update(specialKey(tea.KeyTab))
	m, cmd := m.Update(keyMsg('s'))
	if !m.sampling {
		t.Fatal("s should start sampling")
	}
	if cmd == nil {
		t.Fatal("starting should sample immediately")
	}

	msg := cmd()
	got, ok := msg.(sampledMsg)
	if !ok {
		t.Fatalf("got %T, want sampledMsg", msg)
	}

	m, cmd = m.Update(got)
	if m.current != want || m.input.Value() != "#112233" {
		t.Errorf("current = %v input = %q", m.current, m.input.Value())
	}
	if cmd == nil {
		t.Error("sampling should schedule the next tick")
	}

	// stopping ignores late results
	m, _ = m.Update(keyMsg('s'))
	m, cmd = m.Update(sampledMsg{color: color.RGB{R: 1}})
	if m.current != want || cmd != nil {
		t.Error("results after stop should be ignored")
	}
}

func TestColorSamplingRestartDropsStaleRun(t *testing.T) {
	src := sampler.SourceFunc(func(context.Context) (color.RGB, error) {
		return color.RGB{R: 0xaa}, nil
	})

	m := newColorModel(src, 0)
	m, _ = m.Update(specialKey(tea.KeyTab))
	m, first := m.Update(keyMsg('s'))
	m, _ = m.Update(keyMsg('s'))
	m, second := m.Update(keyMsg('s'))
	if !m.sampling {
		t.Fatal("third s should resume sampling")
	}

	stale := first()
	m, cmd := m.Update(stale)
	if cmd != nil {
		t.Error("a result from the stopped run should not schedule a tick")
	}
	if m.valid {
		t.Error("a result from the stopped run should not be shown")
	}

	m, cmd = m.Update(sampleTickMsg{run: stale.(sampledMsg).run})
	if cmd != nil {
		t.Error("a tick from the stopped run should not sample")
	}

	m, cmd = m.Update(second())
	if cmd == nil {
		t.Error("the current run should keep ticking")
	}
	if m.current.Hex() != "#aa0000" {
		t.Errorf("current = %s, want #aa0000", m.current.Hex())
	}
}

func TestColorSamplingWithoutSource(t *testing.T) {
	m := newColorModel(nil, 0)
	m, _ = m.Update(specialKey(tea.KeyTab))
	m, _ = m.Update(keyMsg('s'))
	if m.sampling {
		t.Error("sampling without a source should stay off")
	}
	if !strings.Contains(m.View(), "no sampler") {
		t.Error("view should explain missing sampler")
	}
}

func TestSwatchForeground(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGB
		want string
	}{
		{"white bg", color.RGB{R: 255, G: 255, B: 255}, "#000000"},
		{"yellow bg", color.RGB{R: 255, G: 255, B: 0}, "#000000"},
		{"black bg", color.RGB{}, "#ffffff"},
		{"navy bg", color.RGB{B: 128}, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(swatchForeground(tt.c)); got != tt.want {
				t.Errorf("swatchForeground(%v) = %s, want %s", tt.c, got, tt.want)
			}
		})
	}
}

// validate view tests

func TestValidateView(t *testing.T) {
	tests := []struct {
		name    string
		tabs    int
		input   string
		checked bool
		valid   bool
		err     bool
	}{
		{"valid cpf", 0, "529.982.247-25", true, true, false},
		{"invalid cpf", 0, "529.982.247-24", true, false, false},
		{"valid cnpj", 1, "11.222.333/0001-81", true, true, false},
		{"valid rg", 2, "12.345.678-2", true, true, false},
		{"short cpf", 0, "123", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newValidateModel()
			for range tt.tabs {
				m, _ = m.Update(specialKey(tea.KeyTab))
			}
			m = typeText(m, tt.input)
			m, _ = m.Update(enterKey())

			if m.checked != tt.checked || m.valid != tt.valid {
				t.Errorf("checked=%v valid=%v, want %v %v", m.checked, m.valid, tt.checked, tt.valid)
			}
			if (m.errMsg != "") != tt.err {
				t.Errorf("errMsg = %q", m.errMsg)
			}
		})
	}
}

func TestValidateTabCyclesKinds(t *testing.T) {
	m := newValidateModel()
	var seen []document.Kind
	for range len(checkedKinds) + 1 {
		seen = append(seen, m.kind())
		m, _ = m.Update(specialKey(tea.KeyTab))
	}
	want := []document.Kind{document.CPF, document.CNPJ, document.RG, document.CPF}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("kind %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestValidateEditClearsResult(t *testing.T) {
	m := newValidateModel()
	m = typeText(m, "529.982.247-25")
	m, _ = m.Update(enterKey())
	m, _ = m.Update(keyMsg('9'))
	if m.checked {
		t.Error("typing should clear the previous result")
	}
}

// history view tests

func testEntries() []history.Entry {
	return []history.Entry{
		{Kind: document.CPF, Value: "529.982.247-25"},
		{Kind: document.CPF, Value: "111.444.777-35"},
	}
}

func TestHistoryView(t *testing.T) {
	m := newHistoryModel(document.CPF, testEntries(), 10)
	view := m.View()

	for _, e := range testEntries() {
		if !strings.Contains(view, e.Value) {
			t.Errorf("view should contain %q", e.Value)
		}
	}
	if !strings.Contains(view, "2/10") {
		t.Error("view should show kept count")
	}

	empty := newHistoryModel(document.RG, nil, 10).View()
	if !strings.Contains(empty, "nothing generated yet") {
		t.Error("empty view should say so")
	}
}

func TestHistoryCopySelected(t *testing.T) {
	copied := stubClipboard(t)
	m := newHistoryModel(document.CPF, testEntries(), 10)

	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(enterKey())

	if len(*copied) != 1 || (*copied)[0] != "111.444.777-35" {
		t.Errorf("copied = %v", *copied)
	}
}

func TestHistoryKeys(t *testing.T) {
	m := newHistoryModel(document.CPF, testEntries(), 10)

	_, cmd := m.Update(specialKey(tea.KeyTab))
	km, ok := cmd().(historyKindMsg)
	if !ok || km.kind != document.CNPJ {
		t.Errorf("tab should request next kind, got %+v", km)
	}

	_, cmd = m.Update(keyMsg('x'))
	cm, ok := cmd().(clearHistoryMsg)
	if !ok || cm.kind != document.CPF {
		t.Errorf("x should request clear, got %+v", cm)
	}
}

func TestNextKindWraps(t *testing.T) {
	k := document.Kinds[0]
	for range document.Kinds {
		k = nextKind(k)
	}
	if k != document.Kinds[0] {
		t.Errorf("cycling all kinds should return to %s, got %s", document.Kinds[0], k)
	}
}

func TestWaitForHistory(t *testing.T) {
	if waitForHistory(nil) != nil {
		t.Error("nil channel should give nil command")
	}

	ch := make(chan document.Kind, 1)
	ch <- document.RG
	msg := waitForHistory(ch)()
	if got, ok := msg.(historyChangedMsg); !ok || got.kind != document.RG {
		t.Errorf("got %#v, want historyChangedMsg{rg}", msg)
	}

	close(ch)
	if msg := waitForHistory(ch)(); msg != nil {
		t.Errorf("closed channel should yield nil, got %#v", msg)
	}
}

var cpfMasked = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
