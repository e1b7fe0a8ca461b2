package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/biollante/internal/form"
	"github.com/muurk/biollante/internal/gaconfig"
)

type fakeSubmitter struct {
	calls []*gaconfig.Configuration
}

func (s *fakeSubmitter) Submit(_ context.Context, f gaconfig.Form) *gaconfig.Configuration {
	cfg := gaconfig.Aggregate(f)
	s.calls = append(s.calls, cfg)
	return cfg
}

func newTestModel(t *testing.T, opts Options) AppModel {
	t.Helper()
	f, err := form.DefaultLayout().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return NewAppModel(f, opts)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(AppModel); !ok {
			t.Fatalf("Update returned %T, want AppModel", next)
		}
	}
	return m
}

func TestNewAppModel(t *testing.T) {
	m := newTestModel(t, Options{})

	if got := m.Form.Tabs.Active(); got != "tab-selection" {
		t.Errorf("active tab = %q, want tab-selection", got)
	}
	base := len(m.Form.BasePanel.Controls())
	if m.Cursor != base {
		t.Errorf("Cursor = %d, want %d (first method row)", m.Cursor, base)
	}
	if m.Editing {
		t.Error("model should not start in editing mode")
	}
}

func TestNewAppModel_StartTab(t *testing.T) {
	tests := []struct {
		name     string
		startTab string
		want     string
	}{
		{"known tab", "tab-mutation", "tab-mutation"},
		{"unknown tab falls back to first", "tab-bogus", "tab-selection"},
		{"empty", "", "tab-selection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, Options{StartTab: tt.startTab})
			if got := m.Form.Tabs.Active(); got != tt.want {
				t.Errorf("active tab = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{"tab moves forward", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, "tab-replacement"},
		{"shift+tab wraps back", []tea.Msg{tea.KeyMsg{Type: tea.KeyShiftTab}}, "tab-stop-criteria"},
		{"right arrow", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}}, "tab-crossover"},
		{"number picks tab", []tea.Msg{runes("4")}, "tab-mutation"},
		{"tab wraps forward", []tea.Msg{runes("5"), tea.KeyMsg{Type: tea.KeyTab}}, "tab-selection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, Options{})
			m = press(t, m, tt.keys...)

			if got := m.Form.Tabs.Active(); got != tt.want {
				t.Errorf("active tab = %q, want %q", got, tt.want)
			}
			visible := 0
			for _, p := range m.Form.Panels {
				if !p.Hidden {
					visible++
				}
			}
			if visible != 1 {
				t.Errorf("%d panels visible, want 1", visible)
			}
		})
	}
}

func TestUpdate_TabResetsCursor(t *testing.T) {
	m := newTestModel(t, Options{})
	start := m.Cursor

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyTab})
	if m.Cursor != start {
		t.Errorf("Cursor = %d after tab change, want %d", m.Cursor, start)
	}
}

func TestUpdate_CursorBounds(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Cursor = 0

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}

	last := len(m.rows()) - 1
	m.Cursor = last
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != last {
		t.Errorf("Cursor = %d, want %d", m.Cursor, last)
	}
}

func TestUpdate_ToggleEnablesParameters(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, runes("3")) // crossover; cursor on hypercube

	hypercube := m.Form.Panel(gaconfig.SectionCrossover).Group("hypercube")
	if hypercube.Selector.Checked {
		t.Fatal("hypercube should start unchecked")
	}
	for _, dep := range hypercube.Dependents {
		if !dep.Disabled {
			t.Fatalf("%s should start disabled", dep.Name)
		}
	}

	m = press(t, m, runes("x"))

	if !hypercube.Selector.Checked {
		t.Error("hypercube should be checked after toggle")
	}
	for _, dep := range hypercube.Dependents {
		if dep.Disabled {
			t.Errorf("%s still disabled after toggle", dep.Name)
		}
	}

	got := gaconfig.Aggregate(m.Form).Crossover
	var names []string
	for _, c := range got {
		names = append(names, c.Method)
	}
	if diff := cmp.Diff([]string{"hypercube", "uniform"}, names); diff != "" {
		t.Errorf("crossover methods mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_ToggleIgnoresDisabledRows(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, runes("4")) // mutation

	gauss := m.Form.Panel(gaconfig.SectionMutation).Group("gauss")
	for i, r := range m.rows() {
		if r.control == gauss.Dependents[0] {
			m.Cursor = i
		}
	}

	m = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Editing {
		t.Error("enter on a disabled row should not start editing")
	}
	if gauss.Selector.Checked {
		t.Error("toggle on a dependent should not check its method")
	}
}

func TestUpdate_EditValue(t *testing.T) {
	m := newTestModel(t, Options{})
	tSize := m.Form.Panel(gaconfig.SectionSelection).Group("tournament").Dependent("tSize")
	for i, r := range m.rows() {
		if r.control == tSize {
			m.Cursor = i
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Editing {
		t.Fatal("enter should start editing")
	}
	if got := m.Input.Value(); got != "3" {
		t.Errorf("editor value = %q, want current value 3", got)
	}

	// Keys go to the editor, not the form
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("q5"))
	if !m.Editing {
		t.Fatal("typing q while editing should not leave the editor")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Editing {
		t.Error("enter should close the editor")
	}
	if tSize.Value != "q5" {
		t.Errorf("tSize = %q, want q5", tSize.Value)
	}
}

func TestUpdate_EditCancel(t *testing.T) {
	m := newTestModel(t, Options{})
	popSize := m.Form.BasePanel.Control("popSize")
	for i, r := range m.rows() {
		if r.control == popSize {
			m.Cursor = i
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("0"), tea.KeyMsg{Type: tea.KeyEsc})

	if m.Editing {
		t.Error("esc should close the editor")
	}
	if popSize.Value != "75" {
		t.Errorf("popSize = %q, want unchanged 75", popSize.Value)
	}
}

func TestUpdate_Submit(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(t, Options{Submitter: sub, Endpoint: "http://localhost:8000/interactive/abc/"})

	m = press(t, m, runes("s"), runes("s"))

	if len(sub.calls) != 2 {
		t.Fatalf("Submit called %d times, want 2", len(sub.calls))
	}
	if m.Sent != 2 {
		t.Errorf("Sent = %d, want 2", m.Sent)
	}
	if m.LastSent.IsZero() {
		t.Error("LastSent not recorded")
	}
	if got := sub.calls[0].Selection.Method; got != "tournament" {
		t.Errorf("submitted selection = %q, want tournament", got)
	}
	if !strings.Contains(m.statusLine(), "sent 2") {
		t.Errorf("status line %q does not report submissions", m.statusLine())
	}
}

func TestUpdate_SubmitWithoutSubmitter(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, runes("s"))

	if m.Sent != 0 {
		t.Errorf("Sent = %d, want 0", m.Sent)
	}
}

func TestUpdate_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t, Options{})
			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command produced %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.Width != 100 || m.Height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.Width, m.Height)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, Options{Endpoint: "http://localhost:8000/interactive/abc/"})
	view := m.View()

	for _, want := range []string{
		"Classifier Optimization",
		"Base Settings",
		"Tournament",
		"selection=tournament",
		"Endpoint: http://localhost:8000/interactive/abc/",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(view, "Hypercube") {
		t.Error("View() shows a hidden panel")
	}
}

func TestView_NarrowTerminal(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	if view := m.View(); !strings.Contains(view, "Terminal too narrow") {
		t.Errorf("View() = %q, want narrow-terminal warning", view)
	}
}

func TestView_ScrollsPanelRows(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(t, m, runes("3"), tea.WindowSizeMsg{Width: 100, Height: 30})

	rows := m.rows()
	last := rows[len(rows)-1].control
	if view := m.View(); !strings.Contains(view, "↓ more") {
		t.Fatalf("expected a scroll marker on a short terminal:\n%s", view)
	}

	m.Cursor = len(rows) - 1
	view := m.View()
	if !strings.Contains(view, "↑ more") {
		t.Errorf("expected an upward scroll marker with the cursor on the last row:\n%s", view)
	}
	if !strings.Contains(view, last.Label) {
		t.Errorf("cursor row %q not in view:\n%s", last.Label, view)
	}
}

func TestPanelWindow(t *testing.T) {
	m := newTestModel(t, Options{})
	base := len(m.Form.BasePanel.Controls())

	tests := []struct {
		name               string
		height             int
		cursor             int
		n, used            int
		wantStart, wantEnd int
	}{
		{"unknown height shows all", 0, 0, 20, 10, 0, 20},
		{"everything fits", 60, 0, 10, 10, 0, 10},
		{"cursor at top", 30, 0, 20, 10, 0, 10},
		{"cursor past window", 30, 15, 20, 10, 6, 16},
		{"cursor on last row", 30, 19, 20, 10, 10, 20},
		{"tiny terminal keeps three rows", 5, 0, 20, 10, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Height = tt.height
			m.Cursor = base + tt.cursor
			start, end := m.panelWindow(tt.n, tt.used)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("panelWindow() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
