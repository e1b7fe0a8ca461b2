package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/biollante/internal/form"
	"github.com/muurk/biollante/internal/gaconfig"
	"github.com/muurk/biollante/internal/logging"
)

// Submitter sends a form's configuration without waiting for the answer
type Submitter interface {
	Submit(ctx context.Context, f gaconfig.Form) *gaconfig.Configuration
}

// Options configures the wizard
type Options struct {
	Context   context.Context
	Endpoint  string
	Submitter Submitter
	StartTab  string // Tab id to open on; the first tab when empty or unknown
}

// row is one selectable line of the screen
type row struct {
	panel   *form.Panel
	group   *form.Group
	control *form.Control
}

// AppModel is the form screen: the base panel, the tab strip and the active
// method panel
type AppModel struct {
	Form *form.Form

	// Navigation
	Cursor  int
	Editing bool
	Input   textinput.Model

	// Submission bookkeeping; outcomes are only logged
	Sent     int
	LastSent time.Time

	// UI state
	Width  int
	Height int

	// Help
	Help     help.Model
	Keys     formKeyMap
	EditKeys editKeyMap

	ctx       context.Context
	endpoint  string
	submitter Submitter
}

// NewAppModel creates the form screen over f
func NewAppModel(f *form.Form, opts Options) AppModel {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 30
	input.Prompt = ""

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := AppModel{
		Form:      f,
		Input:     input,
		Help:      help.New(),
		Keys:      newFormKeyMap(),
		EditKeys:  newEditKeyMap(),
		ctx:       ctx,
		endpoint:  opts.Endpoint,
		submitter: opts.Submitter,
	}

	if opts.StartTab != "" && !f.Tabs.Activate(opts.StartTab) {
		f.Tabs.ActivateIndex(0)
	}
	m.Cursor = m.firstPanelRow()
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Editing {
			return m.updateEditor(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles input in normal (not editing) mode
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.NextTab):
		m.Form.Tabs.Next()
		m.Cursor = m.firstPanelRow()

	case key.Matches(msg, m.Keys.PrevTab):
		m.Form.Tabs.Prev()
		m.Cursor = m.firstPanelRow()

	case key.Matches(msg, m.Keys.PickTab):
		if m.Form.Tabs.ActivateIndex(int(msg.String()[0] - '1')) {
			m.Cursor = m.firstPanelRow()
		}

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.rows())-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.Toggle):
		m.toggleCurrent()

	case key.Matches(msg, m.Keys.Edit):
		return m.startEditing()

	case key.Matches(msg, m.Keys.Submit):
		m.submit()

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}

	return m, nil
}

// toggleCurrent flips the checked state of the control under the cursor
func (m *AppModel) toggleCurrent() {
	r, ok := m.current()
	if !ok || r.control.Disabled || !r.control.Kind.Checkable() {
		return
	}
	r.panel.Toggle(r.control)
	logging.Debug("Control toggled",
		zap.String("panel", r.panel.ID),
		zap.String("name", r.control.Name),
		zap.String("value", r.control.Value),
		zap.Bool("checked", r.control.Checked),
	)
}

// startEditing opens the value editor on the control under the cursor
func (m AppModel) startEditing() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok || r.control.Disabled || r.control.Kind.Checkable() || r.control.Kind == form.KindHidden {
		return m, nil
	}

	m.Editing = true
	m.Input.SetValue(r.control.Value)
	m.Input.CursorEnd()
	m.Input.Focus()
	return m, textinput.Blink
}

// updateEditor handles input while a value is being edited
func (m AppModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.EditKeys.Cancel):
		m.Editing = false
		m.Input.Blur()
		return m, nil

	case key.Matches(msg, m.EditKeys.Confirm):
		if r, ok := m.current(); ok {
			r.control.SetValue(m.Input.Value())
			logging.Debug("Control edited",
				zap.String("panel", r.panel.ID),
				zap.String("name", r.control.Name),
				zap.String("value", r.control.Value),
			)
		}
		m.Editing = false
		m.Input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit hands the form to the submitter. Every press sends a new request.
func (m *AppModel) submit() {
	if m.submitter == nil {
		logging.Warn("Submit pressed without an endpoint")
		return
	}
	cfg := m.submitter.Submit(m.ctx, m.Form)
	m.Sent++
	m.LastSent = time.Now()
	logging.Debug("Submission sent", zap.String("summary", cfg.Summary()))
}

// rows lists the selectable lines: base settings, then the active panel
func (m AppModel) rows() []row {
	var rows []row
	for _, p := range []*form.Panel{m.Form.BasePanel, m.Form.Tabs.ActivePanel()} {
		if p == nil {
			continue
		}
		for _, g := range p.Groups {
			for _, c := range g.Controls() {
				rows = append(rows, row{panel: p, group: g, control: c})
			}
		}
	}
	return rows
}

// firstPanelRow returns the index of the active panel's first row
func (m AppModel) firstPanelRow() int {
	n := len(m.Form.BasePanel.Controls())
	if n >= len(m.rows()) {
		return 0
	}
	return n
}

// current returns the row under the cursor
func (m AppModel) current() (row, bool) {
	rows := m.rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.Cursor], true
}

// View renders the form screen
func (m AppModel) View() string {
	if m.Width > 0 && m.Width < MinTerminalWidth {
		return WarningBoxStyle.Render(fmt.Sprintf("Terminal too narrow: %d columns, need %d.\nResize or press q to quit.", m.Width, MinTerminalWidth))
	}

	var helpText string
	if m.Editing {
		helpText = m.Help.View(m.EditKeys)
	} else {
		helpText = m.Help.View(m.Keys)
	}
	return RenderApplicationContainer(m.buildContent(), helpText, m.Width, m.Height)
}

// buildContent builds the form screen content
func (m AppModel) buildContent() string {
	rows := m.rows()
	base := len(m.Form.BasePanel.Controls())

	var top strings.Builder
	top.WriteString(RenderTitle(m.Form.Title))
	top.WriteString("\n")
	top.WriteString(SectionStyle.Render(m.Form.BasePanel.Title))
	top.WriteString("\n")
	for i := 0; i < base; i++ {
		top.WriteString(m.renderRow(rows[i], i == m.Cursor))
		top.WriteString("\n")
	}
	top.WriteString("\n")

	titles := make([]string, 0, len(m.Form.Tabs.Tabs))
	for _, tab := range m.Form.Tabs.Tabs {
		titles = append(titles, tab.Title)
	}
	top.WriteString(RenderTabs(titles, m.Form.Tabs.ActiveIndex()))
	top.WriteString("\n")

	bottom := PreviewStyle.Render(gaconfig.Aggregate(m.Form).Summary()) + "\n" + StatusStyle.Render(m.statusLine())

	var panel strings.Builder
	if p := m.Form.Tabs.ActivePanel(); p != nil && len(p.Groups) == 0 {
		panel.WriteString(StatusStyle.Render("  (no methods in this section)"))
		panel.WriteString("\n")
	}
	start, end := m.panelWindow(len(rows)-base, lipgloss.Height(top.String())+lipgloss.Height(bottom))
	if start > 0 {
		panel.WriteString(StatusStyle.Render("  ↑ more"))
		panel.WriteString("\n")
	}
	for i := base + start; i < base+end; i++ {
		panel.WriteString(m.renderRow(rows[i], i == m.Cursor))
		panel.WriteString("\n")
	}
	if base+end < len(rows) {
		panel.WriteString(StatusStyle.Render("  ↓ more"))
		panel.WriteString("\n")
	}

	return top.String() + "\n" + panel.String() + "\n" + bottom
}

// frameLines is the height of the container frame around the content:
// outer border, header with its rule, footer rule and help line, and the
// blank lines around the panel
const frameLines = 8

// panelWindow returns the range of panel rows that fits the terminal and
// keeps the cursor in view. n is the number of panel rows and used the
// height taken by everything else on screen.
func (m AppModel) panelWindow(n, used int) (int, int) {
	if m.Height <= 0 {
		return 0, n
	}

	// Two lines are kept for the "more" markers
	room := m.Height - frameLines - used - 2
	if room < 3 {
		room = 3
	}
	if n <= room {
		return 0, n
	}

	cursor := m.Cursor - len(m.Form.BasePanel.Controls())
	start := 0
	if cursor >= room {
		start = cursor - room + 1
	}
	if start > n-room {
		start = n - room
	}
	return start, start + room
}

// renderRow renders one control line
func (m AppModel) renderRow(r row, selected bool) string {
	var line string
	c := r.control

	switch {
	case c == r.group.Selector:
		line = RenderSelector(c.Kind == form.KindRadio, c.Checked) + " " + c.Label
	case c.Kind == form.KindCheckbox:
		line = "    " + PadLabel(c.Label) + RenderSelector(false, c.Checked)
	case selected && m.Editing:
		line = "    " + PadLabel(c.Label) + FocusedInputStyle.Render(m.Input.View())
	default:
		line = "    " + PadLabel(c.Label) + c.Value
	}
	if r.group.Selector == nil {
		line = strings.TrimPrefix(line, "    ")
	}

	switch {
	case selected:
		return SelectedRowStyle.Render("→ " + line)
	case c.Disabled:
		return DisabledRowStyle.Render(line)
	default:
		return RowStyle.Render(line)
	}
}

// statusLine shows where submissions go and when the last one was sent
func (m AppModel) statusLine() string {
	endpoint := m.endpoint
	if endpoint == "" {
		endpoint = "(no endpoint)"
	}
	if m.Sent == 0 {
		return "Endpoint: " + endpoint
	}
	return fmt.Sprintf("Endpoint: %s · sent %d, last at %s", endpoint, m.Sent, m.LastSent.Format("15:04:05"))
}

// Run starts the wizard in the alternate screen and blocks until it quits
func Run(f *form.Form, opts Options) error {
	program := tea.NewProgram(NewAppModel(f, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
