package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"filesort/internal/category"
	"filesort/internal/config"
	"filesort/internal/logging"
	"filesort/internal/notifications"
	"filesort/internal/organizer"
)

const gridColumns = 3

// Options configures the interactive shell.
type Options struct {
	Organizer *organizer.Organizer
	// Activity receives organizer log records; the pane shows its lines.
	Activity *logging.ActivityLog
	// Directory pre-fills the directory field.
	Directory string
	// Selected pre-checks categories by name.
	Selected []string
}

type organizeDoneMsg struct {
	result organizer.Result
	err    error
}

// Model is the bubbletea model behind `filesort ui`.
type Model struct {
	ctx      context.Context
	org      *organizer.Organizer
	table    *category.Table
	activity *logging.ActivityLog

	input    textinput.Model
	names    []string
	checked  []bool
	viewport viewport.Model

	// focus 0 is the directory field, 1..len(names) the categories, and
	// len(names)+1 the organize button.
	focus   int
	running bool
	notice  *notifications.Notice
	lines   []string
	seq     uint64
}

// New builds the shell model.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	activity := opts.Activity
	if activity == nil {
		activity = logging.NewActivityLog(0)
	}
	table := category.Default()
	if opts.Organizer != nil {
		table = opts.Organizer.Table()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/folder"
	ti.Prompt = "Folder: "
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Cursor.Style = focusedStyle
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle
	ti.SetValue(opts.Directory)
	ti.Focus()

	names := table.Names()
	checked := make([]bool, len(names))
	if len(opts.Selected) > 0 {
		if sel, err := category.NewSelection(table, opts.Selected...); err == nil {
			for i, name := range names {
				checked[i] = sel.Contains(name)
			}
		}
	}

	m := &Model{
		ctx:      ctx,
		org:      opts.Organizer,
		table:    table,
		activity: activity,
		input:    ti,
		names:    names,
		checked:  checked,
		viewport: viewport.New(76, 10),
	}
	activity.Printf("Ready")
	m.syncLog()
	return m
}

// Run starts the shell and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-(len(m.names)/gridColumns)-14, 3)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-4, 10)
		return m, nil

	case organizeDoneMsg:
		m.running = false
		notice := notifications.FromOutcome(notifications.Outcome{
			Moved:   msg.result.Moved(),
			Skipped: len(msg.result.Skipped),
			DryRun:  msg.result.DryRun,
			Err:     msg.err,
		})
		m.notice = &notice
		m.syncLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+o":
			return m, m.startOrganize()
		case "ctrl+a":
			m.toggleAll()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "right":
			if m.categoryIndex() >= 0 {
				return m, m.moveFocus(1)
			}
		case "left":
			if m.categoryIndex() >= 0 {
				return m, m.moveFocus(-1)
			}
		case "enter":
			switch {
			case m.focus == 0:
				m.selectFolder()
				return m, m.moveFocus(1)
			case m.categoryIndex() >= 0:
				m.toggle(m.categoryIndex())
				return m, nil
			default:
				return m, m.startOrganize()
			}
		case " ", "space":
			if idx := m.categoryIndex(); idx >= 0 {
				m.toggle(idx)
				return m, nil
			}
		}
	}

	if m.focus == 0 {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("filesort"))
	b.WriteString("\n\n ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	var rows []string
	var row []string
	for i, name := range m.names {
		box := "[ ]"
		style := blurredStyle
		if m.checked[i] {
			box = "[x]"
			style = checkedStyle
		}
		if m.focus == i+1 {
			style = focusedStyle
		}
		row = append(row, cellStyle.Render(style.Render(box+" "+name)))
		if len(row) == gridColumns || i == len(m.names)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n ")

	switch {
	case m.running:
		b.WriteString(blurredStyle.Render("[ Organizing... ]"))
	case m.focus == len(m.names)+1:
		b.WriteString(focusedButton)
	default:
		b.WriteString(blurredButton)
	}
	b.WriteString("\n")

	if m.notice != nil {
		b.WriteString("\n ")
		b.WriteString(renderNotice(*m.notice))
		b.WriteString("\n")
	}

	b.WriteString(paneStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" tab/arrows: navigate • space: toggle • ctrl+a: all • enter/ctrl+o: organize • pgup/pgdn: scroll log • esc: quit"))
	return b.String()
}

func renderNotice(n notifications.Notice) string {
	switch n.Kind {
	case notifications.KindSuccess:
		return successStyle.Render("✓ " + n.Message)
	case notifications.KindWarning:
		return warningStyle.Render("! " + n.Message)
	default:
		return errorStyle.Render("✗ " + n.Message)
	}
}

// Checked returns the names of the checked categories in table order.
func (m *Model) Checked() []string {
	var out []string
	for i, name := range m.names {
		if m.checked[i] {
			out = append(out, name)
		}
	}
	return out
}

// Notice returns the banner currently shown, if any.
func (m *Model) Notice() (notifications.Notice, bool) {
	if m.notice == nil {
		return notifications.Notice{}, false
	}
	return *m.notice, true
}

// LogLines returns the lines shown in the activity pane.
func (m *Model) LogLines() []string {
	return append([]string(nil), m.lines...)
}

func (m *Model) categoryIndex() int {
	if m.focus >= 1 && m.focus <= len(m.names) {
		return m.focus - 1
	}
	return -1
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	slots := len(m.names) + 2
	m.focus = (m.focus + delta + slots) % slots
	if m.focus == 0 {
		m.input.PromptStyle = focusedStyle
		m.input.TextStyle = focusedStyle
		return m.input.Focus()
	}
	m.input.Blur()
	m.input.PromptStyle = blurredStyle
	m.input.TextStyle = blurredStyle
	return nil
}

func (m *Model) toggle(idx int) {
	m.checked[idx] = !m.checked[idx]
}

func (m *Model) toggleAll() {
	all := true
	for _, c := range m.checked {
		all = all && c
	}
	for i := range m.checked {
		m.checked[i] = !all
	}
}

func (m *Model) directory() string {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return ""
	}
	expanded, err := config.ExpandPath(raw)
	if err != nil {
		return raw
	}
	return expanded
}

// selectFolder checks the typed folder and records the choice in the log.
func (m *Model) selectFolder() {
	dir := m.directory()
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		m.notice = &notifications.Notice{
			Kind:    notifications.KindWarning,
			Title:   "Warning",
			Message: fmt.Sprintf("%s is not a folder", dir),
		}
		return
	}
	m.notice = nil
	m.activity.Printf("Folder selected: %s", dir)
	m.syncLog()
}

func (m *Model) startOrganize() tea.Cmd {
	if m.running || m.org == nil {
		return nil
	}
	sel, err := category.NewSelection(m.table, m.Checked()...)
	if err != nil {
		notice := notifications.FromError(err)
		m.notice = &notice
		return nil
	}
	m.running = true
	m.notice = nil
	ctx, org, dir := m.ctx, m.org, m.directory()
	return func() tea.Msg {
		result, err := org.Organize(ctx, dir, sel)
		return organizeDoneMsg{result: result, err: err}
	}
}

// syncLog pulls new activity entries into the pane.
func (m *Model) syncLog() {
	entries, next := m.activity.Since(m.seq)
	m.seq = next
	if len(entries) == 0 {
		return
	}
	// The pane mirrors the activity log, which already drops its oldest
	// entries once full.
	m.lines = m.activity.Lines()
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}
