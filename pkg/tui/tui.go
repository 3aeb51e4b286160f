// Package tui is the interactive schedule surface: a single bubbletea model
// over the app service, with an inline form backed by the editor session.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/editor"
	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
	"tableflip.dev/dayplan/pkg/view"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

// formFields is the order the inline form walks through.
var formFields = []struct {
	name   string
	prompt string
}{
	{"title", "Title"},
	{"date", "Date (YYYY-MM-DD)"},
	{"start", "Start (HH:MM)"},
	{"end", "End (HH:MM, optional)"},
	{"category", "Category"},
	{"priority", "Priority (high/medium/low)"},
	{"notes", "Notes"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the schedule TUI state.
type Model struct {
	svc      *app.Service
	selected time.Time
	viewMode view.Mode

	days   []view.Day
	cursor int

	mode    mode
	session *editor.Session
	field   int
	input   textinput.Model

	pendingDel *task.Task
	status     string

	watch  <-chan store.Event
	cancel context.CancelFunc
}

type refreshMsg struct{}

type watchClosedMsg struct{}

// Run starts the interactive schedule over the given persistence.
func Run(p store.Persistence) error {
	svc := &app.Service{Persistence: p}

	ctx, cancel := context.WithCancel(context.Background())
	watch, err := svc.Watch(ctx)
	if err != nil {
		cancel()
		return err
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		svc:      svc,
		selected: mustToday(),
		viewMode: view.ModeDay,
		input:    ti,
		status:   "a add · e edit · space done · d delete · h/l day · v view · q quit",
		watch:    watch,
		cancel:   cancel,
	}
	m.reload()

	program := tea.NewProgram(m)
	_, err = program.Run()
	cancel()
	return err
}

func mustToday() time.Time {
	d, err := timeutil.ParseDay(timeutil.Today())
	if err != nil {
		return time.Now()
	}
	return d
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return refreshMsg{}
	}
}

func (m *Model) reload() {
	days, err := m.svc.Schedule(m.selected, m.viewMode)
	if err != nil {
		m.status = errStyle.Render(err.Error())
		return
	}
	m.days = days
	if n := m.taskCount(); m.cursor >= n {
		m.cursor = clamp(n-1, n)
	}
}

func (m *Model) taskCount() int {
	n := 0
	for _, d := range m.days {
		n += len(d.Tasks)
	}
	return n
}

func (m *Model) taskAtCursor() *task.Task {
	i := 0
	for _, d := range m.days {
		for _, t := range d.Tasks {
			if i == m.cursor {
				return t
			}
			i++
		}
	}
	return nil
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if n == 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.reload()
		return m, m.waitForChange()
	case watchClosedMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg.String())
		default:
			return m.updateList(msg.String())
		}
	}
	return m, nil
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "j", "down":
		m.cursor = clamp(m.cursor+1, m.taskCount())
	case "k", "up":
		m.cursor = clamp(m.cursor-1, m.taskCount())
	case "h", "left":
		m.selected = m.selected.AddDate(0, 0, -1)
		m.reload()
	case "l", "right":
		m.selected = m.selected.AddDate(0, 0, 1)
		m.reload()
	case "t":
		m.selected = mustToday()
		m.reload()
	case "v":
		m.viewMode = m.viewMode.Next()
		m.reload()
	case " ":
		if t := m.taskAtCursor(); t != nil {
			if _, err := m.svc.ToggleDone(t.ID); err != nil {
				m.status = errStyle.Render(err.Error())
			}
			m.reload()
		}
	case "d":
		if t := m.taskAtCursor(); t != nil {
			m.pendingDel = t
			m.mode = modeConfirmDelete
		}
	case "a":
		m.session = m.svc.CreateSession(timeutil.FormatDay(m.selected))
		return m.startForm()
	case "e":
		if t := m.taskAtCursor(); t != nil {
			s, err := m.svc.EditSession(t.ID)
			if err != nil {
				m.status = errStyle.Render(err.Error())
				return m, nil
			}
			m.session = s
			return m.startForm()
		}
	case "r":
		m.reload()
	}
	return m, nil
}

func (m Model) startForm() (tea.Model, tea.Cmd) {
	m.mode = modeForm
	m.field = 0
	m.input.SetValue(m.formValue(0))
	m.input.Placeholder = formFields[0].prompt
	m.input.Focus()
	return m, textinput.Blink
}

// formValue seeds the input with the session's current value for a field, so
// editing shows what is already there.
func (m *Model) formValue(i int) string {
	f := m.session.Form()
	switch formFields[i].name {
	case "title":
		return f.Title
	case "date":
		return f.Date
	case "start":
		return f.StartTime
	case "end":
		return f.EndTime
	case "category":
		return f.Category
	case "priority":
		return string(f.Priority)
	case "notes":
		return f.Notes
	}
	return ""
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Cancel()
		m.session = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		field := formFields[m.field]
		value := strings.TrimSpace(m.input.Value())
		if value != "" || field.name == "end" || field.name == "notes" || field.name == "category" || field.name == "description" {
			if err := m.session.Set(field.name, value); err != nil {
				m.status = errStyle.Render(err.Error())
				return m, nil
			}
		}
		if m.field++; m.field < len(formFields) {
			m.input.SetValue(m.formValue(m.field))
			m.input.Placeholder = formFields[m.field].prompt
			return m, nil
		}
		return m.submitForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if _, err := m.session.Submit(m.svc.Persistence); err != nil {
		m.status = errStyle.Render(err.Error())
		return m, nil
	}
	if m.session.Open() {
		m.status = errStyle.Render("a non-empty title is required")
		m.field = 0
		m.input.SetValue(m.formValue(0))
		m.input.Placeholder = formFields[0].prompt
		return m, nil
	}
	m.session = nil
	m.mode = modeList
	m.input.Blur()
	m.status = "Saved"
	m.reload()
	return m, nil
}

func (m Model) updateConfirmDelete(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		if m.pendingDel != nil {
			if _, err := m.svc.Remove(m.pendingDel.ID); err != nil {
				m.status = errStyle.Render(err.Error())
			} else {
				m.status = "Deleted"
			}
		}
		m.pendingDel = nil
		m.mode = modeList
		m.reload()
	case "n", "N", "esc":
		m.pendingDel = nil
		m.mode = modeList
		m.status = "Kept"
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	heading := fmt.Sprintf("%s · %s", timeutil.FormatDay(m.selected), m.viewMode)
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.viewForm())
	case modeConfirmDelete:
		b.WriteString(fmt.Sprintf("Delete %q? (y/n)\n", m.pendingDel.Title))
	default:
		b.WriteString(m.viewList())
	}

	if stats, err := m.svc.Stats(m.selected); err == nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"\ntoday: %d tasks · week done: %d%%", stats.TodayCount, stats.WeekCompletion)))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.status))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewList() string {
	if m.taskCount() == 0 {
		return dimStyle.Render("nothing planned\n")
	}

	var b strings.Builder
	i := 0
	for _, d := range m.days {
		b.WriteString(titleStyle.Render(d.Date))
		b.WriteString("\n")
		for _, t := range d.Tasks {
			marker := "  "
			if i == m.cursor {
				marker = cursorStyle.Render("> ")
			}
			line := fmt.Sprintf("%s%s %s %-11s %s",
				marker,
				glyph.ForStatus(t.Status).Symbol,
				glyph.ForPriority(t.Priority).Symbol,
				t.Window(),
				t.Title,
			)
			if t.Category != "" {
				line += dimStyle.Render("  [" + t.Category + "]")
			}
			if t.Done() {
				line = dimStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			i++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	action := "New task"
	if m.session.Editing() {
		action = "Edit task"
	}
	b.WriteString(fmt.Sprintf("%s — %s\n\n", action, formFields[m.field].prompt))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter next · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
