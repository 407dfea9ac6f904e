// Package tui is a full-screen alternative to the line-oriented session.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/urdfinertia/internal/console"
	"github.com/san-kum/urdfinertia/internal/shapes"
	"github.com/san-kum/urdfinertia/internal/tensor"
)

var (
	title    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	value    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true)
	idle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	key      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	panel    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)
)

const rule = "─────────────────────────"

const (
	stateMenu = iota
	stateFields
	stateResult
)

// Options controls what the result view shows.
type Options struct {
	URDFTag bool
}

type model struct {
	opts        Options
	state       int
	cursor      int
	entries     []shapes.Entry
	shape       shapes.Shape
	fields      []shapes.Field
	fieldCursor int
	editing     bool
	editBuf     string
	moments     shapes.Moments
}

func New(opts Options) tea.Model {
	return model{opts: opts, state: stateMenu, entries: shapes.Entries()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateFields:
			return m.fieldKey(msg)
		case stateResult:
			return m.resultKey(msg)
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.choose(m.entries[m.cursor].New())
	default:
		if s, err := shapes.Lookup(msg.String()); err == nil {
			m.choose(s)
		}
	}
	return m, nil
}

func (m *model) choose(s shapes.Shape) {
	m.shape, m.fields = s, s.Fields()
	m.state, m.fieldCursor = stateFields, 0
	m.editing, m.editBuf = false, ""
}

func (m model) fieldKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if v, err := console.ParseFloat32(m.editBuf); err == nil {
				*m.fields[m.fieldCursor].Dest = v
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-+eE") {
				m.editBuf += s
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, ""
	case "c":
		m.moments = m.shape.Moments()
		m.state = stateResult
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = stateFields
	case "n":
		m.state = stateMenu
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateFields:
		return m.viewFields()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func header(b *strings.Builder, name, caption string) {
	b.WriteString("\n\n    " + title.Render(name) + "\n    " + sub.Render(caption) + "\n    " + sub.Render(rule) + "\n\n")
}

func hints(b *strings.Builder, pairs ...string) {
	b.WriteString("\n    ")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(key.Render(pairs[i]) + idle.Render(" "+pairs[i+1]+"  "))
	}
	b.WriteString("\n")
}

func (m model) viewMenu() string {
	var b strings.Builder
	header(&b, "INERTIA", "urdf inertia calculator")
	for i, e := range m.entries {
		label := fmt.Sprintf("%-16s", e.Label)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursor.Render("▸"), selected.Render(label), value.Render(e.Code)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idle.Render("  "+label), idle.Render(e.Code)))
		}
	}
	hints(&b, "j/k", "navigate", "enter", "select", "q", "quit")
	return b.String()
}

func (m model) viewFields() string {
	var b strings.Builder
	header(&b, strings.ToUpper(m.shape.Name()), "solid "+strings.ToLower(m.shape.Name()))
	for i, f := range m.fields {
		val := fmt.Sprintf("%10s", tensor.Value(*f.Dest))
		if m.editing && i == m.fieldCursor {
			val = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		name := fmt.Sprintf("%-8s", f.Key)
		if i == m.fieldCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursor.Render("▸"), selected.Render(name), value.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", idle.Render("  "+name), idle.Render(val)))
		}
	}
	hints(&b, "j/k", "select", "enter", "edit", "c", "compute", "esc", "back")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	header(&b, strings.ToUpper(m.shape.Name()), "principal moments")
	body := tensor.Format(m.moments.Ixx, m.moments.Iyy, m.moments.Izz)
	if m.opts.URDFTag {
		body += "\n" + tensor.Tag(m.moments.Ixx, m.moments.Iyy, m.moments.Izz)
	}
	b.WriteString(panel.Render(body) + "\n")
	hints(&b, "n", "new shape", "esc", "edit", "q", "quit")
	return b.String()
}

func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
