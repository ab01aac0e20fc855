package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/substratelabs/bindkit/class"
	"github.com/substratelabs/bindkit/object"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewState int

const (
	stateList viewState = iota
	stateDetail
)

type inspectModel struct {
	reg      *class.Registry
	rt       *object.Runtime
	filter   textinput.Model
	defs     []*class.Definition
	selected int
	state    viewState
}

func newInspectModel(reg *class.Registry, rt *object.Runtime) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "filter classes"
	ti.Focus()

	return &inspectModel{
		reg:    reg,
		rt:     rt,
		filter: ti,
		defs:   reg.Definitions(),
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) visible() []*class.Definition {
	filter := m.filter.Value()
	if filter == "" {
		return m.defs
	}
	var out []*class.Definition
	for _, d := range m.defs {
		if matchesFilter(d.Name(), filter) {
			out = append(out, d)
		}
	}
	return out
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible())-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if m.state == stateList && len(m.visible()) > 0 {
				m.state = stateDetail
			}
			return m, nil
		}
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.selected >= len(m.visible()) {
			m.selected = 0
		}
		return m, cmd
	}
	return m, nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bindkit registry"))
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		counts := liveCounts(m.rt)
		visible := m.visible()
		if len(visible) == 0 {
			b.WriteString(helpStyle.Render("no classes match"))
			b.WriteByte('\n')
		}
		for i, def := range visible {
			line := fmt.Sprintf("%s  %s", def.Name(),
				countStyle.Render(fmt.Sprintf("%d live", counts[def.Name()])))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + def.Name()))
				b.WriteString("  ")
				b.WriteString(countStyle.Render(fmt.Sprintf("%d live", counts[def.Name()])))
			} else {
				b.WriteString("  ")
				b.WriteString(classStyle.Render(line))
			}
			b.WriteByte('\n')
		}

		b.WriteString("\n")
		b.WriteString(helpStyle.Render("up/down: select | enter: details | q: quit"))

	case stateDetail:
		visible := m.visible()
		if m.selected >= len(visible) {
			break
		}
		def := visible[m.selected]

		b.WriteString(classStyle.Render(def.Name()))
		b.WriteString("\n\n")
		for _, p := range def.Properties() {
			b.WriteString(memberStyle.Render(fmt.Sprintf("  property %s = %v", p.Name, p.Default)))
			b.WriteByte('\n')
		}
		for _, name := range def.MethodNames() {
			b.WriteString(memberStyle.Render(fmt.Sprintf("  method %s()", name)))
			b.WriteByte('\n')
		}

		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: back | q: back"))
	}

	return b.String()
}
