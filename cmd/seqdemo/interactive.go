package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fixedseq/internal/demo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "enter", " "),
		key.WithHelp("→/enter", "next step"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous step"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type interactiveModel struct {
	err       error
	help      help.Model
	steps     []demo.Step
	shown     int
	offset    uint32
	useMemory bool
	loaded    bool
}

type stepsMsg struct {
	err   error
	steps []demo.Step
}

func newInteractiveModel(useMemory bool, offset uint32) *interactiveModel {
	return &interactiveModel{
		help:      help.New(),
		useMemory: useMemory,
		offset:    offset,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadSteps
}

func (m *interactiveModel) loadSteps() tea.Msg {
	steps, err := collect(m.useMemory, m.offset)
	return stepsMsg{steps: steps, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			if m.shown < len(m.steps) {
				m.shown++
			}
		case key.Matches(msg, keys.Prev):
			if m.shown > 0 {
				m.shown--
			}
		case key.Matches(msg, keys.Reset):
			m.shown = 0
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case stepsMsg:
		m.loaded = true
		m.err = msg.err
		m.steps = msg.steps
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded {
		return "Running walk-through..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Fixed-length sequences"))
	b.WriteString(fmt.Sprintf(" step %d/%d", m.shown, len(m.steps)))
	b.WriteString("\n\n")

	for i, s := range m.steps {
		switch {
		case i < m.shown-1:
			b.WriteString("  " + renderStep(s, lipgloss.NewStyle()))
		case i == m.shown-1:
			b.WriteString(selectedStyle.Render("> ") + renderStep(s, resultStyle.Bold(true)))
		default:
			b.WriteString(dimStyle.Render("  " + s.Op + "(…)"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

// renderStep formats a step as op(input) = output, drawing the output with
// out.
func renderStep(s demo.Step, out lipgloss.Style) string {
	return opStyle.Render(s.Op) + "(" + inputStyle.Render(s.Input) + ") = " + out.Render(s.Output)
}

func runInteractive(useMemory bool, offset uint32) error {
	p := tea.NewProgram(newInteractiveModel(useMemory, offset), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
