// Package stepper is an interactive terminal view that advances an L-system
// one generation per key press.
package stepper

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/viktordanov/lgen/grammars"
)

var (
	ColorPrimary = lipgloss.Color("#8B5CF6")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorError   = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	statStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(ColorError)
	helpStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

// MaxLength stops advancing once a generation has more symbols than this.
const MaxLength = 1 << 20

// Model is the bubbletea model of the stepper.
type Model struct {
	demo   grammars.Demo
	cursor *grammars.Cursor

	width, height int
	ready         bool
	viewport      viewport.Model

	generation int
	text       string
	length     int
	err        error
}

// New creates a model positioned at generation 0.
func New(demo grammars.Demo) Model {
	m := Model{
		demo:   demo,
		cursor: demo.Cursor(),
	}
	m.advance()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "n", " ", "enter", "right":
			m.advance()
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refresh()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// advance pulls the next generation unless the demo already failed or grew
// too long.
func (m *Model) advance() {
	if m.err != nil || m.length > MaxLength {
		return
	}
	gen, text, err := m.cursor.Advance()
	if err != nil {
		m.err = err
		return
	}
	m.generation = gen
	m.text = text
	m.length = m.cursor.Length()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.Width = max(m.width, 1)
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(m.text))
	m.viewport.GotoTop()
}

func (m Model) View() string {
	header := titleStyle.Render(m.demo.Name()) + "  " +
		statStyle.Render("n = "+strconv.Itoa(m.generation)+"  length "+strconv.Itoa(m.length))
	if m.err != nil {
		header += "\n" + errorStyle.Render(m.err.Error())
	} else {
		header += "\n" + statStyle.Render(m.demo.Description())
	}

	body := m.text
	if m.ready {
		body = m.viewport.View()
	}

	help := helpStyle.Render("n/space: next generation  ↑/↓: scroll  q: quit")
	return fmt.Sprintf("%s\n\n%s\n\n%s", header, body, help)
}

// Generation is the index of the generation on screen.
func (m Model) Generation() int {
	return m.generation
}

// Text is the generation on screen.
func (m Model) Text() string {
	return m.text
}

func (m Model) Err() error {
	return m.err
}

// Run starts the stepper TUI
func Run(demo grammars.Demo) error {
	p := tea.NewProgram(New(demo), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
