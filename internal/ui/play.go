// Package ui holds the interactive terminal frontends.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/whiskeyo/meksmith/internal/diagfmt"
	"github.com/whiskeyo/meksmith/internal/driver"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type playModel struct {
	input  textarea.Model
	target string

	output string
	broken bool
	status string

	width      int
	height     int
	paneHeight int
}

// NewPlayModel returns a Bubble Tea model that recompiles the schema on
// every edit and shows the generated declarations next to the input.
func NewPlayModel(initial, target string) tea.Model {
	ta := textarea.New()
	ta.Placeholder = "type a schema..."
	ta.SetValue(initial)
	ta.Focus()

	m := &playModel{input: ta, target: target, paneHeight: 20}
	m.recompile()
	return m
}

func (m *playModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recompile()
	}
	return m, cmd
}

// recompile runs the whole pipeline over the buffer. Inputs are tiny, so a
// full recompile per keystroke is fine.
func (m *playModel) recompile() {
	res, err := driver.CompileSource("playground.mek", []byte(m.input.Value()), driver.CompileOptions{
		Target: m.target,
	})
	if err != nil {
		m.broken = true
		m.output = err.Error()
		m.status = "configuration error"
		return
	}
	if res.Bag.HasErrors() {
		m.broken = true
		res.Bag.Sort()
		var sb strings.Builder
		diagfmt.Pretty(&sb, res.Bag, res.FileSet, diagfmt.PrettyOpts{ShowNotes: true})
		m.output = sb.String()
		m.status = fmt.Sprintf("%d diagnostic(s)", res.Bag.Len())
		return
	}
	m.broken = false
	m.output = res.Output
	m.status = fmt.Sprintf("%d declaration(s)", len(res.Module.Decls))
}

func (m *playModel) resize() {
	paneWidth := m.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 6
	if paneHeight < 5 {
		paneHeight = 5
	}
	m.paneHeight = paneHeight
	m.input.SetWidth(paneWidth)
	m.input.SetHeight(paneHeight)
}

func (m *playModel) View() string {
	paneWidth := m.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	outStyle := okStyle
	if m.broken {
		outStyle = errStyle
	}
	left := paneStyle.Width(paneWidth).Render(m.input.View())
	right := paneStyle.Width(paneWidth).Render(outStyle.Render(clipLines(m.output, m.paneHeight, paneWidth)))

	header := titleStyle.Render("meksmith playground")
	status := statusStyle.Render(truncate(m.status+"  (esc to quit)", m.width-2))

	return header + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" +
		status + "\n"
}

// clipLines keeps the output pane from overflowing its box.
func clipLines(s string, maxLines, maxWidth int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		lines[i] = truncate(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
