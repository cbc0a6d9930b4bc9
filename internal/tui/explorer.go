// Package tui is an interactive explorer for the bid probability table.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maxkht/liarsdice/internal/solver"
)

// Model is the bubbletea model for the table explorer.
type Model struct {
	probTable *solver.Table
	decisions []solver.Decision
	grid      table.Model
	quitting  bool
}

// NewModel builds an explorer over a computed probability table.
func NewModel(t *solver.Table) Model {
	columns := []table.Column{{Title: "y \\ x", Width: 6}}
	for face := 2; face <= t.Config.FaceCount; face++ {
		columns = append(columns, table.Column{Title: fmt.Sprintf("%d*", face), Width: 8})
	}

	rows := make([]table.Row, 0, t.Rows())
	for count := 1; count <= t.Rows(); count++ {
		row := table.Row{fmt.Sprintf("%d", count)}
		for face := 2; face <= t.Config.FaceCount; face++ {
			row = append(row, fmt.Sprintf("%.4f", t.At(face, count)))
		}
		rows = append(rows, row)
	}

	height := t.Rows()
	if height > 15 {
		height = 15
	}

	grid := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	grid.SetStyles(styles)

	return Model{
		probTable: t,
		decisions: t.Decisions(),
		grid:      grid,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("liarsdice  prev %s  hand %s", m.probTable.PrevBid, m.probTable.Hand)))
	b.WriteString("\n")
	b.WriteString(BorderStyle.Render(m.grid.View()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		ChallengeStyle.Render("P(bluff):"),
		fmt.Sprintf("%.4f", m.probTable.CallProbability)))
	for _, d := range m.decisions {
		style := ActionStyle
		if d.Challenge {
			style = ChallengeStyle
		}
		b.WriteString(fmt.Sprintf("%s %s (%.4f)\n",
			SelectedStyle.Render(d.Policy.String()+":"),
			style.Render(d.String()),
			d.Probability))
	}
	b.WriteString(InfoStyle.Render("↑/↓ move · q quit"))
	return b.String()
}

// Run starts the explorer program in the alternate screen.
func Run(t *solver.Table) error {
	program := tea.NewProgram(NewModel(t), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
