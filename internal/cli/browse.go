package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhuels/depscout/pkg/report"
)

// browseReport runs the interactive update browser and, if the user picked
// a record, prints its release-notes URL on exit.
func browseReport(rep *report.Report) error {
	rows := make([]browseRow, 0, rep.Total())
	for _, u := range rep.PriorityUpdates {
		rows = append(rows, browseRow{update: u, priority: true})
	}
	for _, u := range rep.OtherUpdates {
		rows = append(rows, browseRow{update: u})
	}

	if len(rows) == 0 {
		printSuccess("All dependencies are up to date")
		return nil
	}

	final, err := tea.NewProgram(newBrowseModel(rows)).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(browseModel); ok && m.selected != nil {
		fmt.Println(StyleLink.Render(m.selected.update.DocURL))
	}
	return nil
}

type browseRow struct {
	update   report.Update
	priority bool
}

// browseModel is the bubbletea model for the interactive update list.
type browseModel struct {
	rows     []browseRow
	cursor   int
	selected *browseRow
	height   int
	offset   int
}

func newBrowseModel(rows []browseRow) browseModel {
	return browseModel{rows: rows, height: 15}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			row := m.rows[m.cursor]
			m.selected = &row
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Available updates"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ release notes  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := " "
		if row.priority {
			marker = stylePriority.Render("!")
		}

		line := fmt.Sprintf("%s%s %-30s %12s → %-12s", cursor, marker,
			row.update.Name, row.update.CurrentVersion, row.update.LatestVersion)
		if i == m.cursor {
			line = StyleValue.Render(line)
		} else {
			line = StyleDim.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
