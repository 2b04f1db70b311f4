package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mhuels/depscout/pkg/report"
)

// renderReport prints the human-oriented tabular rendering of a report:
// the priority section first, then the remaining updates.
func renderReport(w io.Writer, rep *report.Report) {
	if rep.Total() == 0 {
		printSuccess("All dependencies are up to date")
		return
	}

	if len(rep.PriorityUpdates) > 0 {
		fmt.Fprintln(w, stylePriority.Render("Priority updates"))
		fmt.Fprintln(w, updateTable(rep.PriorityUpdates))
	}
	if len(rep.OtherUpdates) > 0 {
		fmt.Fprintln(w, StyleTitle.Render("Other updates"))
		fmt.Fprintln(w, updateTable(rep.OtherUpdates))
	}

	printInfo("%d update(s) available · resolved from %s", rep.Total(), rep.ResolutionMode)
}

// updateTable renders one partition as a bordered table. The release-notes
// column is an OSC 8 hyperlink so supporting terminals make it clickable.
func updateTable(rows []report.Update) string {
	data := make([][]string, 0, len(rows))
	for _, u := range rows {
		data = append(data, []string{
			u.Name,
			u.CurrentVersion,
			u.LatestVersion,
			hyperlink(u.DocURL, u.DocURL),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Package", "Current", "Latest", "Release notes").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 3:
				return StyleLink
			case col == 2:
				return StyleValue
			default:
				return StyleDim
			}
		}).
		String()
}
