// Package render formats rankings for the terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okian/blade/internal/domain/model"
)

var (
	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	championStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

var columns = []string{"#", "Competitor", "W-D-L", "Score"}

// Standings renders a ranking table followed by the champion line. total is
// the number of competitors ranked, which may exceed len(standings) when the
// table was truncated.
func Standings(standings []model.Standing, champion model.Standing, total int) string {
	rows := make([][]string, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, []string{
			strconv.Itoa(s.Rank),
			s.Competitor.Name,
			Record(s.Competitor.Matches),
			strconv.Itoa(s.Score),
		})
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("TOURNAMENT RANKING"))
	sb.WriteString("\n\n")
	sb.WriteString(headerStyle.Render(formatRow(columns, widths)))
	for _, row := range rows {
		sb.WriteString("\n")
		sb.WriteString(formatRow(row, widths))
	}
	if hidden := total - len(standings); hidden > 0 {
		sb.WriteString("\n")
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", hidden)))
	}

	return boxStyle.Render(sb.String()) + "\n" + Champion(champion) + "\n"
}

// Champion renders the single champion line.
func Champion(champion model.Standing) string {
	if champion.Competitor == nil {
		return ""
	}
	return championStyle.Render(fmt.Sprintf("Champion: %s with %d points", champion.Competitor.Name, champion.Score))
}

// Record summarises matches as wins-draws-losses.
func Record(matches []model.Outcome) string {
	var w, d, l int
	for _, m := range matches {
		switch m {
		case model.Win:
			w++
		case model.Draw:
			d++
		case model.Loss:
			l++
		}
	}
	return fmt.Sprintf("%d-%d-%d", w, d, l)
}

// formatRow left-aligns text columns and right-aligns the numeric ones.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		if i == 1 {
			parts[i] = cell + pad
		} else {
			parts[i] = pad + cell
		}
	}
	return strings.Join(parts, "  ")
}
