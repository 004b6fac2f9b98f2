package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"valuesquiz/internal/quiz"
)

// tableStyles returns results table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("230")).Bold(false)
	return styles
}

// resultColumns splits the layout width across the three groups.
func resultColumns(width int) []table.Column {
	columnWidth := max((width-8)/len(quiz.Ratings), minColumnWidth)
	columns := make([]table.Column, 0, len(quiz.Ratings))
	for _, rating := range quiz.Ratings {
		columns = append(columns, table.Column{Title: rating.GroupTitle(), Width: columnWidth})
	}
	return columns
}

// resultRows lays the groups out side by side, one label per cell.
func resultRows(groups quiz.Groups) []table.Row {
	height := 0
	for _, rating := range quiz.Ratings {
		height = max(height, len(groups.For(rating)))
	}
	rows := make([]table.Row, 0, height)
	for i := 0; i < height; i++ {
		row := make(table.Row, 0, len(quiz.Ratings))
		for _, rating := range quiz.Ratings {
			row = append(row, cell(groups.For(rating), i))
		}
		rows = append(rows, row)
	}
	return rows
}

// cell returns the label at index or an empty cell.
func cell(labels []string, index int) string {
	if index < len(labels) {
		return labels[index]
	}
	return ""
}
