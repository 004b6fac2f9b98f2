package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"valuesquiz/internal/quiz"
)

// renderTitle renders a screen heading.
func renderTitle(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(text)
}

// renderProgress renders "Progress: n / total" with a bar of rated items.
func renderProgress(state *quiz.State, bar progress.Model, noColor bool) string {
	line := formatProgress(state)
	if noColor {
		return line
	}
	percent := float64(state.RatedCount()) / float64(state.Len())
	return stylize(line, noColor, lipgloss.Color("242")) + "  " + bar.ViewAs(percent)
}

// renderItem renders the current label and its rating controls.
func renderItem(state *quiz.State, focus quiz.Rating, width int, noColor bool) string {
	item := state.Current()
	label := item.Text
	if !noColor {
		label = lipgloss.NewStyle().Bold(true).Render(label)
	}
	controls := make([]string, 0, len(quiz.Ratings))
	for i, rating := range quiz.Ratings {
		controls = append(controls, renderControl(i+1, rating, item.Rating == rating, focus == rating, noColor))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(max(width-2, minColumnWidth)).
		Align(lipgloss.Center)
	// Each line is centered by the box on its own; controls that do not fit
	// side by side are stacked rather than wrapped mid-label.
	row := strings.Join(controls, "  ")
	if lipgloss.Width(row) > box.GetWidth()-box.GetHorizontalPadding() {
		row = strings.Join(controls, "\n")
	}
	body := label + "\n\n" + row
	if !noColor {
		box = box.BorderForeground(lipgloss.Color("238"))
	}
	return box.Render(body)
}

// renderControl renders one rating control. The active control carries the
// item's current rating; the focused one is where enter applies.
func renderControl(number int, rating quiz.Rating, active, focused bool, noColor bool) string {
	mark := " "
	if active {
		mark = "x"
	}
	text := "[" + mark + "] " + fmtInt(number) + " " + rating.Label()
	if focused {
		text = "> " + text
	} else {
		text = "  " + text
	}
	if noColor {
		return text
	}
	style := lipgloss.NewStyle().Foreground(ratingColor(rating))
	if active {
		style = style.Bold(true).Reverse(true)
	}
	if focused {
		style = style.Underline(true)
	}
	return style.Render(text)
}

// renderResults renders the grouped results table.
func renderResults(results table.Model, noColor bool) string {
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if !noColor {
		box = box.BorderForeground(lipgloss.Color("238"))
	}
	return box.Render(results.View())
}

// renderAction renders a secondary control hint.
func renderAction(keyName, label string, noColor bool) string {
	text := "[" + keyName + "] " + label
	return stylize(text, noColor, lipgloss.Color("39"))
}

// renderConfirm renders the reset confirmation prompt.
func renderConfirm(width int, noColor bool) string {
	text := quiz.ResetPrompt + " [y/N]"
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(0, 1).
		Width(max(width-2, minColumnWidth))
	if !noColor {
		box = box.BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("220"))
	}
	return box.Render(text)
}

// renderFooter renders the last event line.
func renderFooter(lastEvent string, noColor bool) string {
	if lastEvent == "" {
		return ""
	}
	return stylize("Last event: "+lastEvent, noColor, lipgloss.Color("244"))
}

// renderHelp lays the key hints out over as many lines as width needs.
func renderHelp(h help.Model, bindings helpKeys, width int) string {
	h.Width = 0
	var lines []string
	var line []key.Binding
	for _, binding := range bindings {
		next := append(append([]key.Binding(nil), line...), binding)
		if len(line) > 0 && lipgloss.Width(h.ShortHelpView(next)) > width {
			lines = append(lines, h.ShortHelpView(line))
			next = []key.Binding{binding}
		}
		line = next
	}
	if len(line) > 0 {
		lines = append(lines, h.ShortHelpView(line))
	}
	return strings.Join(lines, "\n")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// ratingColor selects the accent for a rating.
func ratingColor(rating quiz.Rating) lipgloss.Color {
	switch rating {
	case quiz.Important:
		return lipgloss.Color("42")
	case quiz.Neutral:
		return lipgloss.Color("246")
	case quiz.LessImportant:
		return lipgloss.Color("208")
	default:
		return lipgloss.Color("244")
	}
}
