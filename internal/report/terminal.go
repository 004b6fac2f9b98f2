package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderTerminal renders summary as styled markdown for a terminal of the given width.
func RenderTerminal(summary Summary, width int, noColor bool) (string, error) {
	if width <= 0 {
		width = 80
	}
	style := "dark"
	if noColor {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(summary))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
