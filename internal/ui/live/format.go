package live

import (
	"strconv"

	"valuesquiz/internal/quiz"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatProgress renders the position indicator.
func formatProgress(state *quiz.State) string {
	position, total := state.Progress()
	return "Progress: " + fmtInt(position) + " / " + fmtInt(total)
}
