// Package report renders the categorized results of a quiz session.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"valuesquiz/internal/quiz"
)

// Summary is the end-of-session result.
type Summary struct {
	Session string      `json:"session" yaml:"session"`
	Phase   string      `json:"phase" yaml:"phase"`
	Rated   int         `json:"rated" yaml:"rated"`
	Total   int         `json:"total" yaml:"total"`
	Groups  quiz.Groups `json:"groups" yaml:"groups"`
}

// FromState builds a summary for a session.
func FromState(sessionID string, state *quiz.State) Summary {
	return Summary{
		Session: sessionID,
		Phase:   state.Phase().String(),
		Rated:   state.RatedCount(),
		Total:   state.Len(),
		Groups:  state.Categorize(),
	}
}

// Write renders summary in format. The "none" format writes nothing.
func Write(w io.Writer, format string, summary Summary) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		_, err := io.WriteString(w, Text(summary))
		return err
	case "markdown", "md":
		_, err := io.WriteString(w, Markdown(summary))
		return err
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	case "none":
		return nil
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// Text renders the groups as plain indented lists.
func Text(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d / %d rated)\n", title(summary), summary.Rated, summary.Total)
	for _, rating := range quiz.Ratings {
		items := summary.Groups.For(rating)
		fmt.Fprintf(&b, "\n%s (%d)\n", rating.GroupTitle(), len(items))
		if len(items) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	return b.String()
}

// Markdown renders the groups as a markdown document.
func Markdown(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title(summary))
	fmt.Fprintf(&b, "Rated %d of %d values.\n", summary.Rated, summary.Total)
	for _, rating := range quiz.Ratings {
		items := summary.Groups.For(rating)
		fmt.Fprintf(&b, "\n## %s\n\n", rating.GroupTitle())
		if len(items) == 0 {
			b.WriteString("_None yet._\n")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

func title(summary Summary) string {
	if summary.Phase == quiz.Complete.String() {
		return "Your Values Assessment Results"
	}
	return "Current Results"
}
