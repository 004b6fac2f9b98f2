package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"valuesquiz/internal/quiz"
)

func completeSummary(t *testing.T) Summary {
	t.Helper()
	state, err := quiz.New([]string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, state.Rate(0, quiz.Important))
	require.NoError(t, state.Rate(1, quiz.Neutral))
	require.NoError(t, state.Rate(2, quiz.LessImportant))
	return FromState("sess-1", state)
}

func TestTextListsGroupsInOrder(t *testing.T) {
	out := Text(completeSummary(t))
	require.Contains(t, out, "Your Values Assessment Results (3 / 3 rated)")
	strong := strings.Index(out, "Strong Values (1)")
	neutral := strings.Index(out, "Neutral Values (1)")
	less := strings.Index(out, "Less Important Values (1)")
	require.True(t, strong >= 0 && strong < neutral && neutral < less, "unexpected group order:\n%s", out)
	require.Contains(t, out, "  - C\n")
}

func TestTextMarksEmptyGroups(t *testing.T) {
	state, err := quiz.New([]string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, state.Rate(0, quiz.Important))
	out := Text(FromState("sess-2", state))
	require.Contains(t, out, "Current Results (1 / 2 rated)")
	require.Contains(t, out, "Neutral Values (0)\n  (none)")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", completeSummary(t)))
	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "complete", decoded.Phase)
	require.Equal(t, []string{"B"}, decoded.Groups.Neutral)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", completeSummary(t)))
	var decoded Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, []string{"C"}, decoded.Groups.LessImportant)
	require.Equal(t, 3, decoded.Total)
}

func TestWriteMarkdownAndNone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "markdown", completeSummary(t)))
	require.Contains(t, buf.String(), "## Strong Values\n\n- A\n")

	buf.Reset()
	require.NoError(t, Write(&buf, "none", completeSummary(t)))
	require.Empty(t, buf.String())

	require.Error(t, Write(&buf, "xml", completeSummary(t)))
}

func TestRenderTerminal(t *testing.T) {
	out, err := RenderTerminal(completeSummary(t), 60, true)
	require.NoError(t, err)
	require.Contains(t, out, "Strong Values")
	require.Contains(t, out, "Less Important Values")
}
