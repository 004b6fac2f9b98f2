package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"valuesquiz/internal/session"
)

// NewSession starts a session over labels that logs to the test output.
func NewSession(t testing.TB, labels ...string) *session.Session {
	t.Helper()
	sess, err := session.New(labels, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return sess
}

// WriteValuesFile writes a version 1 values file into dir and returns its path.
func WriteValuesFile(t testing.TB, dir string, labels ...string) string {
	t.Helper()
	var body strings.Builder
	body.WriteString("version: 1\nvalues:\n")
	for _, label := range labels {
		body.WriteString("  - " + label + "\n")
	}
	path := filepath.Join(dir, "values.yml")
	if err := os.WriteFile(path, []byte(body.String()), 0o644); err != nil {
		t.Fatalf("write values: %v", err)
	}
	return path
}
