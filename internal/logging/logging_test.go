package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, closeFn, err := New("", "debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("ignored")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.log")
	logger, closeFn, err := New(path, "info")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("filtered")
	logger.Info("rated", zap.Int("index", 2), zap.String("rating", "neutral"))
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "rated" || entry["rating"] != "neutral" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("expected level error")
	}
}
