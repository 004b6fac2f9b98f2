package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"valuesquiz/internal/config"
)

func TestInitCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var out, errOut bytes.Buffer
	code := Run([]string{"init"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	path := config.ConfigPath(dir)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config at %s: %v", path, err)
	}

	out.Reset()
	errOut.Reset()
	if code := Run([]string{"init"}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d on second init, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestInitCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quiz.yml")
	var out, errOut bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected created path in output, got %q", out.String())
	}
}
