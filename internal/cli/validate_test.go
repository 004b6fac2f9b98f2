package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"valuesquiz/internal/config"
	"valuesquiz/internal/testutil"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteValuesFile(t, dir, "Joy", "Hope", "Trust")
	path := config.ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("version: 1\nvalues_file: values.yml\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Config OK (3 values)") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandDefaultsWithoutConfig verifies defaults validate when no config exists.
func TestValidateCommandDefaultsWithoutConfig(t *testing.T) {
	chdir(t, t.TempDir())
	var out, errOut bytes.Buffer
	if code := Run([]string{"validate"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Config OK (117 values)") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

// TestValidateCommandFailure verifies validate command error handling.
func TestValidateCommandFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "values.yml")
	if err := os.WriteFile(bad, []byte("version: 1\nvalues: [A, a]\n"), 0o644); err != nil {
		t.Fatalf("write values: %v", err)
	}
	path := config.ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("version: 1\nvalues_file: values.yml\nui:\n  mode: plain\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "duplicate") {
		t.Fatalf("expected duplicate error, got %q", errOut.String())
	}
}
