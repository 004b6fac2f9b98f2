package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config and the files it references.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if !slices.Contains(UIModes, cfg.UI.Mode) {
		add("ui.mode", fmt.Sprintf("unsupported mode %q (expected %s)", cfg.UI.Mode, strings.Join(UIModes, "|")))
	}
	if cfg.UI.Width < 0 {
		add("ui.width", "must be >= 0")
	}
	if !slices.Contains(OutputFormats, cfg.Output.Format) {
		add("output.format", fmt.Sprintf("unsupported format %q (expected %s)", cfg.Output.Format, strings.Join(OutputFormats, "|")))
	}
	if !slices.Contains(LogLevels, cfg.Log.Level) {
		add("log.level", fmt.Sprintf("unsupported level %q (expected %s)", cfg.Log.Level, strings.Join(LogLevels, "|")))
	}

	if baseDir == "" {
		baseDir = "."
	}
	if cfg.ValuesFile != "" {
		path := ResolvePath(baseDir, cfg.ValuesFile)
		info, err := os.Stat(path)
		switch {
		case os.IsNotExist(err):
			add("values_file", fmt.Sprintf("file %q does not exist", cfg.ValuesFile))
		case err != nil:
			add("values_file", fmt.Sprintf("stat %q: %v", cfg.ValuesFile, err))
		case info.IsDir():
			add("values_file", fmt.Sprintf("%q is a directory", cfg.ValuesFile))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// ResolvePath joins relative paths onto baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
