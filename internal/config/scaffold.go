package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

# Optional YAML or JSON list replacing the built-in values:
#   version: 1
#   values: [Honesty, Courage, Kindness]
values_file: ""

ui:
  mode: auto        # auto | live | plain
  no_color: false
  width: 0          # 0 uses the terminal width

output:
  format: text      # text | markdown | json | yaml | none

log:
  file: ""          # session log path; empty disables logging
  level: info
`

// Scaffold writes the default config file to configPath.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
