package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"valuesquiz/internal/config"
)

// resolveConfig loads the config at path, or searches upward from the working
// directory when path is empty. A missing config falls back to defaults.
func resolveConfig(path string) (config.Config, error) {
	if strings.TrimSpace(path) == "" {
		found, err := config.FindConfigPath("")
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return config.Config{}, err
		}
		return config.Load(found)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	return config.Load(abs)
}
