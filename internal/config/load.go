package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file. A relative
// values_file is resolved against the directory that holds .valuesquiz.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	root := RootFromConfigPath(path)
	if err := Validate(&cfg, root); err != nil {
		return Config{}, err
	}
	cfg.ValuesFile = ResolvePath(root, cfg.ValuesFile)
	return cfg, nil
}
