package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config file location relative to a project root.
const (
	ConfigDirName  = ".valuesquiz"
	ConfigFileName = "config.yml"
)

// ErrNotFound reports that no config file exists in the search path.
var ErrNotFound = errors.New("config not found")

// ConfigPath returns the config file path under root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// RootFromConfigPath derives the project root from a config file path. A
// config outside a .valuesquiz directory is rooted at its own directory.
func RootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDirName {
		return dir
	}
	return filepath.Dir(dir)
}

// FindConfigPath walks from startDir (or the working directory) toward the
// filesystem root and returns the first config file it meets.
func FindConfigPath(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		path, found, err := configIn(dir)
		if err != nil || found {
			return path, err
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories", ErrNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
	}
}

// configIn checks dir for a config file. An empty .valuesquiz directory is an
// error rather than a reason to keep searching.
func configIn(dir string) (string, bool, error) {
	path := ConfigPath(dir)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "", false, fmt.Errorf("config path %q is a directory", path)
	case err == nil:
		return path, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("stat config path %q: %w", path, err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err == nil && info.IsDir() {
		return "", false, fmt.Errorf("found %q but %s is missing", filepath.Dir(path), ConfigFileName)
	}
	return "", false, nil
}
