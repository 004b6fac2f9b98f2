// Package values provides the ordered list of labels rated by the quiz.
package values

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default returns a copy of the built-in value labels.
func Default() []string {
	return append([]string(nil), defaultLabels...)
}

// List is the on-disk schema for a custom value list.
type List struct {
	Version int      `json:"version" yaml:"version"`
	Values  []string `json:"values" yaml:"values"`
}

// Load reads, parses, and validates a value list file. Files ending in
// .json are decoded as JSON, everything else as YAML.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values file: %w", err)
	}
	list, err := parseList(data, path)
	if err != nil {
		return nil, err
	}
	normalized, err := Normalize(list)
	if err != nil {
		return nil, err
	}
	return normalized.Values, nil
}

// Resolve returns the labels from path, or the defaults when path is empty.
func Resolve(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

func parseList(data []byte, path string) (List, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSONList(data)
	}
	return parseYAMLList(data)
}

func parseJSONList(data []byte) (List, error) {
	var list List
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&list); err != nil {
		return List{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(new(json.RawMessage)); err != io.EOF {
		if err == nil {
			return List{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return List{}, fmt.Errorf("parse json: %w", err)
	}
	return list, nil
}

func parseYAMLList(data []byte) (List, error) {
	var list List
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&list); err != nil {
		return List{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(new(yaml.Node)); err != io.EOF {
		if err == nil {
			return List{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return List{}, fmt.Errorf("parse yaml: %w", err)
	}
	return list, nil
}
