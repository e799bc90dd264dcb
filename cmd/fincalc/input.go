package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput loads a calculator input from path ("-" reads stdin), applies
// key=value overrides and returns it as JSON. YAML files are detected by
// extension; stdin and other files may hold JSON or YAML.
func readInput(path string, sets []string) (json.RawMessage, error) {
	doc := map[string]any{}

	if path != "" {
		var (
			data []byte
			err  error
		)
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if doc, err = parseDocument(data, filepath.Ext(path)); err != nil {
			return nil, err
		}
	}

	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", set)
		}
		if err := setPath(doc, strings.Split(key, "."), parseScalar(value)); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", set, err)
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input: %w", err)
	}
	return data, nil
}

func parseDocument(data []byte, ext string) (map[string]any, error) {
	doc := map[string]any{}
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON input: %w", err)
		}
	default:
		// YAML is a superset of JSON.
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML input: %w", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	}
	return doc, nil
}

// parseScalar reads numbers, booleans, arrays and objects as JSON and keeps
// anything else as a string.
func parseScalar(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

func setPath(doc map[string]any, keys []string, value any) error {
	for i, key := range keys {
		if key == "" {
			return fmt.Errorf("empty key segment")
		}
		if i == len(keys)-1 {
			doc[key] = value
			return nil
		}
		next, ok := doc[key].(map[string]any)
		if !ok {
			if _, exists := doc[key]; exists {
				return fmt.Errorf("%s is not an object", strings.Join(keys[:i+1], "."))
			}
			next = map[string]any{}
			doc[key] = next
		}
		doc = next
	}
	return nil
}
