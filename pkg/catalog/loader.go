package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Fields []Field `json:"fields" yaml:"fields"`
}

// LoadFile reads a JSON or YAML field catalogue from disk.
func LoadFile(ctx context.Context, path string) ([]Field, error) {
	if path == "" {
		return nil, errors.New("catalog: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a catalogue payload. Both a bare list of fields and an object
// with a `fields` key are accepted, in JSON or YAML.
func Parse(data []byte, source string) ([]Field, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("catalog: file %s is empty", source)
	}

	var fields []Field
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &fields); err == nil {
			return fields, nil
		}
	} else {
		var doc documentFile
		if err := json.Unmarshal(data, &doc); err == nil {
			return doc.Fields, nil
		}
	}

	if err := yaml.Unmarshal(data, &fields); err == nil {
		return fields, nil
	}
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc.Fields, nil
	}

	return nil, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}
