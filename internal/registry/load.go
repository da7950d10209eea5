package registry

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yantr-labs/yantr/internal/schema"
	"go.yaml.in/yaml/v3"
)

//go:embed schema/registry.schema.json
var schemaBytes []byte

var validator = schema.New("registry.schema.json", schemaBytes)

// ErrInvalidRegistry marks a registry document that could not be parsed or
// does not match the registry schema. It is always fatal to a run.
var ErrInvalidRegistry = errors.New("invalid registry")

// Format is the encoding of a registry document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks YAML for .yaml/.yml names and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Source fetches a document by path. templates.Fetcher satisfies it.
type Source interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// Load fetches the registry document name from src, then parses and validates it.
func Load(ctx context.Context, src Source, name string) (*Registry, error) {
	content, err := src.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading registry %s: %w", name, err)
	}
	return Parse([]byte(content), FormatFromPath(name))
}

// LoadFile reads and parses a registry document from the local filesystem.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes a registry document, validates it against the embedded
// schema, and fills in component names and variant keys from map keys.
func Parse(data []byte, format Format) (*Registry, error) {
	jsonData := data
	if format == FormatYAML {
		var err error
		jsonData, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
		}
	}

	if err := validator.Check("registry", jsonData); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}

	var reg Registry
	if err := json.Unmarshal(jsonData, &reg); err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrInvalidRegistry, err)
	}

	for name, c := range reg.Components {
		if c == nil {
			return nil, fmt.Errorf("%w: component %q is null", ErrInvalidRegistry, name)
		}
		c.Name = name
		for key, v := range c.Variants {
			if v == nil {
				return nil, fmt.Errorf("%w: variant %q of %q is null", ErrInvalidRegistry, key, name)
			}
			v.Key = key
		}
	}

	return &reg, nil
}

// yamlToJSON converts a YAML document into equivalent JSON bytes.
func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	out, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return out, nil
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. Non-string map keys are stringified.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
