package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/genicam-go/genicam/pkg/feature"
)

// RawTable represents the feature table loaded from YAML.
type RawTable struct {
	Version    string           `yaml:"version"`
	Categories []RawCategoryDef `yaml:"categories"`
}

// RawCategoryDef represents one SFNC category.
type RawCategoryDef struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Features    []RawFeatureDef `yaml:"features"`
}

// RawFeatureDef represents a feature definition.
type RawFeatureDef struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`   // "Integer", "Float", "Enumeration", ...
	Access      string   `yaml:"access"` // "RO", "RW", "WO"
	Unit        string   `yaml:"unit"`
	Description string   `yaml:"description"`
	Symbols     []string `yaml:"symbols"` // Enumeration only
}

// ParseTable parses and validates a feature table from YAML bytes.
func ParseTable(data []byte) (*RawTable, error) {
	var table RawTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing feature table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadTable loads and parses a feature table from a file.
func LoadTable(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

// Validate checks names, kinds, access modes and symbols.
func (t *RawTable) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("feature table missing version")
	}
	seen := make(map[string]string)
	for _, cat := range t.Categories {
		if !isIdentifier(cat.Name) {
			return fmt.Errorf("category %q: invalid name", cat.Name)
		}
		for _, f := range cat.Features {
			if !isIdentifier(f.Name) {
				return fmt.Errorf("category %s: invalid feature name %q", cat.Name, f.Name)
			}
			if prev, ok := seen[f.Name]; ok {
				return fmt.Errorf("feature %s defined in %s and %s", f.Name, prev, cat.Name)
			}
			seen[f.Name] = cat.Name

			kind, err := feature.ParseKind(f.Kind)
			if err != nil {
				return fmt.Errorf("feature %s: %w", f.Name, err)
			}
			if _, err := feature.ParseAccessMode(f.Access); err != nil {
				return fmt.Errorf("feature %s: %w", f.Name, err)
			}
			if kind == feature.KindEnumeration && len(f.Symbols) == 0 {
				return fmt.Errorf("feature %s: enumeration without symbols", f.Name)
			}
			if kind != feature.KindEnumeration && len(f.Symbols) > 0 {
				return fmt.Errorf("feature %s: symbols on %s feature", f.Name, kind)
			}
			for _, s := range f.Symbols {
				if !isIdentifier(s) {
					return fmt.Errorf("feature %s: invalid symbol %q", f.Name, s)
				}
			}
		}
	}
	return nil
}

// isIdentifier reports whether s is usable as part of a Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
