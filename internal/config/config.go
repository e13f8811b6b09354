// Package config loads regnfa options from TOML, YAML or JSON files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"sigs.k8s.io/yaml"
)

// File is the on-disk form of the compiler and analyzer options.
type File struct {
	// Alphabet is a set description such as "a-zA-Z0-9". Empty selects the
	// default ASCII letters.
	Alphabet string `toml:"alphabet" json:"alphabet"`

	// MaxPaths bounds ambiguity analysis; zero is unbounded.
	MaxPaths int `toml:"max_paths" json:"max_paths"`

	Verbose bool `toml:"verbose" json:"verbose"`
}

// Format selects a decoder.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
}

// Load reads and decodes the config file at path.
func Load(path string) (File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (File, error) {
	var cfg File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML; field names come from the json tags.
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return File{}, fmt.Errorf("decode %s: %w", format, err)
		}
	default:
		return File{}, fmt.Errorf("unknown config format %q", format)
	}
	if cfg.MaxPaths < 0 {
		return File{}, fmt.Errorf("max_paths cannot be negative, got %d", cfg.MaxPaths)
	}
	return cfg, nil
}
