// Package config loads the optional .mlx2html.yml file controlling output
// naming and the MathJax script reference.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// FileName is the config file searched for next to the input and in the
// working directory.
const FileName = ".mlx2html.yml"

// DefaultOutputSuffix is appended to the input basename when no output
// path is given: /foo/bar/test.html becomes /foo/bar/test_mlx.html.
const DefaultOutputSuffix = "_mlx"

// maxConfigSize bounds config reads; anything larger is not a config file.
const maxConfigSize = 1 << 20

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigRead     = errors.New("failed to read config")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigTooLarge = errors.New("config file exceeds maximum size")
)

// Config holds the file-level configuration. Flags override these values.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	MathJax MathJaxConfig `yaml:"mathjax"`
	Debug   bool          `yaml:"debug"`
}

// OutputConfig controls derived output paths.
type OutputConfig struct {
	Suffix string `yaml:"suffix"` // basename suffix (default "_mlx")
	Dir    string `yaml:"dir"`    // output directory (empty = alongside the input)
}

// MathJaxConfig controls the script reference written into the output.
type MathJaxConfig struct {
	URL string `yaml:"url"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: OutputConfig{Suffix: DefaultOutputSuffix},
	}
}

// Load reads and strictly parses the config file at path, layered over
// defaults. Unknown fields are rejected to catch typos.
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("%w: %d bytes", ErrConfigTooLarge, info.Size())
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag or a fixed filename
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Output.Suffix == "" {
		cfg.Output.Suffix = DefaultOutputSuffix
	}
	return cfg, nil
}

// Resolve locates and loads the configuration. An explicit path must
// exist; otherwise FileName is searched in each dir in order and defaults
// apply when nothing is found.
func Resolve(explicit string, searchDirs ...string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	for _, dir := range searchDirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}
