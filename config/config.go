// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no configuration file is named explicitly.
const DefaultPath = ".stkrc.yml"

// DefaultCacheSize is the number of compiled programs kept by default.
const DefaultCacheSize = 64

type Config struct {
	// Strict makes unterminated string literals a fault.
	Strict bool `yaml:"strict"`

	// Trace logs every statement as it is executed.
	Trace bool `yaml:"trace"`

	// CacheSize bounds the compiled-program cache.
	CacheSize int `yaml:"cache_size"`

	// Prompt is printed before each line in interactive mode.
	Prompt string `yaml:"prompt"`
}

func Default() Config {
	return Config{
		CacheSize: DefaultCacheSize,
		Prompt:    "> ",
	}
}

// Decode reads a configuration from r.  Unknown keys are an error; keys
// that are absent keep their default values.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if cfg.CacheSize <= 0 {
		return Config{}, fmt.Errorf("cache_size must be positive, got %d",
			cfg.CacheSize)
	}
	return cfg, nil
}

// Load reads the configuration file at path.  If the file does not exist
// and optional is set, the defaults are returned.
func Load(path string, optional bool) (Config, error) {
	f, err := os.Open(path)
	switch {
	case optional && errors.Is(err, os.ErrNotExist):
		return Default(), nil
	case err != nil:
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
