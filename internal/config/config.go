// Package config loads optional CLI defaults from a YAML file. Flags
// always take precedence; the file only supplies values for flags the
// user left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds default values for the generate command.
type Config struct {
	Difficulty string `yaml:"difficulty"`
	Seed       int64  `yaml:"seed"`
	Count      int    `yaml:"count"`
	Output     string `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Difficulty: "easy",
		Seed:       0, // 0 = derive from wall clock
		Count:      1,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
