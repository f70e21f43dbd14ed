package main

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config is the optional on-disk configuration for diceroll, loaded from
// -config (default none). Every field starts from defaultConfig, so an
// absent file is equivalent to an empty one.
type Config struct {
	Debug      bool   `yaml:"debug"`
	Format     string `yaml:"format"`
	MaxRolls   uint64 `yaml:"maxRolls"`
	StatsTrials int   `yaml:"statsTrials"`
}

func defaultConfig() *Config {
	return &Config{
		Format:      "text",
		MaxRolls:    0, // 0 means "use dicecore.DefaultMaxRolls"
		StatsTrials: 1000,
	}
}

// loadConfig reads and parses a YAML config file. A missing path is not an
// error; it just returns the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
