package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/youruser/kcgdeck/internal/deck"
)

// Config is the server configuration, loaded from YAML.
type Config struct {
	CardDir string      `yaml:"card_dir"`
	DataDir string      `yaml:"data_dir"`
	Bind    string      `yaml:"bind"`
	Port    int         `yaml:"port"`
	Limits  deck.Limits `yaml:"limits"`
	Logging Logging     `yaml:"logging"`
}

type Logging struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		CardDir: "data",
		DataDir: "decks.db",
		Bind:    "0.0.0.0",
		Port:    8080,
		Limits:  deck.DefaultLimits,
		Logging: Logging{Level: "info"},
	}
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config %s: port %d out of range", path, cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
