package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen         string   `yaml:"listen"`
	DSN            string   `yaml:"dsn"`
	MaxConnections int      `yaml:"max_connections"`
	CORSOrigins    []string `yaml:"cors_origins"`
	LogLevel       string   `yaml:"log_level"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Listen:         ":8080",
		MaxConnections: 10,
		LogLevel:       "info",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DSN")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("config %s: dsn is required", path)
	}
	return cfg, nil
}
